package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Trainer is a gym employee paid by the hour for the classes they teach.
type Trainer struct {
	bun.BaseModel `bun:"table:trainers,alias:t"`

	TrainerID      int64      `bun:"trainer_id,pk,autoincrement"`
	UserID         *int64     `bun:"user_id"`
	Specialization string     `bun:"specialization,notnull,default:''"`
	Certifications string     `bun:"certifications,notnull,default:''"`
	HireDate       *time.Time `bun:"hire_date,type:date"`
	HourlyRate     float64    `bun:"hourly_rate,notnull,default:0"`
	EmploymentType string     `bun:"employment_type,notnull,default:''"`

	User *User `bun:"rel:belongs-to,join:user_id=user_id"`
}
