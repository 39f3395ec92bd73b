package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Class is a scheduled session taught by one trainer.
// StartTime and EndTime are full timestamps on ClassDate.
type Class struct {
	bun.BaseModel `bun:"table:classes,alias:c"`

	ClassID   int64     `bun:"class_id,pk,autoincrement"`
	ClassName string    `bun:"class_name,notnull"`
	TrainerID int64     `bun:"trainer_id,notnull"`
	ClassDate time.Time `bun:"class_date,notnull"`
	StartTime time.Time `bun:"start_time,notnull"`
	EndTime   time.Time `bun:"end_time,notnull"`
	Capacity  *int      `bun:"capacity"`

	Trainer *Trainer `bun:"rel:belongs-to,join:trainer_id=trainer_id"`
}

// Duration returns EndTime - StartTime. It is negative for malformed rows.
func (c *Class) Duration() time.Duration {
	return c.EndTime.Sub(c.StartTime)
}
