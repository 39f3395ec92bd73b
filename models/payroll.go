package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Payroll statuses.
const (
	PaidStatusPaid   = "paid"
	PaidStatusUnpaid = "unpaid"
)

// TrainerPayroll is one trainer's pay record for a single month.
type TrainerPayroll struct {
	bun.BaseModel `bun:"table:trainer_payrolls,alias:p"`

	PayrollID  int64     `bun:"payroll_id,pk,autoincrement"`
	TrainerID  int64     `bun:"trainer_id,notnull"`
	MonthYear  Period    `bun:"month_year,notnull,type:varchar(7)"`
	TotalHours float64   `bun:"total_hours,notnull,default:0"`
	TotalPay   float64   `bun:"total_pay,notnull,default:0"`
	PaidStatus string    `bun:"paid_status,notnull,default:'unpaid'"`
	CreatedAt  time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`

	Trainer *Trainer `bun:"rel:belongs-to,join:trainer_id=trainer_id"`
}

// IsValidPaidStatus reports whether s is paid or unpaid.
func IsValidPaidStatus(s string) bool {
	return s == PaidStatusPaid || s == PaidStatusUnpaid
}
