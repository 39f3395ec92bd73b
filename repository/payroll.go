package repository

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/models"
)

// PayrollRepository adds reporting queries to generic TrainerPayroll access.
type PayrollRepository struct {
	*Repository[models.TrainerPayroll]
	db bun.IDB
}

// NewPayrollRepository returns a PayrollRepository over db.
func NewPayrollRepository(db bun.IDB) *PayrollRepository {
	return &PayrollRepository{Repository: New[models.TrainerPayroll](db), db: db}
}

// FindForExport returns payrolls with their trainer loaded, optionally limited to one period.
func (r *PayrollRepository) FindForExport(ctx context.Context, period models.Period) ([]models.TrainerPayroll, error) {
	payrolls := []models.TrainerPayroll{}
	q := r.db.NewSelect().
		Model(&payrolls).
		Relation("Trainer").
		Relation("Trainer.User").
		OrderExpr("p.month_year ASC, p.trainer_id ASC")
	if !period.IsZero() {
		q = q.Where("p.month_year = ?", period)
	}
	err := q.Scan(ctx)
	return payrolls, err
}

// DeleteByTrainer removes every payroll of the trainer.
func (r *PayrollRepository) DeleteByTrainer(ctx context.Context, trainerID int64) error {
	_, err := r.db.NewDelete().Model((*models.TrainerPayroll)(nil)).Where("trainer_id = ?", trainerID).Exec(ctx)
	return err
}
