package repository

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/models"
)

// ClassRepository adds the scheduling queries to generic Class access.
type ClassRepository struct {
	*Repository[models.Class]
	db bun.IDB
}

// NewClassRepository returns a ClassRepository over db.
func NewClassRepository(db bun.IDB) *ClassRepository {
	return &ClassRepository{Repository: New[models.Class](db), db: db}
}

// FindAllScheduled returns every class ordered by date and start time, with trainer and user loaded.
func (r *ClassRepository) FindAllScheduled(ctx context.Context) ([]models.Class, error) {
	classes := []models.Class{}
	err := r.db.NewSelect().
		Model(&classes).
		Relation("Trainer").
		Relation("Trainer.User").
		OrderExpr("c.class_date ASC, c.start_time ASC, c.class_id ASC").
		Scan(ctx)
	return classes, err
}

// FindScheduledByID returns one class with trainer and user loaded, or sql.ErrNoRows.
func (r *ClassRepository) FindScheduledByID(ctx context.Context, id int64) (*models.Class, error) {
	class := &models.Class{}
	err := r.db.NewSelect().
		Model(class).
		Relation("Trainer").
		Relation("Trainer.User").
		Where("c.class_id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return class, nil
}

// FindUpcoming returns classes on or after today ordered by (class_date, start_time).
func (r *ClassRepository) FindUpcoming(ctx context.Context, today time.Time, limit, offset int) ([]models.Class, error) {
	classes := []models.Class{}
	err := r.db.NewSelect().
		Model(&classes).
		Relation("Trainer").
		Relation("Trainer.User").
		Where("c.class_date >= ?", today).
		OrderExpr("c.class_date ASC, c.start_time ASC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	return classes, err
}

// FindTrainerClassesInMonth returns the trainer's classes whose date falls inside period.
func (r *ClassRepository) FindTrainerClassesInMonth(ctx context.Context, trainerID int64, period models.Period) ([]models.Class, error) {
	classes := []models.Class{}
	err := r.db.NewSelect().
		Model(&classes).
		Where("c.trainer_id = ?", trainerID).
		Where("c.class_date >= ?", period.Start()).
		Where("c.class_date < ?", period.End()).
		Scan(ctx)
	return classes, err
}

// DeleteByTrainer removes every class taught by the trainer.
func (r *ClassRepository) DeleteByTrainer(ctx context.Context, trainerID int64) error {
	_, err := r.db.NewDelete().Model((*models.Class)(nil)).Where("trainer_id = ?", trainerID).Exec(ctx)
	return err
}
