package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/dto"
	"github.com/padraicbc/gymapi/models"
	"github.com/padraicbc/gymapi/repository"
)

// TrainerService is CRUD over trainers.
type TrainerService struct {
	db *bun.DB
}

func NewTrainerService(db *bun.DB) *TrainerService {
	return &TrainerService{db: db}
}

func (s *TrainerService) ListTrainers(ctx context.Context) ([]dto.Trainer, error) {
	trainers := []models.Trainer{}
	err := s.db.NewSelect().
		Model(&trainers).
		Relation("User").
		OrderExpr("t.trainer_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return dto.Map(trainers, dto.ToTrainer), nil
}

func (s *TrainerService) GetTrainer(ctx context.Context, id int64) (dto.Trainer, error) {
	trainer := &models.Trainer{}
	err := s.db.NewSelect().
		Model(trainer).
		Relation("User").
		Where("t.trainer_id = ?", id).
		Scan(ctx)
	if err != nil {
		return dto.Trainer{}, notFound(err, "trainer", id)
	}
	return dto.ToTrainer(trainer), nil
}

func (s *TrainerService) CreateTrainer(ctx context.Context, in dto.TrainerInput) (dto.Trainer, error) {
	trainer := &models.Trainer{}
	if err := applyTrainerInput(trainer, in); err != nil {
		return dto.Trainer{}, err
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := checkUser(ctx, tx, in.UserID); err != nil {
			return err
		}
		return repository.New[models.Trainer](tx).Create(ctx, trainer)
	})
	if err != nil {
		return dto.Trainer{}, err
	}
	return dto.ToTrainer(trainer), nil
}

func (s *TrainerService) UpdateTrainer(ctx context.Context, id int64, in dto.TrainerInput) (dto.Trainer, error) {
	var trainer *models.Trainer
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		repo := repository.New[models.Trainer](tx)
		var err error
		trainer, err = repo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "trainer", id)
		}
		if err := applyTrainerInput(trainer, in); err != nil {
			return err
		}
		if err := checkUser(ctx, tx, in.UserID); err != nil {
			return err
		}
		return repo.Update(ctx, trainer)
	})
	if err != nil {
		return dto.Trainer{}, err
	}
	return dto.ToTrainer(trainer), nil
}

// DeleteTrainer removes the trainer together with their classes and payrolls.
func (s *TrainerService) DeleteTrainer(ctx context.Context, id int64) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := repository.NewClassRepository(tx).DeleteByTrainer(ctx, id); err != nil {
			return err
		}
		if err := repository.NewPayrollRepository(tx).DeleteByTrainer(ctx, id); err != nil {
			return err
		}
		return repository.New[models.Trainer](tx).DeleteByID(ctx, id)
	})
}

func applyTrainerInput(t *models.Trainer, in dto.TrainerInput) error {
	if in.HourlyRate < 0 {
		return invalidf("hourlyRate must not be negative")
	}
	var hireDate *time.Time
	if s := strings.TrimSpace(in.HireDate); s != "" {
		d, err := time.Parse(dto.DateLayout, s)
		if err != nil {
			return invalidf("hireDate must be YYYY-MM-DD")
		}
		hireDate = &d
	}

	t.UserID = in.UserID
	t.Specialization = strings.TrimSpace(in.Specialization)
	t.Certifications = strings.TrimSpace(in.Certifications)
	t.HireDate = hireDate
	t.HourlyRate = in.HourlyRate
	t.EmploymentType = strings.TrimSpace(in.EmploymentType)
	return nil
}

func checkUser(ctx context.Context, db bun.IDB, userID *int64) error {
	if userID == nil {
		return nil
	}
	ok, err := repository.NewUserRepository(db).ExistsByID(ctx, *userID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(sql.ErrNoRows, "user", *userID)
	}
	return nil
}
