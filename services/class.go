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

// ClassService schedules classes for trainers.
type ClassService struct {
	db *bun.DB
}

func NewClassService(db *bun.DB) *ClassService {
	return &ClassService{db: db}
}

func (s *ClassService) ListClasses(ctx context.Context) ([]dto.Class, error) {
	classes, err := repository.NewClassRepository(s.db).FindAllScheduled(ctx)
	if err != nil {
		return nil, err
	}
	return dto.Map(classes, dto.ToClass), nil
}

func (s *ClassService) GetClass(ctx context.Context, id int64) (dto.Class, error) {
	c, err := repository.NewClassRepository(s.db).FindScheduledByID(ctx, id)
	if err != nil {
		return dto.Class{}, notFound(err, "class", id)
	}
	return dto.ToClass(c), nil
}

func (s *ClassService) CreateClass(ctx context.Context, in dto.ClassInput) (dto.Class, error) {
	c := &models.Class{}
	if err := applyClassInput(c, in); err != nil {
		return dto.Class{}, err
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := checkTrainer(ctx, tx, c.TrainerID); err != nil {
			return err
		}
		return repository.NewClassRepository(tx).Create(ctx, c)
	})
	if err != nil {
		return dto.Class{}, err
	}
	return dto.ToClass(c), nil
}

func (s *ClassService) UpdateClass(ctx context.Context, id int64, in dto.ClassInput) (dto.Class, error) {
	var c *models.Class
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		repo := repository.NewClassRepository(tx)
		var err error
		c, err = repo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "class", id)
		}
		if err := applyClassInput(c, in); err != nil {
			return err
		}
		if err := checkTrainer(ctx, tx, c.TrainerID); err != nil {
			return err
		}
		return repo.Update(ctx, c)
	})
	if err != nil {
		return dto.Class{}, err
	}
	return dto.ToClass(c), nil
}

func (s *ClassService) DeleteClass(ctx context.Context, id int64) error {
	return repository.NewClassRepository(s.db).DeleteByID(ctx, id)
}

// applyClassInput validates in and copies it onto c. Start and end are combined
// with the class date in UTC and the class must end after it starts.
func applyClassInput(c *models.Class, in dto.ClassInput) error {
	name := strings.TrimSpace(in.ClassName)
	if name == "" {
		return invalidf("className is required")
	}
	date, err := time.Parse(dto.DateLayout, strings.TrimSpace(in.ClassDate))
	if err != nil {
		return invalidf("classDate must be YYYY-MM-DD")
	}
	start, err := clockOn(date, in.StartTime)
	if err != nil {
		return invalidf("startTime must be HH:mm")
	}
	end, err := clockOn(date, in.EndTime)
	if err != nil {
		return invalidf("endTime must be HH:mm")
	}
	if !end.After(start) {
		return invalidf("endTime must be after startTime")
	}
	if in.Capacity != nil && *in.Capacity < 1 {
		return invalidf("capacity must be positive")
	}

	c.ClassName = name
	c.TrainerID = in.TrainerID
	c.ClassDate = date
	c.StartTime = start
	c.EndTime = end
	c.Capacity = in.Capacity
	return nil
}

// clockOn parses "HH:mm" or "HH:mm:ss" and places it on date.
func clockOn(date time.Time, clock string) (time.Time, error) {
	clock = strings.TrimSpace(clock)
	layout := dto.ClockLayout
	if strings.Count(clock, ":") == 2 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
}

func checkTrainer(ctx context.Context, db bun.IDB, trainerID int64) error {
	ok, err := repository.New[models.Trainer](db).ExistsByID(ctx, trainerID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(sql.ErrNoRows, "trainer", trainerID)
	}
	return nil
}
