package services

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/dto"
	"github.com/padraicbc/gymapi/models"
	"github.com/padraicbc/gymapi/repository"
)

// Upcoming class page limits.
const (
	DefaultUpcomingLimit = 6
	MaxUpcomingLimit     = 100
)

// DashboardService serves the summary figures on the admin dashboard.
type DashboardService struct {
	db  *bun.DB
	now func() time.Time
}

func NewDashboardService(db *bun.DB) *DashboardService {
	return &DashboardService{db: db, now: time.Now}
}

func (s *DashboardService) Counts(ctx context.Context) (dto.Counts, error) {
	var (
		out dto.Counts
		err error
	)
	if out.Users, err = repository.New[models.User](s.db).Count(ctx); err != nil {
		return out, err
	}
	if out.Trainers, err = repository.New[models.Trainer](s.db).Count(ctx); err != nil {
		return out, err
	}
	if out.Classes, err = repository.New[models.Class](s.db).Count(ctx); err != nil {
		return out, err
	}
	if out.Payrolls, err = repository.New[models.TrainerPayroll](s.db).Count(ctx); err != nil {
		return out, err
	}
	return out, nil
}

// UpcomingClasses returns classes from today (UTC) onwards ordered by date and start time.
// limit is clamped to [1, MaxUpcomingLimit], 0 means DefaultUpcomingLimit; page is 0-based.
func (s *DashboardService) UpcomingClasses(ctx context.Context, limit, page int) ([]dto.Class, error) {
	switch {
	case limit == 0:
		limit = DefaultUpcomingLimit
	case limit < 0:
		return nil, invalidf("limit must not be negative")
	case limit > MaxUpcomingLimit:
		limit = MaxUpcomingLimit
	}
	if page < 0 {
		return nil, invalidf("page must not be negative")
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	classes, err := repository.NewClassRepository(s.db).FindUpcoming(ctx, today, limit, page*limit)
	if err != nil {
		return nil, err
	}
	return dto.Map(classes, dto.ToClass), nil
}
