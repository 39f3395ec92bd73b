package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/db/dbtest"
	"github.com/padraicbc/gymapi/models"
	"github.com/padraicbc/gymapi/repository"
)

func seedTrainer(t *testing.T, bdb bun.IDB, rate float64) *models.Trainer {
	t.Helper()
	trainer := &models.Trainer{HourlyRate: rate, Specialization: "Yoga"}
	require.NoError(t, repository.New[models.Trainer](bdb).Create(context.Background(), trainer))
	require.NotZero(t, trainer.TrainerID)
	return trainer
}

// seedClass stores a class on date (YYYY-MM-DD) running from start to end (HH:mm), both UTC.
func seedClass(t *testing.T, bdb bun.IDB, trainerID int64, date, start, end string) *models.Class {
	t.Helper()
	day, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	s, err := clockOn(day, start)
	require.NoError(t, err)
	e, err := clockOn(day, end)
	require.NoError(t, err)

	c := &models.Class{ClassName: "Spin", TrainerID: trainerID, ClassDate: day, StartTime: s, EndTime: e}
	require.NoError(t, repository.NewClassRepository(bdb).Create(context.Background(), c))
	return c
}

func newTestDB(t *testing.T) *bun.DB {
	return dbtest.New(t)
}

func mustPeriod(t *testing.T, s string) models.Period {
	t.Helper()
	p, err := models.ParsePeriod(s)
	require.NoError(t, err)
	return p
}
