package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/gymapi/dto"
)

func TestDashboardCounts(t *testing.T) {
	bdb := newTestDB(t)
	ctx := context.Background()
	trainer := seedTrainer(t, bdb, 25)
	seedClass(t, bdb, trainer.TrainerID, "2025-11-03", "09:00", "10:00")
	require.NoError(t, NewAuthService(bdb, testKey, time.Hour).Register(ctx, registerReq("c@gym.example")))
	_, err := NewPayrollService(bdb).CreatePayroll(ctx, dto.PayrollInput{TrainerID: trainer.TrainerID, MonthYear: mustPeriod(t, "2025-11")})
	require.NoError(t, err)

	counts, err := NewDashboardService(bdb).Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.Counts{Users: 1, Trainers: 1, Classes: 1, Payrolls: 1}, counts)
}

func TestUpcomingClasses(t *testing.T) {
	bdb := newTestDB(t)
	trainer := seedTrainer(t, bdb, 25)
	seedClass(t, bdb, trainer.TrainerID, "2025-11-09", "09:00", "10:00") // yesterday
	seedClass(t, bdb, trainer.TrainerID, "2025-11-12", "09:00", "10:00")
	seedClass(t, bdb, trainer.TrainerID, "2025-11-10", "18:00", "19:00")
	seedClass(t, bdb, trainer.TrainerID, "2025-11-10", "06:00", "07:00") // earlier today still counts

	svc := NewDashboardService(bdb)
	svc.now = func() time.Time { return time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	got, err := svc.UpcomingClasses(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	var slots []string
	for _, c := range got {
		slots = append(slots, fmt.Sprintf("%s %s", c.ClassDate, c.StartTime))
	}
	assert.Equal(t, []string{"2025-11-10 06:00", "2025-11-10 18:00", "2025-11-12 09:00"}, slots)

	page, err := svc.UpcomingClasses(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "2025-11-12", page[0].ClassDate)

	_, err = svc.UpcomingClasses(ctx, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.UpcomingClasses(ctx, 5, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
