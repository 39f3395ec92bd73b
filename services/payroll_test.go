package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/padraicbc/gymapi/dto"
	"github.com/padraicbc/gymapi/models"
)

func TestCalculateMonthlyHoursNoClasses(t *testing.T) {
	bdb := newTestDB(t)
	trainer := seedTrainer(t, bdb, 25)
	svc := NewPayrollService(bdb)

	hours, err := svc.CalculateMonthlyHours(context.Background(), trainer.TrainerID, mustPeriod(t, "2025-11"))
	require.NoError(t, err)
	assert.Zero(t, hours)

	// Unknown trainers have no classes either.
	hours, err = svc.CalculateMonthlyHours(context.Background(), 999, mustPeriod(t, "2025-11"))
	require.NoError(t, err)
	assert.Zero(t, hours)
}

func TestCalculateMonthlyHours(t *testing.T) {
	bdb := newTestDB(t)
	trainer := seedTrainer(t, bdb, 25)
	other := seedTrainer(t, bdb, 30)

	seedClass(t, bdb, trainer.TrainerID, "2025-11-10", "09:00", "11:00")
	seedClass(t, bdb, trainer.TrainerID, "2025-11-30", "18:00", "18:45")
	seedClass(t, bdb, trainer.TrainerID, "2025-12-01", "09:00", "10:00")
	seedClass(t, bdb, trainer.TrainerID, "2025-10-31", "09:00", "10:00")
	seedClass(t, bdb, other.TrainerID, "2025-11-10", "09:00", "12:00")

	svc := NewPayrollService(bdb)
	hours, err := svc.CalculateMonthlyHours(context.Background(), trainer.TrainerID, mustPeriod(t, "2025-11"))
	require.NoError(t, err)
	assert.InDelta(t, 2.75, hours, 1e-9)

	hours, err = svc.CalculateMonthlyHours(context.Background(), other.TrainerID, mustPeriod(t, "2025-11"))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, hours, 1e-9)
}

func TestCalculateMonthlyHoursSingleClass(t *testing.T) {
	bdb := newTestDB(t)
	trainer := seedTrainer(t, bdb, 25)
	seedClass(t, bdb, trainer.TrainerID, "2025-11-03", "09:00", "11:00")

	hours, err := NewPayrollService(bdb).CalculateMonthlyHours(context.Background(), trainer.TrainerID, mustPeriod(t, "2025-11"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, hours)
}

func TestCalculateMonthlyHoursRequiresPeriod(t *testing.T) {
	_, err := NewPayrollService(newTestDB(t)).CalculateMonthlyHours(context.Background(), 1, models.Period{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSumClassHoursSkipsNonPositive(t *testing.T) {
	base := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	classes := []models.Class{
		{ClassID: 1, StartTime: base, EndTime: base.Add(90 * time.Minute)},
		{ClassID: 2, StartTime: base, EndTime: base.Add(-time.Hour)},
		{ClassID: 3, StartTime: base, EndTime: base},
	}
	hours, skipped := SumClassHours(classes)
	assert.Equal(t, 1.5, hours)
	assert.Equal(t, []int64{2, 3}, skipped)
}

func TestCreatePayroll(t *testing.T) {
	bdb := newTestDB(t)
	trainer := seedTrainer(t, bdb, 25)
	svc := NewPayrollService(bdb)

	got, err := svc.CreatePayroll(context.Background(), dto.PayrollInput{
		TrainerID:  trainer.TrainerID,
		MonthYear:  mustPeriod(t, "2025-11"),
		TotalHours: 10,
		TotalPay:   1, // ignored on create
	})
	require.NoError(t, err)

	assert.NotZero(t, got.PayrollID)
	assert.Equal(t, 250.0, got.TotalPay)
	assert.Equal(t, models.PaidStatusUnpaid, got.PaidStatus)

	stored, err := svc.GetPayroll(context.Background(), got.PayrollID)
	require.NoError(t, err)
	assert.Equal(t, got, stored)
}

func TestCreatePayrollUnknownTrainer(t *testing.T) {
	svc := NewPayrollService(newTestDB(t))
	_, err := svc.CreatePayroll(context.Background(), dto.PayrollInput{
		TrainerID:  42,
		MonthYear:  mustPeriod(t, "2025-11"),
		TotalHours: 10,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := svc.ListPayrolls(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreatePayrollValidation(t *testing.T) {
	bdb := newTestDB(t)
	trainer := seedTrainer(t, bdb, 25)
	svc := NewPayrollService(bdb)

	tests := []struct {
		name string
		in   dto.PayrollInput
	}{
		{"missing month", dto.PayrollInput{TrainerID: trainer.TrainerID, TotalHours: 1}},
		{"negative hours", dto.PayrollInput{TrainerID: trainer.TrainerID, MonthYear: mustPeriod(t, "2025-01"), TotalHours: -1}},
		{"bad status", dto.PayrollInput{TrainerID: trainer.TrainerID, MonthYear: mustPeriod(t, "2025-01"), PaidStatus: "pending"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePayroll(context.Background(), tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdatePayrollKeepsExplicitPay(t *testing.T) {
	bdb := newTestDB(t)
	trainer := seedTrainer(t, bdb, 25)
	svc := NewPayrollService(bdb)
	ctx := context.Background()

	created, err := svc.CreatePayroll(ctx, dto.PayrollInput{
		TrainerID: trainer.TrainerID, MonthYear: mustPeriod(t, "2025-11"), TotalHours: 10,
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePayroll(ctx, created.PayrollID, dto.PayrollInput{
		MonthYear:  mustPeriod(t, "2025-12"),
		TotalHours: 40,
		TotalPay:   123.45,
		PaidStatus: models.PaidStatusPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, 123.45, updated.TotalPay)
	assert.Equal(t, 40.0, updated.TotalHours)
	assert.Equal(t, "2025-12", updated.MonthYear.String())
	assert.Equal(t, models.PaidStatusPaid, updated.PaidStatus)
	assert.Equal(t, trainer.TrainerID, updated.TrainerID)

	stored, err := svc.GetPayroll(ctx, created.PayrollID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestUpdatePayrollNotFound(t *testing.T) {
	_, err := NewPayrollService(newTestDB(t)).UpdatePayroll(context.Background(), 7, dto.PayrollInput{
		MonthYear: models.Period{Year: 2025, Month: time.May},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAndDeleteMissingPayroll(t *testing.T) {
	svc := NewPayrollService(newTestDB(t))

	_, err := svc.GetPayroll(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, svc.DeletePayroll(context.Background(), 404))
}

func TestDeletePayroll(t *testing.T) {
	bdb := newTestDB(t)
	trainer := seedTrainer(t, bdb, 20)
	svc := NewPayrollService(bdb)
	ctx := context.Background()

	p, err := svc.CreatePayroll(ctx, dto.PayrollInput{TrainerID: trainer.TrainerID, MonthYear: mustPeriod(t, "2025-02"), TotalHours: 3})
	require.NoError(t, err)
	require.NoError(t, svc.DeletePayroll(ctx, p.PayrollID))

	_, err = svc.GetPayroll(ctx, p.PayrollID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPayrollsStorageOrder(t *testing.T) {
	bdb := newTestDB(t)
	trainer := seedTrainer(t, bdb, 10)
	svc := NewPayrollService(bdb)
	ctx := context.Background()

	for _, m := range []string{"2025-03", "2025-01", "2025-02"} {
		_, err := svc.CreatePayroll(ctx, dto.PayrollInput{TrainerID: trainer.TrainerID, MonthYear: mustPeriod(t, m), TotalHours: 1})
		require.NoError(t, err)
	}

	list, err := svc.ListPayrolls(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2025-03", list[0].MonthYear.String())
	assert.Equal(t, "2025-01", list[1].MonthYear.String())
	assert.Equal(t, "2025-02", list[2].MonthYear.String())
}

func TestExportPayrolls(t *testing.T) {
	bdb := newTestDB(t)
	trainer := seedTrainer(t, bdb, 25)
	svc := NewPayrollService(bdb)
	ctx := context.Background()

	for _, m := range []string{"2025-11", "2025-12"} {
		_, err := svc.CreatePayroll(ctx, dto.PayrollInput{TrainerID: trainer.TrainerID, MonthYear: mustPeriod(t, m), TotalHours: 4})
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, svc.ExportPayrolls(ctx, &buf, mustPeriod(t, "2025-11")))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Payrolls")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Payroll ID", rows[0][0])
	assert.Equal(t, "2025-11", rows[1][3])
	assert.Equal(t, "25", rows[1][4])
	assert.Equal(t, "100", rows[1][6])
	assert.Equal(t, "unpaid", rows[1][7])

	buf.Reset()
	require.NoError(t, svc.ExportPayrolls(ctx, &buf, models.Period{}))
	f2, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f2.Close()
	rows, err = f2.GetRows("Payrolls")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
