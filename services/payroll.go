package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/uptrace/bun"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/padraicbc/gymapi/dto"
	"github.com/padraicbc/gymapi/models"
	"github.com/padraicbc/gymapi/repository"
)

// PayrollService manages trainer payroll records and the monthly hours calculation.
type PayrollService struct {
	db  *bun.DB
	now func() time.Time
}

func NewPayrollService(db *bun.DB) *PayrollService {
	return &PayrollService{db: db, now: time.Now}
}

// ListPayrolls returns every payroll in storage order.
func (s *PayrollService) ListPayrolls(ctx context.Context) ([]dto.Payroll, error) {
	payrolls, err := repository.NewPayrollRepository(s.db).FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.Map(payrolls, dto.ToPayroll), nil
}

func (s *PayrollService) GetPayroll(ctx context.Context, id int64) (dto.Payroll, error) {
	p, err := repository.NewPayrollRepository(s.db).FindByID(ctx, id)
	if err != nil {
		return dto.Payroll{}, notFound(err, "payroll", id)
	}
	return dto.ToPayroll(p), nil
}

// CreatePayroll stores a new payroll for an existing trainer.
// TotalPay is always TotalHours × the trainer's hourly rate; any TotalPay in the input is ignored.
func (s *PayrollService) CreatePayroll(ctx context.Context, in dto.PayrollInput) (dto.Payroll, error) {
	if err := validatePayrollInput(&in); err != nil {
		return dto.Payroll{}, err
	}

	var created *models.TrainerPayroll
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		trainer, err := repository.New[models.Trainer](tx).FindByID(ctx, in.TrainerID)
		if err != nil {
			return notFound(err, "trainer", in.TrainerID)
		}

		p := dto.ToTrainerPayroll(in)
		p.TotalPay = in.TotalHours * trainer.HourlyRate
		p.CreatedAt = s.now().UTC()
		if err := repository.NewPayrollRepository(tx).Create(ctx, p); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return dto.Payroll{}, err
	}

	zap.L().Info("payroll created",
		zap.Int64("payroll_id", created.PayrollID),
		zap.Int64("trainer_id", created.TrainerID),
		zap.Stringer("month_year", created.MonthYear),
		zap.Float64("total_pay", created.TotalPay),
	)
	return dto.ToPayroll(created), nil
}

// UpdatePayroll overwrites month, hours, pay and status verbatim. TotalPay is not recomputed.
func (s *PayrollService) UpdatePayroll(ctx context.Context, id int64, in dto.PayrollInput) (dto.Payroll, error) {
	if err := validatePayrollInput(&in); err != nil {
		return dto.Payroll{}, err
	}
	if in.TotalPay < 0 {
		return dto.Payroll{}, invalidf("totalPay must not be negative")
	}

	var updated *models.TrainerPayroll
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		repo := repository.NewPayrollRepository(tx)
		p, err := repo.FindByID(ctx, id)
		if err != nil {
			return notFound(err, "payroll", id)
		}

		p.MonthYear = in.MonthYear
		p.TotalHours = in.TotalHours
		p.TotalPay = in.TotalPay
		p.PaidStatus = in.PaidStatus
		if err := repo.Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return dto.Payroll{}, err
	}
	return dto.ToPayroll(updated), nil
}

// DeletePayroll removes the payroll. Deleting an unknown id succeeds.
func (s *PayrollService) DeletePayroll(ctx context.Context, id int64) error {
	return repository.NewPayrollRepository(s.db).DeleteByID(ctx, id)
}

// CalculateMonthlyHours sums the durations of the trainer's classes in period, in hours.
// The result is informational and is not written to any payroll.
func (s *PayrollService) CalculateMonthlyHours(ctx context.Context, trainerID int64, period models.Period) (float64, error) {
	if period.IsZero() {
		return 0, invalidf("monthYear is required")
	}
	classes, err := repository.NewClassRepository(s.db).FindTrainerClassesInMonth(ctx, trainerID, period)
	if err != nil {
		return 0, err
	}

	hours, skipped := SumClassHours(classes)
	if len(skipped) > 0 {
		zap.L().Warn("classes with non-positive duration counted as zero hours",
			zap.Int64("trainer_id", trainerID),
			zap.Stringer("month_year", period),
			zap.Int64s("class_ids", skipped),
		)
	}
	return hours, nil
}

// SumClassHours adds up class durations in hours. Classes whose end is not after
// their start contribute nothing and are returned in skipped.
func SumClassHours(classes []models.Class) (hours float64, skipped []int64) {
	var total time.Duration
	for i := range classes {
		d := classes[i].Duration()
		if d <= 0 {
			skipped = append(skipped, classes[i].ClassID)
			continue
		}
		total += d
	}
	return total.Hours(), skipped
}

var exportHeader = []any{"Payroll ID", "Trainer ID", "Trainer", "Month", "Hourly Rate", "Total Hours", "Total Pay", "Status"}

// ExportPayrolls writes an xlsx workbook of payrolls to w. A zero period exports every month.
func (s *PayrollService) ExportPayrolls(ctx context.Context, w io.Writer, period models.Period) error {
	payrolls, err := repository.NewPayrollRepository(s.db).FindForExport(ctx, period)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			zap.L().Warn("close workbook", zap.Error(err))
		}
	}()

	const sheet = "Payrolls"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range payrolls {
		p := &payrolls[i]
		var rate float64
		if p.Trainer != nil {
			rate = p.Trainer.HourlyRate
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			p.PayrollID,
			p.TrainerID,
			dto.TrainerName(p.Trainer),
			p.MonthYear.String(),
			rate,
			p.TotalHours,
			p.TotalPay,
			p.PaidStatus,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}

func validatePayrollInput(in *dto.PayrollInput) error {
	if in.MonthYear.IsZero() {
		return invalidf("monthYear is required")
	}
	if in.TotalHours < 0 {
		return invalidf("totalHours must not be negative")
	}
	if in.PaidStatus == "" {
		in.PaidStatus = models.PaidStatusUnpaid
	}
	if !models.IsValidPaidStatus(in.PaidStatus) {
		return invalidf("paidStatus must be %q or %q", models.PaidStatusPaid, models.PaidStatusUnpaid)
	}
	return nil
}
