package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/gymapi/dto"
	"github.com/padraicbc/gymapi/models"
	"github.com/padraicbc/gymapi/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) ListPayrolls(c echo.Context) error {
	payrolls, err := h.payrolls.ListPayrolls(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payrolls)
}

func (h *Handler) GetPayroll(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	payroll, err := h.payrolls.GetPayroll(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payroll)
}

// CreatePayroll stores a payroll; totalPay is computed from the trainer's hourly rate.
func (h *Handler) CreatePayroll(c echo.Context) error {
	var in dto.PayrollInput
	if err := c.Bind(&in); err != nil {
		return err
	}

	payroll, err := h.payrolls.CreatePayroll(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payroll)
}

// UpdatePayroll overwrites a payroll with the submitted values, totalPay included.
func (h *Handler) UpdatePayroll(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in dto.PayrollInput
	if err := c.Bind(&in); err != nil {
		return err
	}

	payroll, err := h.payrolls.UpdatePayroll(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payroll)
}

func (h *Handler) DeletePayroll(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.payrolls.DeletePayroll(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AutoHours sums the scheduled class hours of ?trainerId for the ?month pay period.
func (h *Handler) AutoHours(c echo.Context) error {
	trainerID, err := strconv.ParseInt(c.QueryParam("trainerId"), 10, 64)
	if err != nil || trainerID < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "trainerId must be a positive integer")
	}
	period, err := parseMonth(c.QueryParam("month"))
	if err != nil {
		return err
	}

	hours, err := h.payrolls.CalculateMonthlyHours(c.Request().Context(), trainerID, period)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.MonthlyHours{
		TrainerID:  trainerID,
		MonthYear:  period,
		TotalHours: hours,
	})
}

// ExportPayrolls streams the payrolls as an xlsx workbook, optionally limited to ?month.
func (h *Handler) ExportPayrolls(c echo.Context) error {
	var period models.Period
	name := "payrolls.xlsx"
	if m := c.QueryParam("month"); m != "" {
		p, err := parseMonth(m)
		if err != nil {
			return err
		}
		period = p
		name = fmt.Sprintf("payrolls-%s.xlsx", p)
	}

	var buf bytes.Buffer
	if err := h.payrolls.ExportPayrolls(c.Request().Context(), &buf, period); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func parseMonth(s string) (models.Period, error) {
	p, err := models.ParsePeriod(s)
	if err != nil {
		return models.Period{}, fmt.Errorf("%w: month: %w", services.ErrInvalidInput, err)
	}
	return p, nil
}
