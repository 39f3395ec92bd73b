package dto

import (
	"strings"

	"github.com/padraicbc/gymapi/models"
)

func ToUser(u *models.User) User {
	return User{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     deref(u.Phone),
		Address:   deref(u.Address),
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func ToTrainer(t *models.Trainer) Trainer {
	out := Trainer{
		TrainerID:      t.TrainerID,
		UserID:         t.UserID,
		Specialization: t.Specialization,
		Certifications: t.Certifications,
		HourlyRate:     t.HourlyRate,
		EmploymentType: t.EmploymentType,
		FullName:       TrainerName(t),
	}
	if t.HireDate != nil {
		out.HireDate = t.HireDate.UTC().Format(DateLayout)
	}
	return out
}

func ToClass(c *models.Class) Class {
	return Class{
		ClassID:     c.ClassID,
		ClassName:   c.ClassName,
		TrainerID:   c.TrainerID,
		TrainerName: TrainerName(c.Trainer),
		ClassDate:   c.ClassDate.UTC().Format(DateLayout),
		StartTime:   c.StartTime.UTC().Format(ClockLayout),
		EndTime:     c.EndTime.UTC().Format(ClockLayout),
		Capacity:    c.Capacity,
	}
}

func ToPayroll(p *models.TrainerPayroll) Payroll {
	return Payroll{
		PayrollID:  p.PayrollID,
		TrainerID:  p.TrainerID,
		MonthYear:  p.MonthYear,
		TotalHours: p.TotalHours,
		TotalPay:   p.TotalPay,
		PaidStatus: p.PaidStatus,
	}
}

// ToTrainerPayroll builds an unsaved payroll from input. TotalPay is left to the caller.
func ToTrainerPayroll(in PayrollInput) *models.TrainerPayroll {
	return &models.TrainerPayroll{
		TrainerID:  in.TrainerID,
		MonthYear:  in.MonthYear,
		TotalHours: in.TotalHours,
		PaidStatus: in.PaidStatus,
	}
}

// TrainerName is the linked user's full name, or "" when no user is loaded.
func TrainerName(t *models.Trainer) string {
	if t == nil || t.User == nil {
		return ""
	}
	return strings.TrimSpace(t.User.FirstName + " " + t.User.LastName)
}

// Map applies fn to every element of in.
func Map[M, D any](in []M, fn func(*M) D) []D {
	out := make([]D, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
