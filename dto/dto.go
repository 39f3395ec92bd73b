// Package dto holds the JSON transfer objects served by the API and the
// mappers between them and the bun models.
package dto

import (
	"time"

	"github.com/padraicbc/gymapi/models"
)

// Layouts used on the wire.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

type User struct {
	UserID    int64     `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type Trainer struct {
	TrainerID      int64   `json:"trainerId"`
	UserID         *int64  `json:"userId"`
	FullName       string  `json:"fullName,omitempty"`
	Specialization string  `json:"specialization"`
	Certifications string  `json:"certifications"`
	HireDate       string  `json:"hireDate,omitempty"`
	HourlyRate     float64 `json:"hourlyRate"`
	EmploymentType string  `json:"employmentType"`
}

type Class struct {
	ClassID     int64  `json:"classId"`
	ClassName   string `json:"className"`
	TrainerID   int64  `json:"trainerId"`
	TrainerName string `json:"trainerName,omitempty"`
	ClassDate   string `json:"classDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Capacity    *int   `json:"capacity"`
}

type Payroll struct {
	PayrollID  int64         `json:"payrollId"`
	TrainerID  int64         `json:"trainerId"`
	MonthYear  models.Period `json:"monthYear"`
	TotalHours float64       `json:"totalHours"`
	TotalPay   float64       `json:"totalPay"`
	PaidStatus string        `json:"paidStatus"`
}

// PayrollInput is the create/update body for a payroll. TotalPay is ignored on create.
type PayrollInput struct {
	TrainerID  int64         `json:"trainerId"`
	MonthYear  models.Period `json:"monthYear"`
	TotalHours float64       `json:"totalHours"`
	TotalPay   float64       `json:"totalPay"`
	PaidStatus string        `json:"paidStatus"`
}

// MonthlyHours is the result of the auto-hours calculation.
type MonthlyHours struct {
	TrainerID  int64         `json:"trainerId"`
	MonthYear  models.Period `json:"monthYear"`
	TotalHours float64       `json:"totalHours"`
}

type TrainerInput struct {
	UserID         *int64  `json:"userId"`
	Specialization string  `json:"specialization"`
	Certifications string  `json:"certifications"`
	HireDate       string  `json:"hireDate"`
	HourlyRate     float64 `json:"hourlyRate"`
	EmploymentType string  `json:"employmentType"`
}

type ClassInput struct {
	ClassName string `json:"className"`
	TrainerID int64  `json:"trainerId"`
	ClassDate string `json:"classDate"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Capacity  *int   `json:"capacity"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// Counts backs the dashboard summary cards.
type Counts struct {
	Users    int `json:"users"`
	Trainers int `json:"trainers"`
	Classes  int `json:"classes"`
	Payrolls int `json:"payrolls"`
}

// UserInput is the admin create/update body for a user. Password is required on
// create and ignored on update; role defaults to member.
type UserInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Role      string `json:"role"`
}

type PasswordChange struct {
	Password string `json:"password"`
}
