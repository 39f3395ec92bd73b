package handlers

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/services"
)

// Handler holds the services used by all route handlers.
type Handler struct {
	auth      *services.AuthService
	trainers  *services.TrainerService
	classes   *services.ClassService
	payrolls  *services.PayrollService
	dashboard *services.DashboardService
	JWTKey    []byte
}

// New creates a Handler over the given database connection, JWT signing key and token lifetime.
func New(db *bun.DB, jwtKey []byte, tokenTTL time.Duration) *Handler {
	return &Handler{
		auth:      services.NewAuthService(db, jwtKey, tokenTTL),
		trainers:  services.NewTrainerService(db),
		classes:   services.NewClassService(db),
		payrolls:  services.NewPayrollService(db),
		dashboard: services.NewDashboardService(db),
		JWTKey:    jwtKey,
	}
}
