package handlers

import (
	"github.com/labstack/echo/v4"

	mw "github.com/padraicbc/gymapi/middleware"
	"github.com/padraicbc/gymapi/models"
)

// Routes registers the API on e. Schedule reads need any valid token, user and
// payroll reads need staff or admin, and writes need admin.
func (h *Handler) Routes(e *echo.Echo) {
	e.HTTPErrorHandler = ErrorHandler

	// Public
	e.POST("/api/auth/login", h.Login)
	e.POST("/api/auth/register", h.Register)

	api := e.Group("/api", mw.JWT(h.JWTKey))
	admin := mw.RequireRole(models.RoleAdmin)
	staff := mw.RequireRole(models.RoleAdmin, models.RoleStaff)

	api.GET("/auth/me", h.Me)

	api.GET("/users", h.ListUsers, staff)
	api.GET("/users/:id", h.GetUser)
	api.POST("/users", h.CreateUser, admin)
	api.PUT("/users/:id", h.UpdateUser, admin)
	api.PUT("/users/:id/password", h.ChangePassword, admin)
	api.DELETE("/users/:id", h.DeleteUser, admin)

	api.GET("/trainers", h.ListTrainers)
	api.GET("/trainers/:id", h.GetTrainer)
	api.POST("/trainers", h.CreateTrainer, admin)
	api.PUT("/trainers/:id", h.UpdateTrainer, admin)
	api.DELETE("/trainers/:id", h.DeleteTrainer, admin)

	api.GET("/classes", h.ListClasses)
	api.GET("/classes/:id", h.GetClass)
	api.POST("/classes", h.CreateClass, admin)
	api.PUT("/classes/:id", h.UpdateClass, admin)
	api.DELETE("/classes/:id", h.DeleteClass, admin)

	api.GET("/payrolls", h.ListPayrolls, staff)
	api.GET("/payrolls/auto-hours", h.AutoHours, staff)
	api.GET("/payrolls/export", h.ExportPayrolls, admin)
	api.GET("/payrolls/:id", h.GetPayroll, staff)
	api.POST("/payrolls", h.CreatePayroll, admin)
	api.PUT("/payrolls/:id", h.UpdatePayroll, admin)
	api.DELETE("/payrolls/:id", h.DeletePayroll, admin)

	api.GET("/dashboard/counts", h.Counts)
	api.GET("/dashboard/classes/upcoming", h.UpcomingClasses)
}
