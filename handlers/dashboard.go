package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/gymapi/services"
)

// Counts returns the row counts shown on the dashboard cards.
func (h *Handler) Counts(c echo.Context) error {
	counts, err := h.dashboard.Counts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}

// UpcomingClasses pages through classes from today onwards using ?limit and ?page.
func (h *Handler) UpcomingClasses(c echo.Context) error {
	limit, err := queryInt(c, "limit", services.DefaultUpcomingLimit)
	if err != nil {
		return err
	}
	page, err := queryInt(c, "page", 0)
	if err != nil {
		return err
	}

	classes, err := h.dashboard.UpcomingClasses(c.Request().Context(), limit, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classes)
}
