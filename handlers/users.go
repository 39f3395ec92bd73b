package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/gymapi/dto"
	mw "github.com/padraicbc/gymapi/middleware"
	"github.com/padraicbc/gymapi/models"
)

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.auth.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser returns one user. Members may only read their own record.
func (h *Handler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if p.UserID != id && p.Role != models.RoleAdmin && p.Role != models.RoleStaff {
		return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
	}

	user, err := h.auth.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var in dto.UserInput
	if err := c.Bind(&in); err != nil {
		return err
	}

	user, err := h.auth.CreateUser(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in dto.UserInput
	if err := c.Bind(&in); err != nil {
		return err
	}

	user, err := h.auth.UpdateUser(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.auth.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ChangePassword(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in dto.PasswordChange
	if err := c.Bind(&in); err != nil {
		return err
	}

	if err := h.auth.ChangePassword(c.Request().Context(), id, in.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
