package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/gymapi/dto"
	mw "github.com/padraicbc/gymapi/middleware"
)

// Login validates credentials and returns a signed token together with the user.
func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	resp, err := h.auth.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Register creates a member account. The body is empty on success.
func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.auth.Register(c.Request().Context(), req); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Me returns the user the request token was issued to.
func (h *Handler) Me(c echo.Context) error {
	p, ok := mw.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := h.auth.UserByEmail(c.Request().Context(), p.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
