package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/gymapi/dto"
)

func (h *Handler) ListClasses(c echo.Context) error {
	classes, err := h.classes.ListClasses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classes)
}

func (h *Handler) GetClass(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	class, err := h.classes.GetClass(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, class)
}

func (h *Handler) CreateClass(c echo.Context) error {
	var in dto.ClassInput
	if err := c.Bind(&in); err != nil {
		return err
	}

	class, err := h.classes.CreateClass(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, class)
}

func (h *Handler) UpdateClass(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in dto.ClassInput
	if err := c.Bind(&in); err != nil {
		return err
	}

	class, err := h.classes.UpdateClass(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, class)
}

func (h *Handler) DeleteClass(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.classes.DeleteClass(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
