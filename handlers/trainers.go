package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/gymapi/dto"
)

// ListTrainers returns all trainers with the linked user's name.
func (h *Handler) ListTrainers(c echo.Context) error {
	trainers, err := h.trainers.ListTrainers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trainers)
}

func (h *Handler) GetTrainer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	trainer, err := h.trainers.GetTrainer(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trainer)
}

func (h *Handler) CreateTrainer(c echo.Context) error {
	var in dto.TrainerInput
	if err := c.Bind(&in); err != nil {
		return err
	}

	trainer, err := h.trainers.CreateTrainer(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, trainer)
}

func (h *Handler) UpdateTrainer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in dto.TrainerInput
	if err := c.Bind(&in); err != nil {
		return err
	}

	trainer, err := h.trainers.UpdateTrainer(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trainer)
}

// DeleteTrainer removes a trainer along with their classes and payrolls.
func (h *Handler) DeleteTrainer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.trainers.DeleteTrainer(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
