package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleMakes returns every car make as JSON.
func (h *Handlers) HandleMakes(c *fiber.Ctx) error {
	makes, err := h.api.GetMakes(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}
	return c.JSON(makes)
}

// HandleModels returns the models for the makeId and year query parameters
// as JSON.
func (h *Handlers) HandleModels(c *fiber.Ctx) error {
	makeID := c.Query("makeId")
	if makeID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "makeId is required")
	}
	year := c.Query("year")
	if year == "" {
		return fiber.NewError(fiber.StatusBadRequest, "year is required")
	}

	models, err := h.api.GetModels(c.UserContext(), makeID, year)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}
	return c.JSON(models)
}
