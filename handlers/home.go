package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/vehicle-filter/ui"
)

// HandleHome creates a selection page, mounts it and renders it.
func (h *Handlers) HandleHome(c *fiber.Ctx) error {
	p, err := h.pages.New()
	if err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	}
	p.Mount(c.UserContext())
	return render(c, ui.SelectionPage(p.Snapshot()))
}
