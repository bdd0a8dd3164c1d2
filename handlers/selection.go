package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/vehicle-filter/selection"
	"github.com/parts-pile/vehicle-filter/ui"
)

// HandleSelectMake applies a make change. Both form fields are read so the
// page matches the dropdowns.
func (h *Handlers) HandleSelectMake(c *fiber.Ctx) error {
	p, err := h.page(c)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	p.Select(c.UserContext(), c.FormValue("make"), c.FormValue("year"))
	return render(c, ui.SelectionResults(p.Snapshot()))
}

// HandleSelectYear applies a year change.
func (h *Handlers) HandleSelectYear(c *fiber.Ctx) error {
	p, err := h.page(c)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	p.Select(c.UserContext(), c.FormValue("make"), c.FormValue("year"))
	return render(c, ui.SelectionResults(p.Snapshot()))
}

// page looks up the selection page named in the path. When it has expired,
// htmx requests get an HX-Refresh so the browser reloads a fresh page and a
// nil page is returned; other requests get a 404.
func (h *Handlers) page(c *fiber.Ctx) (*selection.Page, error) {
	id := c.Params("pageID")
	p, err := h.pages.Get(id)
	if errors.Is(err, selection.ErrPageNotFound) {
		log.Printf("[selection] page %q not found", id)
		if isHTMX(c) {
			c.Set("HX-Refresh", "true")
			return nil, c.SendStatus(fiber.StatusNoContent)
		}
		return nil, fiber.NewError(fiber.StatusNotFound, "This page has expired. Start over to pick a vehicle.")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
