package handlers

import "github.com/gofiber/fiber/v2"

// Register mounts every route on app. selectionLimiter guards the endpoints
// that fan out to the vehicle API on each dropdown change.
func Register(app *fiber.App, h *Handlers, selectionLimiter fiber.Handler) {
	// Selection page
	app.Get("/", h.HandleHome)
	app.Post("/selection/:pageID/make", selectionLimiter, h.HandleSelectMake)
	app.Post("/selection/:pageID/year", selectionLimiter, h.HandleSelectYear)

	// Results page
	app.Get("/result/:makeId/:year", h.HandleResultPage)
	app.Get("/result/:makeId/:year/models", h.HandleResultModels)

	// API group
	api := app.Group("/api")
	api.Get("/makes", h.HandleMakes)
	api.Get("/models", h.HandleModels)

	// Health check
	app.Get("/health", h.HandleHealth)

	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
}
