package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/vehicle-filter/ui"
)

const internalErrorMessage = "Something went wrong. Please try again later."

// CustomErrorHandler renders application errors as an HTML error page
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		log.Printf("[server] %s %s: %v", ctx.Method(), ctx.Path(), err)
		message = internalErrorMessage
	}

	ctx.Status(code)
	return render(ctx, ui.ErrorPage(code, message))
}
