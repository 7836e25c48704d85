package utils

import (
	"errors"

	"formbuilder/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError writes {message, error}; err may be nil.
func HandleError(c *fiber.Ctx, status int, message string, err error) error {
	body := models.ErrorResponse{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	return c.Status(status).JSON(body)
}

// StatusFor maps the service error taxonomy onto the HTTP surface. Store and validation failures
// are both client-visible 400s.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadRequest
	}
}

// ErrorHandler is the app-wide fallback for errors a handler returns instead of writing itself,
// such as unknown routes or recovered panics.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return HandleError(c, fe.Code, fe.Message, nil)
	}
	return HandleError(c, fiber.StatusInternalServerError, "Internal server error", err)
}
