package gateway

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/quietfield/habitloop/internal/apperr"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// failWith is the single error-to-status boundary. Causes behind 5xx
// responses are logged here and never serialized to the client.
func failWith(c *fiber.Ctx, err error) error {
	status := apperr.StatusCode(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("gateway: %s %s failed: %v", c.Method(), c.Path(), err)
	}
	return apiError(c, status, apperr.ClientMessage(err))
}
