package authsvc

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Post("/register", handler.Register)
	app.Post("/login", handler.Login)
	app.Get("/verify-token", handler.VerifyToken)
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func failWith(c *fiber.Ctx, err error) error {
	log.Printf("authsvc: %s %s failed: %v", c.Method(), c.Path(), err)
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}
