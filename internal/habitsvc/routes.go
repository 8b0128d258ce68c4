package habitsvc

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Post("/habits", handler.CreateHabit)
	app.Get("/habits", handler.ListHabits)
	app.Post("/habits/:id/completions", handler.CompleteHabit)
	app.Get("/habit-logs", handler.ListCompletions)
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func failWith(c *fiber.Ctx, err error) error {
	log.Printf("habitsvc: %s %s failed: %v", c.Method(), c.Path(), err)
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}
