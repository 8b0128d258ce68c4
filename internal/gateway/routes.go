package gateway

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	app.Post("/add-habit", handler.AuthRequired, handler.AddHabit)
	app.Get("/list-habits", handler.AuthRequired, handler.ListHabits)
	app.Post("/complete-habit", handler.AuthRequired, handler.CompleteHabit)
	app.Get("/daily-summary", handler.AuthRequired, handler.DailySummary)
}
