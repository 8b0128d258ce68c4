package statssvc

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	errUserIDRequired = errors.New("userId required")
	errInvalidDate    = errors.New("invalid date")
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/daily-summary", handler.DailySummary)
	app.Get("/streaks", handler.Streaks)
}
