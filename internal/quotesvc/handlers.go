package quotesvc

import "github.com/gofiber/fiber/v2"

type Handler struct {
	source *Source
}

func NewHandler(source *Source) *Handler {
	return &Handler{source: source}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) GetQuote(c *fiber.Ctx) error {
	return c.JSON(handler.source.Fetch(c.UserContext()))
}

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/quote", handler.GetQuote)
}
