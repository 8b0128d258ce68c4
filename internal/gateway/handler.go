// Package gateway is the single externally reachable entry point. It
// authenticates every call through the credential store, validates input,
// dispatches to the habit store, metrics aggregator and quote provider
// (concurrently where the reads are independent), and is the one place
// where failures are translated into HTTP status codes.
package gateway

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/quietfield/habitloop/internal/models"
)

type AuthVerifier interface {
	VerifyToken(ctx context.Context, token string) (uint, error)
}

type HabitStoreClient interface {
	CreateHabit(ctx context.Context, userID uint, name string, frequency string) (models.Habit, error)
	ListHabits(ctx context.Context, userID uint) ([]models.Habit, error)
	CompleteHabit(ctx context.Context, habitID uint, day string) (models.CompletionReceipt, error)
}

type SummaryClient interface {
	DailySummary(ctx context.Context, userID uint, day string) (models.DailySummary, error)
}

type QuoteFetcher interface {
	GetQuote(ctx context.Context) (models.Quote, error)
}

type Handler struct {
	auth   AuthVerifier
	habits HabitStoreClient
	stats  SummaryClient
	quotes QuoteFetcher
}

func NewHandler(auth AuthVerifier, habits HabitStoreClient, stats SummaryClient, quotes QuoteFetcher) *Handler {
	return &Handler{auth: auth, habits: habits, stats: stats, quotes: quotes}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
