package gateway

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/quietfield/habitloop/internal/models"
	"github.com/quietfield/habitloop/internal/timeutil"
)

type addHabitInput struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
}

type completeHabitInput struct {
	HabitID uint   `json:"habitId"`
	Date    string `json:"date"`
}

func (handler *Handler) AddHabit(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input addHabitInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(input.Name) == "" {
		return apiError(c, fiber.StatusBadRequest, "name required")
	}
	frequency := strings.TrimSpace(input.Frequency)
	if frequency == "" {
		frequency = models.DefaultFrequency
	}

	habit, err := handler.habits.CreateHabit(c.UserContext(), userID, strings.TrimSpace(input.Name), frequency)
	if err != nil {
		return failWith(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habits, err := handler.habits.ListHabits(c.UserContext(), userID)
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(habits)
}

// CompleteHabit forwards the completion for any habitId once the caller is
// authenticated. It does not check that the habit belongs to the caller; the
// source system never did, and tightening it would change observable
// behavior.
func (handler *Handler) CompleteHabit(c *fiber.Ctx) error {
	if _, ok := currentUserID(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input completeHabitInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.HabitID == 0 {
		return apiError(c, fiber.StatusBadRequest, "habitId required")
	}

	day := strings.TrimSpace(input.Date)
	if day == "" {
		day = timeutil.Today()
	} else if _, err := timeutil.ParseDay(day); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	receipt, err := handler.habits.CompleteHabit(c.UserContext(), input.HabitID, day)
	if err != nil {
		return failWith(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

// DailySummary fans out to the metrics aggregator and the quote provider
// concurrently and waits for both before responding. Either failure fails
// the whole request; the quote provider's internal fallback is the only
// safety net for quote lookups.
func (handler *Handler) DailySummary(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day := strings.TrimSpace(c.Query("date"))
	if day == "" {
		day = timeutil.Today()
	} else if _, err := timeutil.ParseDay(day); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	ctx := c.UserContext()

	var (
		summary    models.DailySummary
		quote      models.Quote
		summaryErr error
		quoteErr   error
	)

	var group sync.WaitGroup
	group.Add(2)
	go func() {
		defer group.Done()
		summary, summaryErr = handler.stats.DailySummary(ctx, userID, day)
	}()
	go func() {
		defer group.Done()
		quote, quoteErr = handler.quotes.GetQuote(ctx)
	}()
	group.Wait()

	if summaryErr != nil {
		return failWith(c, summaryErr)
	}
	if quoteErr != nil {
		return failWith(c, quoteErr)
	}

	return c.JSON(models.SummaryWithQuote{DailySummary: summary, Quote: quote})
}
