// Package habitsvc is the habit store's HTTP surface: habit CRUD, the
// idempotent completion upsert and the ownership-joined completion range
// query.
package habitsvc

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/quietfield/habitloop/internal/services"
	"github.com/quietfield/habitloop/internal/timeutil"
)

type Handler struct {
	habits *services.HabitService
}

func NewHandler(habits *services.HabitService) *Handler {
	return &Handler{habits: habits}
}

type createHabitInput struct {
	UserID    uint   `json:"userId"`
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
}

type completionInput struct {
	Date string `json:"date"`
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	var input createHabitInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.UserID == 0 || strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Frequency) == "" {
		return apiError(c, fiber.StatusBadRequest, "userId, name, frequency required")
	}

	habit, err := handler.habits.CreateHabit(input.UserID, input.Name, input.Frequency)
	if err != nil {
		return failWith(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	userID, err := parseUserIDQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "userId required")
	}

	habits, err := handler.habits.ListHabits(userID)
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(habits)
}

// CompleteHabit upserts the completion row for (habit, day). Re-marking the
// same day replaces the row, so the call is idempotent by construction.
func (handler *Handler) CompleteHabit(c *fiber.Ctx) error {
	habitID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || habitID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	var input completionInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid request body")
		}
	}

	day := strings.TrimSpace(input.Date)
	if day == "" {
		day = timeutil.Today()
	} else if _, err := timeutil.ParseDay(day); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	receipt, err := handler.habits.CompleteHabit(uint(habitID), day)
	if err != nil {
		return failWith(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

func (handler *Handler) ListCompletions(c *fiber.Ctx) error {
	userID, err := parseUserIDQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "userId required")
	}

	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from != "" {
		if _, err := timeutil.ParseDay(from); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid from date")
		}
	}
	if to != "" {
		if _, err := timeutil.ParseDay(to); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid to date")
		}
	}

	logs, err := handler.habits.ListCompletions(userID, from, to)
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(logs)
}

func parseUserIDQuery(c *fiber.Ctx) (uint, error) {
	userID, err := strconv.ParseUint(strings.TrimSpace(c.Query("userId")), 10, 64)
	if err != nil || userID == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(userID), nil
}
