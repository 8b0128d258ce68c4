// Package statssvc is the metrics aggregator's HTTP surface. It holds no
// storage; both operations are pure computations over habit store reads.
package statssvc

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/quietfield/habitloop/internal/apperr"
	"github.com/quietfield/habitloop/internal/services"
	"github.com/quietfield/habitloop/internal/timeutil"
)

type Handler struct {
	metrics *services.MetricsService
}

func NewHandler(metrics *services.MetricsService) *Handler {
	return &Handler{metrics: metrics}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) DailySummary(c *fiber.Ctx) error {
	userID, day, err := summaryParams(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	summary, err := handler.metrics.DailySummary(c.UserContext(), userID, day)
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(summary)
}

func (handler *Handler) Streaks(c *fiber.Ctx) error {
	userID, day, err := summaryParams(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	report, err := handler.metrics.Streaks(c.UserContext(), userID, day)
	if err != nil {
		return failWith(c, err)
	}
	return c.JSON(report)
}

func summaryParams(c *fiber.Ctx) (uint, string, error) {
	userID, err := strconv.ParseUint(strings.TrimSpace(c.Query("userId")), 10, 64)
	if err != nil || userID == 0 {
		return 0, "", errUserIDRequired
	}

	day := strings.TrimSpace(c.Query("date"))
	if day == "" {
		return uint(userID), timeutil.Today(), nil
	}
	if _, err := timeutil.ParseDay(day); err != nil {
		return 0, "", errInvalidDate
	}
	return uint(userID), day, nil
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func failWith(c *fiber.Ctx, err error) error {
	status := apperr.StatusCode(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("statssvc: %s %s failed: %v", c.Method(), c.Path(), err)
	}
	return apiError(c, status, apperr.ClientMessage(err))
}
