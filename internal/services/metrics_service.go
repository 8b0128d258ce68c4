package services

import (
	"context"
	"math"
	"sync"

	"github.com/quietfield/habitloop/internal/models"
	"github.com/quietfield/habitloop/internal/timeutil"
)

// DefaultLookbackDays bounds the streak walk. A streak longer than the
// lookback window is reported as the window length.
const DefaultLookbackDays = 60

// HabitSource is the metrics aggregator's read-only view of the habit store.
type HabitSource interface {
	ListHabits(ctx context.Context, userID uint) ([]models.Habit, error)
	ListCompletions(ctx context.Context, userID uint, from string, to string) ([]models.CompletionLog, error)
}

type MetricsService struct {
	source       HabitSource
	lookbackDays int
}

func NewMetricsService(source HabitSource, lookbackDays int) *MetricsService {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	return &MetricsService{source: source, lookbackDays: lookbackDays}
}

// DailySummary reports, habit by habit, whether a completion exists on the
// given day, plus the completion rate rounded half-up to a whole percent.
// A user with no habits gets an empty summary and rate 0.
func (service *MetricsService) DailySummary(ctx context.Context, userID uint, day string) (models.DailySummary, error) {
	habits, logs, err := service.fetchHabitsAndLogs(ctx, userID, day, day)
	if err != nil {
		return models.DailySummary{}, err
	}

	completedIDs := make(map[uint]struct{}, len(logs))
	for _, entry := range logs {
		if entry.Completed != 0 {
			completedIDs[entry.HabitID] = struct{}{}
		}
	}

	summary := make([]models.SummaryItem, 0, len(habits))
	completedCount := 0
	for _, habit := range habits {
		_, completed := completedIDs[habit.ID]
		if completed {
			completedCount++
		}
		summary = append(summary, models.SummaryItem{
			HabitID:   habit.ID,
			Name:      habit.Name,
			Completed: completed,
		})
	}

	rate := 0
	if len(habits) > 0 {
		rate = int(math.Round(float64(completedCount) / float64(len(habits)) * 100))
	}

	return models.DailySummary{
		Date:           day,
		Summary:        summary,
		CompletionRate: rate,
	}, nil
}

// Streaks counts, per habit, the consecutive completed days ending at the
// reference day. The walk steps backward one calendar day at a time and stops
// at the first gap, so a missing reference day means streak 0 regardless of
// earlier history.
func (service *MetricsService) Streaks(ctx context.Context, userID uint, day string) (models.StreakReport, error) {
	reference, err := timeutil.ParseDay(day)
	if err != nil {
		return models.StreakReport{}, err
	}
	from := timeutil.FormatDay(reference.AddDate(0, 0, -service.lookbackDays))

	habits, logs, err := service.fetchHabitsAndLogs(ctx, userID, from, day)
	if err != nil {
		return models.StreakReport{}, err
	}

	daysByHabit := make(map[uint]map[string]struct{}, len(habits))
	for _, entry := range logs {
		if entry.Completed == 0 {
			continue
		}
		days, ok := daysByHabit[entry.HabitID]
		if !ok {
			days = make(map[string]struct{})
			daysByHabit[entry.HabitID] = days
		}
		days[entry.Date] = struct{}{}
	}

	streaks := make([]models.StreakRecord, 0, len(habits))
	for _, habit := range habits {
		days := daysByHabit[habit.ID]
		streak := 0
		for cursor := reference; ; cursor = cursor.AddDate(0, 0, -1) {
			if _, present := days[timeutil.FormatDay(cursor)]; !present {
				break
			}
			streak++
		}
		streaks = append(streaks, models.StreakRecord{
			HabitID:   habit.ID,
			HabitName: habit.Name,
			Streak:    streak,
		})
	}

	return models.StreakReport{Date: day, Streaks: streaks}, nil
}

// fetchHabitsAndLogs issues the two habit store reads concurrently and joins
// them; either failure fails the computation.
func (service *MetricsService) fetchHabitsAndLogs(ctx context.Context, userID uint, from string, to string) ([]models.Habit, []models.CompletionLog, error) {
	var (
		habits    []models.Habit
		logs      []models.CompletionLog
		habitsErr error
		logsErr   error
	)

	var group sync.WaitGroup
	group.Add(2)
	go func() {
		defer group.Done()
		habits, habitsErr = service.source.ListHabits(ctx, userID)
	}()
	go func() {
		defer group.Done()
		logs, logsErr = service.source.ListCompletions(ctx, userID, from, to)
	}()
	group.Wait()

	if habitsErr != nil {
		return nil, nil, habitsErr
	}
	if logsErr != nil {
		return nil, nil, logsErr
	}
	return habits, logs, nil
}
