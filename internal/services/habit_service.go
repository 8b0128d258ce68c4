package services

import (
	"strings"
	"time"

	"github.com/quietfield/habitloop/internal/models"
)

// Range bounds applied when a completion query omits from/to.
const (
	openRangeFrom = "1970-01-01"
	openRangeTo   = "2999-12-31"
)

type HabitStoreRepository interface {
	Create(habit *models.Habit) error
	ListByUser(userID uint) ([]models.Habit, error)
}

type CompletionStoreRepository interface {
	Upsert(habitID uint, day string) (models.Completion, error)
	ListForUser(userID uint, from string, to string) ([]models.CompletionLog, error)
}

type HabitService struct {
	habits      HabitStoreRepository
	completions CompletionStoreRepository
}

func NewHabitService(habits HabitStoreRepository, completions CompletionStoreRepository) *HabitService {
	return &HabitService{habits: habits, completions: completions}
}

func (service *HabitService) CreateHabit(userID uint, name string, frequency string) (models.Habit, error) {
	frequency = strings.TrimSpace(frequency)
	if frequency == "" {
		frequency = models.DefaultFrequency
	}

	habit := models.Habit{
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		Frequency: frequency,
		CreatedAt: time.Now().UTC(),
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (service *HabitService) ListHabits(userID uint) ([]models.Habit, error) {
	return service.habits.ListByUser(userID)
}

// CompleteHabit upserts the completion for (habitID, day). It deliberately
// does not check habit ownership; see the gateway handler note.
func (service *HabitService) CompleteHabit(habitID uint, day string) (models.CompletionReceipt, error) {
	entry, err := service.completions.Upsert(habitID, day)
	if err != nil {
		return models.CompletionReceipt{}, err
	}
	return models.CompletionReceipt{
		HabitID:   entry.HabitID,
		Date:      entry.Date,
		Completed: entry.Completed,
	}, nil
}

func (service *HabitService) ListCompletions(userID uint, from string, to string) ([]models.CompletionLog, error) {
	if strings.TrimSpace(from) == "" {
		from = openRangeFrom
	}
	if strings.TrimSpace(to) == "" {
		to = openRangeTo
	}
	return service.completions.ListForUser(userID, from, to)
}
