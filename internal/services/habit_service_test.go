package services

import (
	"testing"

	"github.com/quietfield/habitloop/internal/models"
)

type stubHabitRepository struct {
	created []models.Habit
	nextID  uint
}

func (stub *stubHabitRepository) Create(habit *models.Habit) error {
	stub.nextID++
	habit.ID = stub.nextID
	stub.created = append(stub.created, *habit)
	return nil
}

func (stub *stubHabitRepository) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	for _, habit := range stub.created {
		if habit.UserID == userID {
			habits = append(habits, habit)
		}
	}
	return habits, nil
}

type stubCompletionRepository struct {
	rows    map[uint]map[string]models.Completion
	gotFrom string
	gotTo   string
}

func newStubCompletionRepository() *stubCompletionRepository {
	return &stubCompletionRepository{rows: make(map[uint]map[string]models.Completion)}
}

func (stub *stubCompletionRepository) Upsert(habitID uint, day string) (models.Completion, error) {
	days, ok := stub.rows[habitID]
	if !ok {
		days = make(map[string]models.Completion)
		stub.rows[habitID] = days
	}
	entry := models.Completion{HabitID: habitID, Date: day, Completed: 1}
	days[day] = entry
	return entry, nil
}

func (stub *stubCompletionRepository) ListForUser(_ uint, from string, to string) ([]models.CompletionLog, error) {
	stub.gotFrom = from
	stub.gotTo = to
	return []models.CompletionLog{}, nil
}

func TestCreateHabitDefaultsFrequency(t *testing.T) {
	service := NewHabitService(&stubHabitRepository{}, newStubCompletionRepository())

	habit, err := service.CreateHabit(3, "Read 20 pages", "")
	if err != nil {
		t.Fatalf("create habit failed: %v", err)
	}
	if habit.Frequency != models.DefaultFrequency {
		t.Fatalf("expected default frequency %q, got %q", models.DefaultFrequency, habit.Frequency)
	}
	if habit.UserID != 3 {
		t.Fatalf("expected owner 3, got %d", habit.UserID)
	}
}

func TestCreateHabitKeepsCallerFrequencyLabel(t *testing.T) {
	service := NewHabitService(&stubHabitRepository{}, newStubCompletionRepository())

	habit, err := service.CreateHabit(3, "Call parents", "every-sunday")
	if err != nil {
		t.Fatalf("create habit failed: %v", err)
	}
	if habit.Frequency != "every-sunday" {
		t.Fatalf("expected caller-supplied frequency kept, got %q", habit.Frequency)
	}
}

func TestCompleteHabitTwiceKeepsOneRow(t *testing.T) {
	completions := newStubCompletionRepository()
	service := NewHabitService(&stubHabitRepository{}, completions)

	first, err := service.CompleteHabit(5, "2024-01-01")
	if err != nil {
		t.Fatalf("first completion failed: %v", err)
	}
	second, err := service.CompleteHabit(5, "2024-01-01")
	if err != nil {
		t.Fatalf("second completion failed: %v", err)
	}

	if first != second {
		t.Fatalf("expected identical receipts, got %#v and %#v", first, second)
	}
	if len(completions.rows[5]) != 1 {
		t.Fatalf("expected one stored row, got %d", len(completions.rows[5]))
	}
}

func TestListCompletionsAppliesOpenRangeBounds(t *testing.T) {
	completions := newStubCompletionRepository()
	service := NewHabitService(&stubHabitRepository{}, completions)

	if _, err := service.ListCompletions(1, "", ""); err != nil {
		t.Fatalf("list completions failed: %v", err)
	}
	if completions.gotFrom != "1970-01-01" || completions.gotTo != "2999-12-31" {
		t.Fatalf("expected open range bounds, got %s..%s", completions.gotFrom, completions.gotTo)
	}

	if _, err := service.ListCompletions(1, "2024-01-01", "2024-01-31"); err != nil {
		t.Fatalf("list completions failed: %v", err)
	}
	if completions.gotFrom != "2024-01-01" || completions.gotTo != "2024-01-31" {
		t.Fatalf("expected explicit range kept, got %s..%s", completions.gotFrom, completions.gotTo)
	}
}
