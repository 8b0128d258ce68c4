package db

import (
	"github.com/quietfield/habitloop/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompletionRepository struct {
	database *gorm.DB
}

func NewCompletionRepository(database *gorm.DB) *CompletionRepository {
	return &CompletionRepository{database: database}
}

// Upsert records a completion for (habitID, day). Re-marking the same day
// rewrites the existing row, so the pair stays unique.
func (repo *CompletionRepository) Upsert(habitID uint, day string) (models.Completion, error) {
	entry := models.Completion{HabitID: habitID, Date: day, Completed: 1}
	err := repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "habit_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]any{"completed": 1}),
	}).Create(&entry).Error
	if err != nil {
		return models.Completion{}, err
	}
	return entry, nil
}

// ListForUser returns the user's completion rows joined with habit ownership,
// restricted to the inclusive [from, to] day range, oldest first.
func (repo *CompletionRepository) ListForUser(userID uint, from string, to string) ([]models.CompletionLog, error) {
	rows := make([]models.CompletionLog, 0)
	err := repo.database.
		Table("habit_logs").
		Select("habit_logs.id, habit_logs.habit_id, habit_logs.date, habit_logs.completed, habits.user_id, habits.name").
		Joins("JOIN habits ON habits.id = habit_logs.habit_id").
		Where("habits.user_id = ? AND habit_logs.date >= ? AND habit_logs.date <= ?", userID, from, to).
		Order("habit_logs.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountForDay reports how many rows exist for a (habit, day) pair. Used to
// verify upsert idempotency.
func (repo *CompletionRepository) CountForDay(habitID uint, day string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Completion{}).
		Where("habit_id = ? AND date = ?", habitID, day).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
