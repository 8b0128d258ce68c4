package db

import (
	"github.com/quietfield/habitloop/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

// ListByUser returns the user's habits in creation order.
func (repo *HabitRepository) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}
