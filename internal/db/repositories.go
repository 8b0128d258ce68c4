package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Tokens      *TokenRepository
	Habits      *HabitRepository
	Completions *CompletionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Tokens:      NewTokenRepository(database),
		Habits:      NewHabitRepository(database),
		Completions: NewCompletionRepository(database),
	}
}
