package main

import (
	"log"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/quietfield/habitloop/internal/config"
	"github.com/quietfield/habitloop/internal/db"
	"github.com/quietfield/habitloop/internal/habitsvc"
	"github.com/quietfield/habitloop/internal/server"
	"github.com/quietfield/habitloop/internal/services"
)

func main() {
	_ = godotenv.Load()

	port := config.Env("PORT", "4002")
	dbPath := config.Env("DB_PATH", filepath.Join("data", "habit.db"))

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repositories := db.NewRepositories(database)
	handler := habitsvc.NewHandler(services.NewHabitService(repositories.Habits, repositories.Completions))

	app := server.New("habitloop-habitsvc")
	habitsvc.RegisterRoutes(app, handler)
	server.Run(app, "habitsvc", port)
}
