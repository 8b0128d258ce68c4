package main

import (
	"log"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/quietfield/habitloop/internal/authsvc"
	"github.com/quietfield/habitloop/internal/config"
	"github.com/quietfield/habitloop/internal/db"
	"github.com/quietfield/habitloop/internal/server"
	"github.com/quietfield/habitloop/internal/services"
)

func main() {
	_ = godotenv.Load()

	port := config.Env("PORT", "4001")
	dbPath := config.Env("DB_PATH", filepath.Join("data", "habit.db"))

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repositories := db.NewRepositories(database)
	handler := authsvc.NewHandler(services.NewAuthService(repositories.Users, repositories.Tokens))

	app := server.New("habitloop-authsvc")
	authsvc.RegisterRoutes(app, handler)
	server.Run(app, "authsvc", port)
}
