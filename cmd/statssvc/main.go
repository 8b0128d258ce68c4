package main

import (
	"github.com/joho/godotenv"
	"github.com/quietfield/habitloop/internal/clients"
	"github.com/quietfield/habitloop/internal/config"
	"github.com/quietfield/habitloop/internal/server"
	"github.com/quietfield/habitloop/internal/services"
	"github.com/quietfield/habitloop/internal/statssvc"
)

func main() {
	_ = godotenv.Load()

	port := config.Env("PORT", "4004")
	habitURL := config.Env("HABIT_DATA_URL", "http://localhost:4002")
	lookbackDays := config.EnvInt("STREAK_LOOKBACK_DAYS", services.DefaultLookbackDays)

	metrics := services.NewMetricsService(clients.NewHabitClient(habitURL), lookbackDays)
	handler := statssvc.NewHandler(metrics)

	app := server.New("habitloop-statssvc")
	statssvc.RegisterRoutes(app, handler)
	server.Run(app, "statssvc", port)
}
