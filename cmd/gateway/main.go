package main

import (
	"github.com/joho/godotenv"
	"github.com/quietfield/habitloop/internal/clients"
	"github.com/quietfield/habitloop/internal/config"
	"github.com/quietfield/habitloop/internal/gateway"
	"github.com/quietfield/habitloop/internal/server"
)

func main() {
	_ = godotenv.Load()

	port := config.Env("PORT", "4000")
	authURL := config.Env("AUTH_URL", "http://localhost:4001")
	habitURL := config.Env("HABIT_DATA_URL", "http://localhost:4002")
	quoteURL := config.Env("QUOTE_URL", "http://localhost:4003")
	statsURL := config.Env("STATS_URL", "http://localhost:4004")

	handler := gateway.NewHandler(
		clients.NewAuthClient(authURL),
		clients.NewHabitClient(habitURL),
		clients.NewStatsClient(statsURL),
		clients.NewQuoteClient(quoteURL),
	)

	app := server.New("habitloop-gateway")
	gateway.RegisterRoutes(app, handler)
	server.Run(app, "gateway", port)
}
