package main

import (
	"github.com/joho/godotenv"
	"github.com/quietfield/habitloop/internal/config"
	"github.com/quietfield/habitloop/internal/quotesvc"
	"github.com/quietfield/habitloop/internal/server"
)

func main() {
	_ = godotenv.Load()

	port := config.Env("PORT", "4003")
	upstreamURL := config.Env("QUOTE_API_URL", quotesvc.DefaultUpstreamURL)

	handler := quotesvc.NewHandler(quotesvc.NewSource(upstreamURL))

	app := server.New("habitloop-quotesvc")
	quotesvc.RegisterRoutes(app, handler)
	server.Run(app, "quotesvc", port)
}
