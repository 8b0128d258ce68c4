// Package server carries the fiber app scaffolding shared by all five
// binaries: middleware, listen, and signal-driven shutdown.
package server

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func New(appName string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	return app
}

// Run blocks serving the app until SIGINT/SIGTERM, then shuts down with a
// 10 second drain window.
func Run(app *fiber.App, appName string, port string) {
	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("%s: shutdown failed: %v", appName, err)
		}
	}()

	log.Printf("%s listening on http://0.0.0.0:%s", appName, port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("%s: server exited: %v", appName, err)
	}
}
