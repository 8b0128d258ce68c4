// Package config reads service settings from the environment. Every binary
// loads an optional .env file first (via godotenv in main) and falls back to
// built-in defaults, so a bare `go run` works out of the box.
package config

import (
	"os"
	"strconv"
	"strings"
)

func Env(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func EnvInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
