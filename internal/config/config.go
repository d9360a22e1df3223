package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	DatabasePath string
	LogLevel     string
	Port         string
}

func Load() Config {
	return Config{
		DatabasePath: envOrDefault("DATABASE_PATH", "./data/mealweek.db"),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),
		Port:         envOrDefault("PORT", "8080"),
	}
}

// SlogLevel maps the configured level name onto slog's levels, defaulting to
// info for anything unrecognized.
func (config Config) SlogLevel() slog.Level {
	switch strings.ToLower(config.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
