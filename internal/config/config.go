package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Zone is the time zone the daily-card date is computed in.
	Zone     *time.Location
	LogLevel slog.Level
	// CardsPath and SpreadsPath override the embedded catalogs when set.
	CardsPath   string
	SpreadsPath string
}

func Load() (Config, error) {
	// Optional .env for local development; real env always wins.
	_ = godotenv.Load()

	c := Config{
		CardsPath:   os.Getenv("CARDS_PATH"),
		SpreadsPath: os.Getenv("SPREADS_PATH"),
	}

	zone, err := time.LoadLocation(envOr("TAROT_ZONE", "Local"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TAROT_ZONE: %w", err)
	}
	c.Zone = zone

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
