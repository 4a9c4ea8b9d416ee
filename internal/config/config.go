// Package config reads shapemap settings from the environment.
// A .env file in the working directory is honored when present.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when the environment is silent.
const (
	DefaultLogFile      = "shapemap.log"
	DefaultFetchTimeout = 15 * time.Second
)

// Config carries the runtime settings of the program.
type Config struct {
	// LogFile receives structured logs; the terminal belongs to the UI.
	LogFile  string
	LogLevel slog.Level

	// DataDir is the directory the file browser starts in.
	DataDir string

	// FetchTimeout bounds remote GeoJSON requests.
	FetchTimeout time.Duration
}

// Load reads the environment, after loading .env if one exists.
func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{
		LogFile:      DefaultLogFile,
		LogLevel:     slog.LevelInfo,
		FetchTimeout: DefaultFetchTimeout,
	}
	if v := os.Getenv("SHAPEMAP_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("SHAPEMAP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = ParseLevel(v)
	}
	if v := os.Getenv("SHAPEMAP_DATA_DIR"); v != "" {
		cfg.DataDir = v
	} else {
		cfg.DataDir, _ = os.Getwd()
	}
	if v := os.Getenv("SHAPEMAP_FETCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.FetchTimeout = d
		}
	}
	return cfg
}

// ParseLevel maps a level name onto a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
