package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvFormat selects the handler: "json" or "text".
	EnvFormat = "LOG_FORMAT"
	// EnvLevel sets the minimum level.
	EnvLevel = "LOG_LEVEL"

	appName = "portfolio-core"
)

// Config is the logging configuration read from the environment
type Config struct {
	Format string
	Level  slog.Level
}

// LoadConfigFromEnv parses LOG_FORMAT and LOG_LEVEL
func LoadConfigFromEnv() (Config, error) {
	format := strings.ToLower(strings.TrimSpace(os.Getenv(EnvFormat)))
	switch format {
	case "":
		format = "json"
	case "json", "text":
	default:
		return Config{}, fmt.Errorf("invalid %s %q (want json or text)", EnvFormat, format)
	}

	level := slog.LevelInfo
	if raw := strings.TrimSpace(os.Getenv(EnvLevel)); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvLevel, raw, err)
		}
	}

	return Config{Format: format, Level: level}, nil
}

// NewLogger builds a slog.Logger tagged with the application name
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With("app", appName)
}

// Bootstrap loads the config, installs the default logger and returns it
func Bootstrap() (*slog.Logger, error) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	logger := NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)
	return logger, nil
}
