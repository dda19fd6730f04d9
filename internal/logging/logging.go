// Package logging provides a shared, structured logger for ceefax.
//
// It wraps [log/slog] with a single initialization point so all
// components share the same handler and level. The level is read from
// the CEEFAX_LOG_LEVEL environment variable (debug, info, warn,
// error); unset means INFO. Output goes to stderr so it never mixes
// with the terminal UI drawn on stdout.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	initLogger sync.Once
	baseLogger *slog.Logger
)

// New returns a logger scoped to the given component name. The name is
// attached as a "component" attribute on every entry; an empty name
// returns the shared base logger.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLevel(os.Getenv("CEEFAX_LOG_LEVEL")),
		}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
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
