// Package logging sets up log/slog for mazewalk. Core packages (grid,
// traverse) never log; the maze dispatcher, the HTTP layer and the CLI take
// their loggers from here.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init installs the process-wide slog default. format "json" selects the
// JSON handler, anything else the text handler. Output goes to the first
// writer in w, stderr when none is given.
func Init(level slog.Level, format string, w ...io.Writer) {
	out := io.Writer(os.Stderr)
	if len(w) > 0 && w[0] != nil {
		out = w[0]
	}
	slog.SetDefault(slog.New(newHandler(format, out, &slog.HandlerOptions{Level: level})))
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if format == "json" {
		return slog.NewJSONHandler(out, opts)
	}
	return slog.NewTextHandler(out, opts)
}

// New returns the default logger tagged with component, e.g. "maze" or "api".
// Call it after Init; the logger keeps the handler current at call time.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// Discard returns a logger that drops everything. maze and api fall back to
// it when the caller passes no logger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
