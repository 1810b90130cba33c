// Package plog is a thin wrapper over log/slog, giving the rest of the
// module a small leveled surface without importing slog everywhere
// directly.
package plog

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	current = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

// NewTextHandler builds a slog.Logger writing human-readable text to w
// at the given level.
func NewTextHandler(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONHandler builds a slog.Logger writing structured JSON to w at
// the given level, used when polyloc's own diagnostics are consumed by
// another tool rather than a terminal.
func NewJSONHandler(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetDefault installs l as the logger used by the package-level
// Debug/Info/Warn/Error helpers.
func SetDefault(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = l
}

func get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return current
}

func Debug(msg string, args ...any) { get().Debug(msg, args...) }
func Info(msg string, args ...any)  { get().Info(msg, args...) }
func Warn(msg string, args ...any)  { get().Warn(msg, args...) }
func Error(msg string, args ...any) { get().Error(msg, args...) }
