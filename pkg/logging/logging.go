// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.SetupWithLevel(cfg.SlogLevel())
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a tint logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level <= slog.LevelDebug,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}))
}

// SetupWithLevel installs a stderr tint logger at level as the slog default.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(New(os.Stderr, level))
}
