// Package cli implements the worldforge command-line interface.
//
// This package provides commands for generating noise fields, dungeon
// layouts, and wave-function-collapse tile maps, plus an interactive
// terminal preview. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - noise: Generate a normalized noise field and print it as a shade ramp
//   - dungeon: Generate a dungeon layout and print it as ASCII tiles
//   - wfc: Solve a constraint tile map from a pattern file
//   - preview: Interactively regenerate maps in the terminal
//
// All generators are deterministic: the same --seed always reproduces the
// same output. Loggers are passed through context.Context.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// withLogger attaches a logger to the context.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the context's logger, or a default stderr logger
// when none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return newLogger(os.Stderr, log.InfoLevel)
}
