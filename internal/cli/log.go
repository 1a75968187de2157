// Package cli - logging helpers shared by all commands.
//
// This file centralizes how commands obtain and use the logger.
//
// Design:
//   - One *log.Logger per CLI, created by newLogger and carried in the
//     command context (setup attaches it, commands read it back).
//   - Commands never build their own logger; loggerFromContext falls back
//     to log.Default() so a command run without setup still logs.
//   - stopwatch reports elapsed time for long commands (verify).
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// timeFormat renders timestamps as "HH:MM:SS.cc".
const timeFormat = "15:04:05.00"

// newLogger returns a timestamped logger writing to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Level:           level,
	})
}

// stopwatch measures one command run.
// Single goroutine only: the command body starts and stops it.
type stopwatch struct {
	logger *log.Logger
	began  time.Time
}

// startStopwatch begins timing now.
func startStopwatch(l *log.Logger) stopwatch {
	return stopwatch{logger: l, began: time.Now()}
}

// elapsed returns the time since start, rounded to milliseconds.
func (s stopwatch) elapsed() time.Duration {
	return time.Since(s.began).Round(time.Millisecond)
}

// stop logs msg at info level with the elapsed time as a structured field.
func (s stopwatch) stop(msg string, keyvals ...any) {
	s.logger.Info(msg, append(keyvals, "elapsed", s.elapsed())...)
}

type loggerKey struct{}

// withLogger returns ctx carrying l. A nil ctx is treated as Background.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
