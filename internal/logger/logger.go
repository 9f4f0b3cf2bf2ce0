package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	defaultLogger *slog.Logger
	once          sync.Once
	level         = new(slog.LevelVar)
)

func Init(verbose bool) {
	once.Do(func() {
		SetVerbose(verbose)
		defaultLogger = slog.New(newHandler(os.Stderr))
	})
}

func InitWithWriter(w io.Writer, verbose bool) {
	SetVerbose(verbose)
	defaultLogger = slog.New(newHandler(w))
}

// InitWithFile sends logs to path, appending. The alternate screen owns the
// terminal in TUI mode, so anything written to stderr would corrupt the view.
// The returned closer must be closed on shutdown.
func InitWithFile(path string, verbose bool) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %q: %w", path, err)
	}
	InitWithWriter(f, verbose)
	return f, nil
}

func SetVerbose(verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

func newHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

func get() *slog.Logger {
	if defaultLogger == nil {
		Init(false)
	}
	return defaultLogger
}

func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	get().Error(msg, args...)
}

func With(args ...any) *slog.Logger {
	return get().With(args...)
}
