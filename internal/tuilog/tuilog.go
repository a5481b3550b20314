// Package tuilog provides file-based logging for the TUI, since the
// terminal is owned by the program while it runs.
package tuilog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	file   *os.File
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init directs logs to path. An empty path disables logging.
func Init(path string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()
	if path == "" {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if file != nil {
		file.Close()
	}
	file = f
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	logger.Info("logger initialized", "path", path)
	return nil
}

// Close closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// L returns the active logger.
func L() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func Debug(msg string, args ...any) { L().Debug(msg, args...) }
func Info(msg string, args ...any)  { L().Info(msg, args...) }
func Warn(msg string, args ...any)  { L().Warn(msg, args...) }
func Error(msg string, args ...any) { L().Error(msg, args...) }
