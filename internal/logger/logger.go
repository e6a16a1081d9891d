// Package logger provides orbit's structured debug log.
//
// Nothing is written until Init is called; `orbit --debug` does that with
// DefaultLogPath. Until then Get returns a logger that discards everything,
// so packages can log unconditionally.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	root     = slog.New(slog.NewTextHandler(io.Discard, nil))
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	mu       sync.Mutex
)

// StateDir returns $XDG_STATE_HOME/orbit, or ~/.local/state/orbit when the
// variable is unset.
func StateDir() (string, error) {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "orbit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", "orbit"), nil
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "orbit.log"), nil
}

// SetDebug enables or disables debug level logging
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Init opens path for appending and routes all logging there. Calling Init
// again replaces the previous file.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	root = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	root.Debug("logger initialized", "path", path, "pid", os.Getpid())
	return nil
}

// Get returns the root logger instance.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return root
}

// WithSession returns a logger with the session name attached.
//
// Example:
//
//	log := logger.WithSession("api")
//	log.Info("session created", "dir", dir)
//	// Output: level=INFO msg="session created" session=api dir=/src/api
func WithSession(name string) *slog.Logger {
	return Get().With("session", name)
}

// Close closes the log file, if any, and reverts to discarding output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	root = slog.New(slog.NewTextHandler(io.Discard, nil))
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
