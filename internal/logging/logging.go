package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Dir returns the directory holding plano's log files (~/.plano/logs)
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".plano", "logs"), nil
}

// Init initializes the logging system, writing logs to ~/.plano/logs/plano.log.
// Uses text format for human readability. The returned closer releases the file.
func Init(level slog.Level) (io.Closer, error) {
	logDir, err := Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, "plano.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	Setup(file, level)
	return file, nil
}

// Setup routes slog and the standard log package to w
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)

	return Logger
}

// Discard returns a logger that drops everything, for tests and one-shot tools
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
