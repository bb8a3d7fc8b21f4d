package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/extrato/pkg/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the run logger from settings. With log_file set, output goes to
// that file (its directory is created); the returned closer must be called
// when the run ends.
func New(s *config.Settings) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	if s.LogFile == "" {
		return NewWithWriter(os.Stderr, level), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return NewWithWriter(f, level), f, nil
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "extrato",
		Level:           level,
	})
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
