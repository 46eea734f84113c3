// Package logger provides the diagnostic logging interface used by the
// crash reporter. Diagnostics go to stderr only; they are never shown in the
// report window.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger defines the interface for diagnostic logging across all
// crash reporter components.
type Logger interface {
	// Info logs an informational message (e.g., "No display, using console").
	Info(format string, args ...interface{})

	// Warning logs a warning message (e.g., "Invalid ASCENDARA_CRASH_TIMEOUT").
	Warning(format string, args ...interface{})

	// Error logs an error message (e.g., "Failed to open support link").
	Error(format string, args ...interface{})

	// Close releases resources held by the logger.
	// Safe to call multiple times. Returns nil for loggers without resources.
	Close() error
}

// ZeroLogger writes human readable lines through zerolog.
type ZeroLogger struct {
	logger zerolog.Logger
}

// NewZeroLogger creates a logger writing to w at the given level name
// ("debug", "info", "warn", "error", ...). Unknown levels fall back to info.
func NewZeroLogger(w io.Writer, level string) *ZeroLogger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}
	return &ZeroLogger{
		logger: zerolog.New(out).Level(lvl).With().Timestamp().Str("component", "crashreporter").Logger(),
	}
}

// Info logs at info level.
func (z *ZeroLogger) Info(format string, args ...interface{}) {
	z.logger.Info().Msgf(format, args...)
}

// Warning logs at warn level.
func (z *ZeroLogger) Warning(format string, args ...interface{}) {
	z.logger.Warn().Msgf(format, args...)
}

// Error logs at error level.
func (z *ZeroLogger) Error(format string, args ...interface{}) {
	z.logger.Error().Msgf(format, args...)
}

// Close is a no-op; the underlying writer is owned by the caller.
func (z *ZeroLogger) Close() error {
	return nil
}

// NopLogger is a logger that discards all messages.
type NopLogger struct{}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Info(format string, args ...interface{})    {}
func (n *NopLogger) Warning(format string, args ...interface{}) {}
func (n *NopLogger) Error(format string, args ...interface{})   {}
func (n *NopLogger) Close() error                               { return nil }

// Ensure implementations satisfy the Logger interface.
var (
	_ Logger = (*ZeroLogger)(nil)
	_ Logger = (*NopLogger)(nil)
)

// MockLogger implements Logger for testing purposes.
// It records all log calls for verification in tests.
type MockLogger struct {
	InfoCalls    []string
	WarningCalls []string
	ErrorCalls   []string
	CloseCalled  bool
}

// NewMockLogger creates a new MockLogger for testing.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		InfoCalls:    make([]string, 0),
		WarningCalls: make([]string, 0),
		ErrorCalls:   make([]string, 0),
	}
}

// Info records the formatted message.
func (m *MockLogger) Info(format string, args ...interface{}) {
	m.InfoCalls = append(m.InfoCalls, fmt.Sprintf(format, args...))
}

// Warning records the formatted message.
func (m *MockLogger) Warning(format string, args ...interface{}) {
	m.WarningCalls = append(m.WarningCalls, fmt.Sprintf(format, args...))
}

// Error records the formatted message.
func (m *MockLogger) Error(format string, args ...interface{}) {
	m.ErrorCalls = append(m.ErrorCalls, fmt.Sprintf(format, args...))
}

// Close records that Close was called.
func (m *MockLogger) Close() error {
	m.CloseCalled = true
	return nil
}

var _ Logger = (*MockLogger)(nil)
