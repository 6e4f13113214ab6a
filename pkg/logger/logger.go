// Package logger provides the structured logger used across confcheck.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a leveled, key/value structured logger.
type Logger interface {
	// Debug logs a debug message with optional key/value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs an informational message with optional key/value pairs.
	Info(msg string, keysAndValues ...any)

	// Error logs an error message with optional key/value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a child logger carrying the given key/value pairs.
	With(keysAndValues ...any) Logger
}

// Format selects the log output encoding.
type Format string

const (
	// FormatConsole writes human-readable lines.
	FormatConsole Format = "console"

	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
)

// Config holds logger construction settings.
type Config struct {
	// Level is one of Levels. Anything else falls back to info.
	Level string

	// Format is the output encoding.
	Format Format

	// Output receives log lines. Defaults to os.Stderr.
	Output io.Writer
}

// Levels returns the accepted level names, most verbose first.
func Levels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// DefaultConfig returns the default logger settings.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: FormatConsole,
		Output: os.Stderr,
	}
}

// zerologLogger implements Logger on top of zerolog.
type zerologLogger struct {
	z zerolog.Logger
}

// New creates a zerolog-backed Logger.
// Unknown levels fall back to info.
func New(cfg Config) Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    true,
		}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	return &zerologLogger{
		z: zerolog.New(out).Level(level).With().Timestamp().Logger(),
	}
}

// Debug logs at debug level.
func (l *zerologLogger) Debug(msg string, keysAndValues ...any) {
	l.z.Debug().Fields(keysAndValues).Msg(msg)
}

// Info logs at info level.
func (l *zerologLogger) Info(msg string, keysAndValues ...any) {
	l.z.Info().Fields(keysAndValues).Msg(msg)
}

// Error logs at error level.
func (l *zerologLogger) Error(msg string, keysAndValues ...any) {
	l.z.Error().Fields(keysAndValues).Msg(msg)
}

// With returns a child logger with the given fields attached.
func (l *zerologLogger) With(keysAndValues ...any) Logger {
	return &zerologLogger{z: l.z.With().Fields(keysAndValues).Logger()}
}

type noOpLogger struct{}

// NewNoOpLogger returns a Logger that discards everything.
func NewNoOpLogger() Logger {
	return noOpLogger{}
}

func (noOpLogger) Debug(string, ...any) {}

func (noOpLogger) Info(string, ...any) {}

func (noOpLogger) Error(string, ...any) {}

func (n noOpLogger) With(...any) Logger { return n }
