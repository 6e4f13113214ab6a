// Package config provides the settings types for confcheck.
package config

import "github.com/smykla-labs/confcheck/pkg/logger"

// Format selects how reports are rendered.
type Format string

const (
	// FormatText renders grouped, human-readable output.
	FormatText Format = "text"

	// FormatJSON renders a single JSON document.
	FormatJSON Format = "json"

	// FormatMarkdown renders one table per file.
	FormatMarkdown Format = "markdown"
)

// Formats returns every supported report format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatMarkdown}
}

// IsValid returns true if the format is supported.
func (f Format) IsValid() bool {
	for _, known := range Formats() {
		if f == known {
			return true
		}
	}

	return false
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}

// Config represents the root configuration for confcheck.
type Config struct {
	// Validation controls how findings are classified.
	Validation *ValidationConfig `json:"validation,omitempty" koanf:"validation" toml:"validation"`

	// Output controls how reports are rendered.
	Output *OutputConfig `json:"output,omitempty" koanf:"output" toml:"output"`

	// Log controls diagnostic logging on stderr.
	Log *LogConfig `json:"log,omitempty" koanf:"log" toml:"log"`
}

// OutputConfig contains report rendering settings.
type OutputConfig struct {
	// Format is the report format.
	// Default: "text"
	Format Format `json:"format,omitempty" koanf:"format" toml:"format,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is the minimum level written ("debug", "info", "warn", "error").
	// Default: "warn"
	Level string `json:"level,omitempty" koanf:"level" toml:"level,omitempty"`

	// Format is either "console" or "json".
	// Default: "console"
	Format string `json:"format,omitempty" koanf:"format" toml:"format,omitempty"`
}

// GetValidation returns the validation config, creating it if it doesn't exist.
func (c *Config) GetValidation() *ValidationConfig {
	if c.Validation == nil {
		c.Validation = &ValidationConfig{}
	}

	return c.Validation
}

// GetOutput returns the output config, creating it if it doesn't exist.
func (c *Config) GetOutput() *OutputConfig {
	if c.Output == nil {
		c.Output = &OutputConfig{}
	}

	return c.Output
}

// GetLog returns the log config, creating it if it doesn't exist.
func (c *Config) GetLog() *LogConfig {
	if c.Log == nil {
		c.Log = &LogConfig{}
	}

	return c.Log
}

// GetFormat returns the report format, defaulting to text if not set.
func (o *OutputConfig) GetFormat() Format {
	if o.Format == "" {
		return FormatText
	}

	return o.Format
}

// GetLevel returns the log level, defaulting to warn if not set.
func (l *LogConfig) GetLevel() string {
	if l.Level == "" {
		return logger.DefaultConfig().Level
	}

	return l.Level
}

// GetFormat returns the log format, defaulting to console if not set.
func (l *LogConfig) GetFormat() string {
	if l.Format == "" {
		return string(logger.DefaultConfig().Format)
	}

	return l.Format
}
