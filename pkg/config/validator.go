package config

import "github.com/smykla-labs/confcheck/internal/similarity"

// DefaultSimilarityThreshold is the threshold used when none is configured.
const DefaultSimilarityThreshold = similarity.DefaultThreshold

// ValidationConfig represents the settings of a validation run.
type ValidationConfig struct {
	// ErrorOnDeprecated reports deprecated sections and options as errors.
	// Default: false
	ErrorOnDeprecated *bool `json:"error_on_deprecated,omitempty" koanf:"error_on_deprecated" toml:"error_on_deprecated,omitempty"`

	// FailOnWarnings makes the validate command exit non-zero on warnings.
	// Default: false
	FailOnWarnings *bool `json:"fail_on_warnings,omitempty" koanf:"fail_on_warnings" toml:"fail_on_warnings,omitempty"`

	// SimilarityThreshold is the minimum similarity in (0, 1] for a typo
	// suggestion.
	// Default: 0.6
	SimilarityThreshold float64 `json:"similarity_threshold,omitempty" koanf:"similarity_threshold" toml:"similarity_threshold,omitempty"`

	// Concurrency limits how many files are validated at once.
	// 0 means one per CPU.
	Concurrency int `json:"concurrency,omitempty" koanf:"concurrency" toml:"concurrency,omitempty"`
}

// IsErrorOnDeprecated returns true if deprecations are errors.
// Returns false if ErrorOnDeprecated is nil (default behavior).
func (c *ValidationConfig) IsErrorOnDeprecated() bool {
	if c.ErrorOnDeprecated == nil {
		return false
	}

	return *c.ErrorOnDeprecated
}

// IsFailOnWarnings returns true if warnings should fail the run.
// Returns false if FailOnWarnings is nil (default behavior).
func (c *ValidationConfig) IsFailOnWarnings() bool {
	if c.FailOnWarnings == nil {
		return false
	}

	return *c.FailOnWarnings
}

// GetSimilarityThreshold returns the threshold, defaulting to
// DefaultSimilarityThreshold if not set.
func (c *ValidationConfig) GetSimilarityThreshold() float64 {
	if c.SimilarityThreshold == 0 {
		return DefaultSimilarityThreshold
	}

	return c.SimilarityThreshold
}
