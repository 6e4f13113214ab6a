package config

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/confcheck/pkg/config"
	"github.com/smykla-labs/confcheck/pkg/logger"
)

// ErrInvalidConfig is wrapped by every settings validation error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validator checks settings for values the tool cannot act on.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns every problem found in cfg joined into one error.
func (*Validator) Validate(cfg *config.Config) error {
	if cfg == nil {
		return errors.Wrap(ErrInvalidConfig, "configuration is nil")
	}

	var errs []error

	validation := cfg.GetValidation()

	if t := validation.SimilarityThreshold; t < 0 || t > 1 {
		errs = append(errs, errors.Wrapf(ErrInvalidConfig,
			"validation.similarity_threshold must be in (0, 1] or 0 for the default, got %v", t))
	}

	if validation.Concurrency < 0 {
		errs = append(errs, errors.Wrapf(ErrInvalidConfig,
			"validation.concurrency must not be negative, got %d", validation.Concurrency))
	}

	if format := cfg.GetOutput().GetFormat(); !format.IsValid() {
		errs = append(errs, errors.Wrapf(ErrInvalidConfig,
			"output.format %q is not one of %v", format, config.Formats()))
	}

	if level := cfg.GetLog().GetLevel(); !slices.Contains(logger.Levels(), level) {
		errs = append(errs, errors.Wrapf(ErrInvalidConfig,
			"log.level %q is not one of %v", level, logger.Levels()))
	}

	switch logger.Format(cfg.GetLog().GetFormat()) {
	case logger.FormatConsole, logger.FormatJSON:
	default:
		errs = append(errs, errors.Wrapf(ErrInvalidConfig,
			"log.format %q must be console or json", cfg.GetLog().GetFormat()))
	}

	return errors.Join(errs...)
}
