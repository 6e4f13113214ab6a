// Package validator checks a configuration file against a schema.
package validator

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/confcheck/internal/similarity"
	"github.com/smykla-labs/confcheck/pkg/configfile"
	"github.com/smykla-labs/confcheck/pkg/logger"
	"github.com/smykla-labs/confcheck/pkg/schema"
)

var (
	// ErrNilConfig is returned when no configuration is given.
	ErrNilConfig = errors.New("configuration is nil")

	// ErrNilSchema is returned when no schema is given.
	ErrNilSchema = errors.New("schema is nil")
)

// Options control how findings are classified.
type Options struct {
	// ErrorOnDeprecated reports deprecated sections and options as errors
	// instead of warnings.
	ErrorOnDeprecated bool

	// SimilarityThreshold is the minimum similarity for a typo suggestion.
	// Zero selects similarity.DefaultThreshold.
	SimilarityThreshold float64
}

func (o Options) threshold() float64 {
	if o.SimilarityThreshold <= 0 {
		return similarity.DefaultThreshold
	}

	return o.SimilarityThreshold
}

// Validator compares one configuration with one schema.
type Validator struct {
	config *configfile.File
	schema *schema.Schema
	logger logger.Logger
}

// New creates a Validator. The inputs are never modified.
func New(cfg *configfile.File, sch *schema.Schema, log logger.Logger) (*Validator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if sch == nil {
		return nil, ErrNilSchema
	}

	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Validator{
		config: cfg,
		schema: sch,
		logger: log,
	}, nil
}

// Validate runs a full pass and returns its findings. Each call produces a
// fresh Result, so repeated calls with the same options are identical.
func (v *Validator) Validate(opts Options) *Result {
	run := &run{
		Validator: v,
		opts:      opts,
		result:    &Result{},
	}

	for _, sec := range v.schema.Sections() {
		run.checkSchemaSection(sec)
	}

	for _, sec := range v.config.Sections() {
		run.checkConfigSection(sec)
	}

	v.logger.Debug("validation finished",
		"errors", len(run.result.Errors()),
		"warnings", len(run.result.Warnings()),
	)

	return run.result
}

// run carries the state of a single Validate call.
type run struct {
	*Validator

	opts   Options
	result *Result
}

func (r *run) report(f Finding) {
	r.logger.Debug("finding",
		"kind", f.Kind.String(),
		"severity", f.Severity.String(),
		"section", f.Section,
		"option", f.Option,
	)

	r.result.add(f)
}

func (r *run) deprecation(f Finding) {
	f.Severity = SeverityWarning
	if r.opts.ErrorOnDeprecated {
		f.Severity = SeverityError
	}

	r.report(f)
}

// checkSchemaSection checks presence, values and deprecation of everything
// the schema defines in one section.
func (r *run) checkSchemaSection(sec *schema.Section) {
	cs, ok := r.config.Section(sec.Name)
	if !ok {
		for _, opt := range sec.Options() {
			if !opt.Rule.Required {
				continue
			}

			r.report(Finding{
				Kind:     KindMissingSection,
				Severity: SeverityError,
				Section:  sec.Name,
				Option:   opt.Name,
				Message:  fmt.Sprintf("Missing required section %s.", sec.Name),
			})
		}

		return
	}

	for _, opt := range sec.Options() {
		r.checkOption(sec.Name, cs, opt)
	}

	if sec.Deprecated {
		r.deprecation(Finding{
			Kind:    KindDeprecatedSection,
			Section: sec.Name,
			Message: fmt.Sprintf("Deprecated section %s is present!", sec.Name),
		})
	}
}

func (r *run) checkOption(section string, cs *configfile.Section, opt *schema.Option) {
	value, present := cs.Get(opt.Name)

	if value == "" && opt.Rule.Required {
		r.report(Finding{
			Kind:     KindMissingOption,
			Severity: SeverityError,
			Section:  section,
			Option:   opt.Name,
			Message:  fmt.Sprintf("Missing required option %s in section %s.", opt.Name, section),
		})
	}

	if value != "" {
		r.checkType(section, opt, value)
	}

	if present && opt.Rule.Deprecated {
		r.deprecation(Finding{
			Kind:    KindDeprecatedOption,
			Section: section,
			Option:  opt.Name,
			Message: fmt.Sprintf("Deprecated option %s is present in section %s!", opt.Name, section),
		})
	}
}

func (r *run) checkType(section string, opt *schema.Option, value string) {
	t := opt.Rule.Type

	if !t.IsKnown() {
		r.report(Finding{
			Kind:     KindInvalidType,
			Severity: SeverityError,
			Section:  section,
			Option:   opt.Name,
			Message:  fmt.Sprintf("Invalid expected type for option %s : %s.", opt.Name, t),
		})

		return
	}

	if t.Accepts(value) {
		return
	}

	r.report(Finding{
		Kind:     KindInvalidValue,
		Severity: SeverityError,
		Section:  section,
		Option:   opt.Name,
		Message:  fmt.Sprintf("Invalid value for type %s : %s.", t, value),
	})
}

// checkConfigSection looks for sections and options the schema does not
// know about and suggests the intended name where one is close enough.
func (r *run) checkConfigSection(cs *configfile.Section) {
	sec, ok := r.schema.Section(cs.Name)
	if !ok {
		candidates := absent(r.schema.SectionNames(), r.config.HasSection)

		if match, found := similarity.Closest(cs.Name, candidates, r.opts.threshold()); found {
			r.report(Finding{
				Kind:       KindSectionTypo,
				Severity:   SeverityWarning,
				Section:    cs.Name,
				Suggestion: match,
				Message:    fmt.Sprintf("Possible typo for section %s : %s.", match, cs.Name),
			})

			return
		}

		r.report(Finding{
			Kind:     KindUnknownSection,
			Severity: SeverityWarning,
			Section:  cs.Name,
			Message:  fmt.Sprintf("Section %s is not defined in the schema file.", cs.Name),
		})

		return
	}

	for _, opt := range cs.Options() {
		if sec.Has(opt.Name) {
			continue
		}

		candidates := absent(sec.OptionNames(), cs.Has)

		if match, found := similarity.Closest(opt.Name, candidates, r.opts.threshold()); found {
			r.report(Finding{
				Kind:       KindOptionTypo,
				Severity:   SeverityWarning,
				Section:    cs.Name,
				Option:     opt.Name,
				Suggestion: match,
				Message:    fmt.Sprintf("Possible typo for option %s : %s.", match, opt.Name),
			})

			continue
		}

		r.report(Finding{
			Kind:     KindUnknownOption,
			Severity: SeverityWarning,
			Section:  cs.Name,
			Option:   opt.Name,
			Message: fmt.Sprintf(
				"Option %s of section %s is not defined in the schema file.",
				opt.Name,
				cs.Name,
			),
		})
	}
}

// absent filters names down to those the configuration does not contain.
// A name already in use is never offered as the intended spelling of another.
func absent(names []string, present func(string) bool) []string {
	out := make([]string, 0, len(names))

	for _, name := range names {
		if !present(name) {
			out = append(out, name)
		}
	}

	return out
}
