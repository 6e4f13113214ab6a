// Package dispatcher orchestrates validation of configuration files.
package dispatcher

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/smykla-labs/confcheck/internal/validator"
	"github.com/smykla-labs/confcheck/pkg/configfile"
	"github.com/smykla-labs/confcheck/pkg/logger"
	"github.com/smykla-labs/confcheck/pkg/schema"
)

// globMeta holds the characters that make a target a pattern.
const globMeta = "*?[{\\"

//go:generate mockgen -source=dispatcher.go -destination=loader_mock.go -package=dispatcher

var (
	// ErrNoTargets is returned when a target pattern matches no file.
	ErrNoTargets = errors.New("no files match target")

	// ErrLoadFailed is returned when a configuration or schema cannot be loaded.
	ErrLoadFailed = errors.New("failed to load input")
)

// Loader reads configurations and schemas.
type Loader interface {
	LoadConfig(path string) (*configfile.File, error)
	LoadSchema(path string) (*schema.Schema, error)
}

// FileLoader loads inputs from the filesystem.
type FileLoader struct{}

// LoadConfig implements Loader.
func (FileLoader) LoadConfig(path string) (*configfile.File, error) {
	return configfile.Load(path)
}

// LoadSchema implements Loader.
func (FileLoader) LoadSchema(path string) (*schema.Schema, error) {
	return schema.Load(path)
}

// Report is the outcome of validating one configuration file.
type Report struct {
	// Path is the configuration file path.
	Path string

	// Result holds the findings for Path.
	Result *validator.Result
}

// Dispatcher validates configuration files against a schema.
type Dispatcher struct {
	loader      Loader
	logger      logger.Logger
	options     validator.Options
	concurrency int
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithOptions sets the validation options used for every target.
func WithOptions(opts validator.Options) Option {
	return func(d *Dispatcher) {
		d.options = opts
	}
}

// WithConcurrency limits how many targets are validated at once.
// Zero or less means no limit.
func WithConcurrency(n int) Option {
	return func(d *Dispatcher) {
		d.concurrency = n
	}
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(loader Loader, log logger.Logger, opts ...Option) *Dispatcher {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	d := &Dispatcher{
		loader: loader,
		logger: log,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dispatch loads the schema once and validates every target against it.
// Reports are returned in target order.
func (d *Dispatcher) Dispatch(ctx context.Context, schemaPath string, targets []string) ([]*Report, error) {
	d.logger.Info("dispatching",
		"schema", schemaPath,
		"targets", len(targets),
	)

	sch, err := d.loader.LoadSchema(schemaPath)
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, ErrLoadFailed), "loading schema %s", schemaPath)
	}

	reports := make([]*Report, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	if d.concurrency > 0 {
		g.SetLimit(d.concurrency)
	}

	for i, target := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			report, err := d.validate(sch, target)
			if err != nil {
				return err
			}

			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (d *Dispatcher) validate(sch *schema.Schema, target string) (*Report, error) {
	log := d.logger.With("target", target)

	cfg, err := d.loader.LoadConfig(target)
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, ErrLoadFailed), "loading configuration %s", target)
	}

	v, err := validator.New(cfg, sch, log)
	if err != nil {
		return nil, errors.Wrapf(err, "validating %s", target)
	}

	result := v.Validate(d.options)

	log.Info("validated",
		"valid", result.IsValid(),
		"errors", len(result.Errors()),
		"warnings", len(result.Warnings()),
	)

	return &Report{Path: target, Result: result}, nil
}

// ExpandTargets resolves glob patterns into file paths. Duplicates are
// dropped keeping the first occurrence. A literal path that does not exist
// is kept so the load error names it.
func ExpandTargets(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(patterns))

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		out = append(out, path)
	}

	for _, pattern := range patterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, errors.Wrapf(doublestar.ErrBadPattern, "target %q", pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "expanding %q", pattern)
		}

		if len(matches) == 0 {
			if isLiteral(pattern) {
				add(pattern)
				continue
			}

			return nil, errors.Wrapf(ErrNoTargets, "%q", pattern)
		}

		for _, m := range matches {
			add(m)
		}
	}

	return out, nil
}

func isLiteral(pattern string) bool {
	return !strings.ContainsAny(pattern, globMeta)
}

// HasErrors returns true if any report is invalid.
func HasErrors(reports []*Report) bool {
	for _, r := range reports {
		if !r.Result.IsValid() {
			return true
		}
	}

	return false
}

// HasWarnings returns true if any report carries a warning.
func HasWarnings(reports []*Report) bool {
	for _, r := range reports {
		if len(r.Result.Warnings()) > 0 {
			return true
		}
	}

	return false
}
