// Package reporter renders validation reports.
package reporter

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/confcheck/internal/dispatcher"
	"github.com/smykla-labs/confcheck/internal/validator"
	"github.com/smykla-labs/confcheck/pkg/config"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Reporter writes reports to an output stream.
type Reporter interface {
	Report(w io.Writer, reports []*dispatcher.Report) error
}

// Options tune the human-readable reporters.
type Options struct {
	// Plain replaces icons with ASCII markers, for pipes and CI logs.
	Plain bool
}

// New returns the reporter for format.
func New(format config.Format, opts Options) (Reporter, error) {
	switch format {
	case config.FormatText:
		return NewTextReporter(opts), nil
	case config.FormatJSON:
		return NewJSONReporter(), nil
	case config.FormatMarkdown:
		return NewMarkdownReporter(opts), nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

type marker struct {
	pass    string
	err     string
	warning string
}

var (
	iconMarkers  = marker{pass: "✅", err: "❌", warning: "⚠️"}
	plainMarkers = marker{pass: "[ok]", err: "[error]", warning: "[warn]"}
)

func markers(opts Options) marker {
	if opts.Plain {
		return plainMarkers
	}

	return iconMarkers
}

func (m marker) forSeverity(s validator.Severity) string {
	if s == validator.SeverityError {
		return m.err
	}

	return m.warning
}

// countFindings counts errors and warnings across all reports.
func countFindings(reports []*dispatcher.Report) (errs, warnings int) {
	for _, r := range reports {
		errs += len(r.Result.Errors())
		warnings += len(r.Result.Warnings())
	}

	return errs, warnings
}

func summary(reports []*dispatcher.Report) string {
	errs, warnings := countFindings(reports)

	return fmt.Sprintf("Summary: %d error(s), %d warning(s) in %d file(s)",
		errs, warnings, len(reports))
}
