package reporter

import (
	"fmt"
	"io"

	"github.com/smykla-labs/confcheck/internal/dispatcher"
	"github.com/smykla-labs/confcheck/internal/validator"
)

// TextReporter provides checklist-style output grouped by file.
type TextReporter struct {
	markers marker
}

// NewTextReporter creates a new TextReporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{markers: markers(opts)}
}

// Report writes errors before warnings for every file, then a summary.
func (r *TextReporter) Report(w io.Writer, reports []*dispatcher.Report) error {
	ew := &errWriter{w: w}

	for _, report := range reports {
		r.printReport(ew, report)
	}

	ew.printf("%s\n", summary(reports))

	return ew.err
}

func (r *TextReporter) printReport(ew *errWriter, report *dispatcher.Report) {
	ew.printf("%s:\n", report.Path)

	findings := report.Result.Findings()
	if len(findings) == 0 {
		ew.printf("  %s valid\n\n", r.markers.pass)
		return
	}

	for _, severity := range []validator.Severity{validator.SeverityError, validator.SeverityWarning} {
		for _, f := range findings {
			if f.Severity != severity {
				continue
			}

			ew.printf("  %s %s\n", r.markers.forSeverity(f.Severity), f.Message)
		}
	}

	ew.printf("\n")
}

// errWriter keeps the first write error so callers can check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}

	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
