package reporter

import (
	"io"

	"github.com/smykla-labs/confcheck/internal/dispatcher"
	"github.com/smykla-labs/confcheck/pkg/mdtable"
)

// MarkdownReporter writes one findings table per file.
type MarkdownReporter struct {
	markers marker
}

// NewMarkdownReporter creates a new MarkdownReporter.
func NewMarkdownReporter(opts Options) *MarkdownReporter {
	return &MarkdownReporter{markers: markers(opts)}
}

// Report implements Reporter.
func (r *MarkdownReporter) Report(w io.Writer, reports []*dispatcher.Report) error {
	ew := &errWriter{w: w}

	for _, report := range reports {
		ew.printf("## %s\n\n", mdtable.Code(report.Path))

		findings := report.Result.Findings()
		if len(findings) == 0 {
			ew.printf("%s No findings.\n\n", r.markers.pass)
			continue
		}

		table := mdtable.New("", "Kind", "Section", "Option", "Message").
			Align(0, mdtable.AlignCenter)

		for _, f := range findings {
			table.AddRow(
				r.markers.forSeverity(f.Severity),
				f.Kind.String(),
				mdtable.Code(f.Section),
				mdtable.Code(f.Option),
				f.Message,
			)
		}

		ew.printf("%s\n", table.String())
	}

	ew.printf("**%s**\n", summary(reports))

	return ew.err
}
