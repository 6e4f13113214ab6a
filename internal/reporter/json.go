package reporter

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/confcheck/internal/dispatcher"
	"github.com/smykla-labs/confcheck/internal/validator"
)

// JSONReporter writes one JSON document describing every file.
type JSONReporter struct{}

// NewJSONReporter creates a new JSONReporter.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

type jsonDocument struct {
	Files []jsonFile `json:"files"`
}

type jsonFile struct {
	Path     string              `json:"path"`
	Valid    bool                `json:"valid"`
	Errors   []string            `json:"errors"`
	Warnings []string            `json:"warnings"`
	Findings []validator.Finding `json:"findings"`
}

// Report implements Reporter.
func (*JSONReporter) Report(w io.Writer, reports []*dispatcher.Report) error {
	doc := jsonDocument{Files: make([]jsonFile, 0, len(reports))}

	for _, r := range reports {
		doc.Files = append(doc.Files, jsonFile{
			Path:     r.Path,
			Valid:    r.Result.IsValid(),
			Errors:   r.Result.Errors(),
			Warnings: r.Result.Warnings(),
			Findings: r.Result.Findings(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(doc), "encoding report")
}
