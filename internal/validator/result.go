package validator

//go:generate enumer -type=Severity -trimprefix=Severity -transform=lower -json -text -output=severity_enumer.go
//go:generate enumer -type=Kind -trimprefix=Kind -transform=snake -json -text -output=kind_enumer.go

// Severity classifies a finding as blocking or advisory.
type Severity int

const (
	// SeverityUnknown is the zero value and never appears in a Result.
	SeverityUnknown Severity = iota

	// SeverityError findings make the configuration invalid.
	SeverityError

	// SeverityWarning findings are advisory.
	SeverityWarning
)

// Kind identifies what a finding is about.
type Kind int

const (
	// KindMissingSection reports a required option inside an absent section.
	KindMissingSection Kind = iota

	// KindMissingOption reports a required option that is absent or empty.
	KindMissingOption

	// KindDeprecatedSection reports a deprecated section that is present.
	KindDeprecatedSection

	// KindDeprecatedOption reports a deprecated option that is present.
	KindDeprecatedOption

	// KindInvalidValue reports a value that does not parse as its type.
	KindInvalidValue

	// KindInvalidType reports a schema rule with an unknown type name.
	KindInvalidType

	// KindSectionTypo reports an unknown section that resembles a schema section.
	KindSectionTypo

	// KindUnknownSection reports a section the schema does not define.
	KindUnknownSection

	// KindOptionTypo reports an unknown option that resembles a schema option.
	KindOptionTypo

	// KindUnknownOption reports an option the schema does not define.
	KindUnknownOption
)

// IsDeprecation reports whether the kind is affected by ErrorOnDeprecated.
func (k Kind) IsDeprecation() bool {
	return k == KindDeprecatedSection || k == KindDeprecatedOption
}

// Finding is a single validation message.
type Finding struct {
	Kind     Kind     `json:"kind"`
	Severity Severity `json:"severity"`
	Section  string   `json:"section"`
	Option   string   `json:"option,omitempty"`

	// Suggestion is the closest schema name for typo findings.
	Suggestion string `json:"suggestion,omitempty"`

	Message string `json:"message"`
}

// Result accumulates the findings of one validation run.
type Result struct {
	findings []Finding
}

func (r *Result) add(f Finding) {
	r.findings = append(r.findings, f)
}

// Findings returns all findings in the order they were produced.
func (r *Result) Findings() []Finding {
	out := make([]Finding, len(r.findings))
	copy(out, r.findings)

	return out
}

// Errors returns the messages of error findings in order.
func (r *Result) Errors() []string {
	return r.messages(SeverityError)
}

// Warnings returns the messages of warning findings in order.
func (r *Result) Warnings() []string {
	return r.messages(SeverityWarning)
}

// IsValid returns true if no error was found.
func (r *Result) IsValid() bool {
	for _, f := range r.findings {
		if f.Severity == SeverityError {
			return false
		}
	}

	return true
}

func (r *Result) messages(severity Severity) []string {
	out := make([]string, 0, len(r.findings))

	for _, f := range r.findings {
		if f.Severity == severity {
			out = append(out, f.Message)
		}
	}

	return out
}
