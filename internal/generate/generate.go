// Package generate derives documentation and configuration templates from a
// schema.
package generate

import (
	"fmt"
	"strings"

	"github.com/smykla-labs/confcheck/pkg/mdtable"
	"github.com/smykla-labs/confcheck/pkg/schema"
)

const commentPrefix = "; "

// Documentation renders the schema as Markdown: a heading per section and a
// table of its options.
func Documentation(s *schema.Schema) string {
	var sb strings.Builder

	sb.WriteString("# Configuration reference\n")

	for _, sec := range s.Sections() {
		fmt.Fprintf(&sb, "\n## %s\n\n", mdtable.Code(sec.Name))

		if sec.Deprecated {
			sb.WriteString("> **Deprecated:** this section should no longer be used.\n\n")
		}

		options := sec.Options()
		if len(options) == 0 {
			sb.WriteString("_No options._\n")
			continue
		}

		table := mdtable.New("Option", "Type", "Required", "Deprecated", "Description").
			Align(2, mdtable.AlignCenter).
			Align(3, mdtable.AlignCenter)

		for _, opt := range options {
			table.AddRow(
				mdtable.Code(opt.Name),
				mdtable.Code(opt.Rule.Type.String()),
				yesNo(opt.Rule.Required),
				yesNo(opt.Rule.Deprecated),
				opt.Rule.Description,
			)
		}

		sb.WriteString(table.String())
	}

	return sb.String()
}

// TemplateOptions control Template output.
type TemplateOptions struct {
	// IncludeDeprecated keeps deprecated sections and options.
	IncludeDeprecated bool
}

// Template renders an INI skeleton with every option left empty and its
// rule described in comments above it.
func Template(s *schema.Schema, opts TemplateOptions) string {
	var sb strings.Builder

	first := true

	for _, sec := range s.Sections() {
		if sec.Deprecated && !opts.IncludeDeprecated {
			continue
		}

		if !first {
			sb.WriteString("\n")
		}

		first = false

		if sec.Deprecated {
			sb.WriteString(commentPrefix + "deprecated section\n")
		}

		fmt.Fprintf(&sb, "[%s]\n", sec.Name)

		for _, opt := range sec.Options() {
			if opt.Rule.Deprecated && !opts.IncludeDeprecated {
				continue
			}

			for _, line := range ruleComments(opt.Rule) {
				sb.WriteString(commentPrefix + line + "\n")
			}

			fmt.Fprintf(&sb, "%s =\n", opt.Name)
		}
	}

	return sb.String()
}

func ruleComments(rule schema.Rule) []string {
	head := "type: " + rule.Type.String()

	if rule.Required {
		head += ", required"
	}

	if rule.Deprecated {
		head += ", deprecated"
	}

	lines := []string{head}

	if rule.Description != "" {
		lines = append(lines, strings.Split(strings.TrimSpace(rule.Description), "\n")...)
	}

	return lines
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
