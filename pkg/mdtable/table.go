// Package mdtable renders aligned Markdown tables for reports and schema
// documentation.
package mdtable

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment specifies column alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// minColumnWidth keeps the separator at least "---" wide.
const minColumnWidth = 3

// Table is a Markdown table under construction. Columns are sized by
// display width so wide runes stay aligned.
type Table struct {
	headers    []string
	alignments []Alignment
	rows       [][]string
}

// New creates a Table with left-aligned columns.
func New(headers ...string) *Table {
	return &Table{
		headers:    headers,
		alignments: make([]Alignment, len(headers)),
	}
}

// Align sets the alignment of one column. Out of range columns are ignored.
func (t *Table) Align(col int, align Alignment) *Table {
	if col >= 0 && col < len(t.alignments) {
		t.alignments[col] = align
	}

	return t
}

// AddRow appends a row, padding or truncating it to the header count.
func (t *Table) AddRow(cells ...string) *Table {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = Escape(cells[i])
		}
	}

	t.rows = append(t.rows, row)

	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table. A table without headers renders as "".
func (t *Table) String() string {
	if len(t.headers) == 0 {
		return ""
	}

	headers := make([]string, len(t.headers))
	for i, h := range t.headers {
		headers[i] = Escape(h)
	}

	widths := t.widths(headers)

	var sb strings.Builder

	t.writeRow(&sb, headers, widths)
	t.writeSeparator(&sb, widths)

	for _, row := range t.rows {
		t.writeRow(&sb, row, widths)
	}

	return sb.String()
}

func (t *Table) widths(headers []string) []int {
	widths := make([]int, len(headers))

	for i, h := range headers {
		widths[i] = max(minColumnWidth, runewidth.StringWidth(h))
	}

	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	return widths
}

func (t *Table) writeRow(sb *strings.Builder, cells []string, widths []int) {
	sb.WriteString("|")

	for i, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(pad(cell, widths[i], t.alignments[i]))
		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}

func (t *Table) writeSeparator(sb *strings.Builder, widths []int) {
	sb.WriteString("|")

	for i, w := range widths {
		// cells are padded by one space on each side
		switch t.alignments[i] {
		case AlignCenter:
			sb.WriteString(":" + strings.Repeat("-", w) + ":")
		case AlignRight:
			sb.WriteString(strings.Repeat("-", w+1) + ":")
		default:
			sb.WriteString(":" + strings.Repeat("-", w+1))
		}

		sb.WriteString("|")
	}

	sb.WriteString("\n")
}

func pad(s string, width int, align Alignment) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}

	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2

		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// Escape makes s safe inside a table cell: line breaks become spaces, runs
// of spaces collapse and unescaped pipes are escaped.
func Escape(s string) string {
	s = strings.Join(strings.Fields(s), " ")

	var sb strings.Builder

	prev := rune(0)
	for _, r := range s {
		if r == '|' && prev != '\\' {
			sb.WriteRune('\\')
		}

		sb.WriteRune(r)
		prev = r
	}

	return sb.String()
}

// Code wraps s in backticks, or returns "" for an empty s.
func Code(s string) string {
	if s == "" {
		return ""
	}

	return "`" + s + "`"
}
