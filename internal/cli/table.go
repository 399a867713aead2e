package cli

import (
	"strings"
)

// Table is a simple text table with dynamic column widths, used for
// the audit report.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2,
	}
}

// AddRow adds a row to the table. Short rows are padded to the header
// count; long rows are truncated.
func (t *Table) AddRow(row []string) {
	adjusted := make([]string, len(t.headers))
	copy(adjusted, row)
	t.rows = append(t.rows, adjusted)
}

// Render formats the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	pad := strings.Repeat(" ", t.padding)

	for i, h := range t.headers {
		if i > 0 {
			sb.WriteString(pad)
		}
		sb.WriteString(padRight(h, widths[i]))
	}
	sb.WriteString("\n")

	for i, w := range widths {
		if i > 0 {
			sb.WriteString(pad)
		}
		sb.WriteString(strings.Repeat("-", w))
	}
	sb.WriteString("\n")

	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString(pad)
			}
			sb.WriteString(padRight(cell, widths[i]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// padRight pads s with spaces to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
