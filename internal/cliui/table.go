package cliui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

type Column struct {
	Name       string
	MaxWidth   int
	AlignRight bool
}

// RenderTable prints a plain two-space separated table with a dashed rule
// under the header. Cells are truncated to their column's MaxWidth. Cells
// are plain text; report coloring happens outside the table path.
func RenderTable(w io.Writer, cols []Column, rows [][]string) {
	if len(cols) == 0 {
		return
	}
	widths := columnWidths(cols, rows)

	writeRow := func(cells []string) {
		parts := make([]string, len(cols))
		for i, c := range cols {
			cell := ""
			if i < len(cells) {
				cell = Truncate(cells[i], widths[i])
			}
			if c.AlignRight {
				parts[i] = fmt.Sprintf("%*s", widths[i], cell)
			} else {
				parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	header := make([]string, len(cols))
	rule := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Name
		rule[i] = strings.Repeat("-", widths[i])
	}
	writeRow(header)
	writeRow(rule)
	for _, row := range rows {
		writeRow(row)
	}
}

func SprintTable(cols []Column, rows [][]string) string {
	var b strings.Builder
	RenderTable(&b, cols, rows)
	return b.String()
}

func columnWidths(cols []Column, rows [][]string) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = utf8.RuneCountInString(c.Name)
	}
	for _, row := range rows {
		for i := range cols {
			if i >= len(row) {
				continue
			}
			if n := utf8.RuneCountInString(row[i]); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i, c := range cols {
		if c.MaxWidth > 0 && widths[i] > c.MaxWidth {
			widths[i] = c.MaxWidth
		}
	}
	return widths
}

// Truncate trims s to at most max runes, marking the cut with "..." when
// there is room for it.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
