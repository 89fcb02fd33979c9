package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string. The caller provides
// a mapping from StyleKey to lipgloss.Style; cells whose key is missing
// from the map are written unstyled.
//
// Consecutive cells with the same StyleKey are merged into runs and
// rendered with a single Style.Render() call per run, which is
// noticeably faster than per-cell rendering for mostly-blank canvases.
//
// Rows are joined with "\n". An empty buffer (W==0 or H==0) returns "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}
	lines := make([]string, b.H)
	for y, row := range b.Cells {
		lines[y] = renderRow(row, styles)
	}
	return strings.Join(lines, "\n")
}

// renderRow renders one row as a sequence of same-style runs.
func renderRow(row []Cell, styles map[StyleKey]lipgloss.Style) string {
	var sb strings.Builder
	run := make([]rune, 0, len(row))
	runStyle := row[0].Style

	flush := func() {
		if len(run) == 0 {
			return
		}
		if s, ok := styles[runStyle]; ok {
			sb.WriteString(s.Render(string(run)))
		} else {
			sb.WriteString(string(run))
		}
		run = run[:0]
	}

	for _, c := range row {
		if c.Style != runStyle {
			flush()
			runStyle = c.Style
		}
		run = append(run, c.Ch)
	}
	flush()
	return sb.String()
}
