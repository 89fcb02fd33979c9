package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// BarLayer renders a one-line bar (toolbar, footer) across a region.
func BarLayer(r Region, content string, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(r.Rect.Dx()).MaxHeight(max(r.Rect.Dy(), 0)).Render(content)
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(1).ID(r.Name)
}

// VerticalSeparator creates a Layer with a vertical line of │ characters.
func VerticalSeparator(x, y, height int, style lipgloss.Style) *lipgloss.Layer {
	if height <= 0 {
		return lipgloss.NewLayer("").X(x).Y(y).ID("separator")
	}
	rendered := style.Render(strings.TrimSuffix(strings.Repeat("│\n", height), "\n"))
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(1).ID("separator")
}

// PanelLayer renders lines into a region. Lines past the region height
// are dropped and every line is right-padded with pad so the panel
// background is uniform.
func PanelLayer(r Region, lines []string, pad lipgloss.Style) *lipgloss.Layer {
	w, h := r.Rect.Dx(), r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).ID(r.Name)
	}
	out := make([]string, h)
	for i := range out {
		var l string
		if i < len(lines) {
			l = lines[i]
		}
		out[i] = PadRight(l, w, pad)
	}
	return lipgloss.NewLayer(strings.Join(out, "\n")).
		X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(1).ID(r.Name)
}

// PadRight pads an already styled string to width visible cells.
func PadRight(s string, width int, pad lipgloss.Style) string {
	if n := width - lipgloss.Width(s); n > 0 {
		s += pad.Render(strings.Repeat(" ", n))
	}
	return s
}

// ModalLayer creates a centered high-Z overlay Layer.
// The content is rendered inside boxStyle, then centered on the terminal.
func ModalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	cx := max((termW-lipgloss.Width(rendered))/2, 0)
	cy := max((termH-lipgloss.Height(rendered))/2, 0)
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID("modal")
}

// FillLayer creates a background Layer covering a region.
func FillLayer(r Region, style lipgloss.Style, z int) *lipgloss.Layer {
	w, h := r.Rect.Dx(), r.Rect.Dy()
	id := r.Name + "-bg"
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	rendered := style.Render(strings.TrimSuffix(strings.Repeat(line+"\n", h), "\n"))
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}
