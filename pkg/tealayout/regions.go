// Package tealayout computes named screen regions and builds the chrome
// layers (bars, separators, panels, overlays) of a Bubbletea v2 +
// Lipgloss v2 editor screen.
package tealayout

import "image"

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Empty reports whether the region has no cells.
func (r Region) Empty() bool { return r.Rect.Empty() }

// Layout holds the computed regions for a given terminal size.
type Layout struct {
	TermW, TermH int
	Regions      map[string]Region
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// Rect is shorthand for Get(name).Rect.
func (l Layout) Rect(name string) image.Rectangle {
	return l.Regions[name].Rect
}

// LayoutBuilder accumulates fixed regions and computes the remainder.
type LayoutBuilder struct {
	termW, termH int
	top, bottom  int // rows consumed from top/bottom
	right        int // columns consumed from right
	regions      []Region
}

// NewLayoutBuilder creates a builder for the given terminal size.
func NewLayoutBuilder(termW, termH int) *LayoutBuilder {
	return &LayoutBuilder{termW: termW, termH: termH}
}

// TopFixed reserves rows from the top.
func (b *LayoutBuilder) TopFixed(name string, height int) *LayoutBuilder {
	y := b.top
	b.add(name, image.Rect(0, y, b.termW, y+height))
	b.top += height
	return b
}

// BottomFixed reserves rows from the bottom.
func (b *LayoutBuilder) BottomFixed(name string, height int) *LayoutBuilder {
	y := b.termH - b.bottom - height
	b.add(name, image.Rect(0, y, b.termW, y+height))
	b.bottom += height
	return b
}

// RightFixed reserves columns from the right, spanning the rows between
// the top and bottom fixed regions. A width larger than what is left
// is clamped so the remainder never goes negative.
func (b *LayoutBuilder) RightFixed(name string, width int) *LayoutBuilder {
	width = min(width, max(b.termW-b.right, 0))
	x := b.termW - b.right - width
	b.add(name, image.Rect(x, b.top, x+width, b.termH-b.bottom))
	b.right += width
	return b
}

// Remaining assigns whatever rectangle is left after fixed allocations,
// or an empty rectangle when nothing is left.
func (b *LayoutBuilder) Remaining(name string) *LayoutBuilder {
	x1 := b.termW - b.right
	y1 := b.termH - b.bottom
	var rect image.Rectangle
	if x1 > 0 && y1 > b.top {
		rect = image.Rect(0, b.top, x1, y1)
	}
	b.add(name, rect)
	return b
}

func (b *LayoutBuilder) add(name string, r image.Rectangle) {
	b.regions = append(b.regions, Region{Name: name, Rect: r})
}

// Build computes and returns the final Layout. Degenerate regions are
// clamped to the empty rectangle.
func (b *LayoutBuilder) Build() Layout {
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		Regions: make(map[string]Region, len(b.regions)),
	}
	for _, r := range b.regions {
		if r.Rect.Min.X >= r.Rect.Max.X || r.Rect.Min.Y >= r.Rect.Max.Y {
			r.Rect = image.Rectangle{}
		}
		l.Regions[r.Name] = r
	}
	return l
}

// Row is a named slice of a region used by SplitRows. A Height of zero
// takes whatever rows are left; at most one row should do that.
type Row struct {
	Name   string
	Height int
}

// SplitRows stacks rows top to bottom inside r. Fixed rows are clipped
// to the region, and the flexible row gets the leftover height.
func SplitRows(r Region, rows ...Row) []Region {
	fixed := 0
	for _, row := range rows {
		fixed += row.Height
	}
	flex := max(r.Rect.Dy()-fixed, 0)

	out := make([]Region, 0, len(rows))
	y := r.Rect.Min.Y
	for _, row := range rows {
		h := row.Height
		if h == 0 {
			h = flex
		}
		rect := image.Rect(r.Rect.Min.X, y, r.Rect.Max.X, y+h).Intersect(r.Rect)
		out = append(out, Region{Name: row.Name, Rect: rect})
		y += h
	}
	return out
}
