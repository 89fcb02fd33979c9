package drawutil

import (
	"image"

	"github.com/wesen/portgraph/pkg/cellbuf"
)

// BoxRunes are the corner and edge characters of a box outline.
type BoxRunes struct {
	TL, TR, BL, BR rune
	Horiz, Vert    rune
}

// Box outline styles.
var (
	SquareBox  = BoxRunes{TL: '┌', TR: '┐', BL: '└', BR: '┘', Horiz: '─', Vert: '│'}
	RoundedBox = BoxRunes{TL: '╭', TR: '╮', BL: '╰', BR: '╯', Horiz: '─', Vert: '│'}
)

// DrawBox outlines r with the given runes and fills its interior with
// spaces in the same style. Rectangles narrower or shorter than two cells
// are filled with the vertical/horizontal rune instead.
func DrawBox(buf *cellbuf.Buffer, r image.Rectangle, runes BoxRunes, style cellbuf.StyleKey) {
	r = r.Canon()
	w, h := r.Dx(), r.Dy()
	switch {
	case w == 0 || h == 0:
		return
	case h == 1:
		buf.FillRect(r, runes.Horiz, style)
		return
	case w == 1:
		buf.FillRect(r, runes.Vert, style)
		return
	}

	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	buf.FillRect(r.Inset(1), ' ', style)
	for x := x0 + 1; x < x1; x++ {
		buf.Set(x, y0, runes.Horiz, style)
		buf.Set(x, y1, runes.Horiz, style)
	}
	for y := y0 + 1; y < y1; y++ {
		buf.Set(x0, y, runes.Vert, style)
		buf.Set(x1, y, runes.Vert, style)
	}
	buf.Set(x0, y0, runes.TL, style)
	buf.Set(x1, y0, runes.TR, style)
	buf.Set(x0, y1, runes.BL, style)
	buf.Set(x1, y1, runes.BR, style)
}
