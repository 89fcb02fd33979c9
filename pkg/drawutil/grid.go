package drawutil

import (
	"image"

	"github.com/wesen/portgraph/pkg/cellbuf"
)

// DrawGrid puts a dot on every cell whose world coordinate (buffer cell
// plus origin) is a multiple of spacing on both axes. A non-positive
// spacing on either axis disables the grid.
func DrawGrid(buf *cellbuf.Buffer, origin, spacing image.Point, style cellbuf.StyleKey) {
	if spacing.X <= 0 || spacing.Y <= 0 {
		return
	}
	for r := 0; r < buf.H; r++ {
		if mod(r+origin.Y, spacing.Y) != 0 {
			continue
		}
		for c := 0; c < buf.W; c++ {
			if mod(c+origin.X, spacing.X) == 0 {
				buf.Set(c, r, '·', style)
			}
		}
	}
}

// mod returns a non-negative modulus.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
