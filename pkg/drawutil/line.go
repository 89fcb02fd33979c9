package drawutil

import (
	"image"

	"github.com/wesen/portgraph/pkg/cellbuf"
)

// pointChar returns the line character for a point based on its local
// direction, looking at the next point or, for the last one, the previous.
func pointChar(pts []image.Point, i int) rune {
	var dx, dy int
	if i < len(pts)-1 {
		dx = pts[i+1].X - pts[i].X
		dy = pts[i+1].Y - pts[i].Y
	} else if i > 0 {
		dx = pts[i].X - pts[i-1].X
		dy = pts[i].Y - pts[i-1].Y
	}
	return LineChar(dx, dy)
}

// Polyline joins consecutive vertices with Bresenham segments and returns
// the resulting cells without consecutive duplicates.
func Polyline(vertices []image.Point) []image.Point {
	if len(vertices) == 0 {
		return nil
	}
	pts := []image.Point{vertices[0]}
	for i := 1; i < len(vertices); i++ {
		seg := Bresenham(vertices[i-1].X, vertices[i-1].Y, vertices[i].X, vertices[i].Y)
		for _, p := range seg {
			if p != pts[len(pts)-1] {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// DrawPath draws cells with per-point line characters. When dashed, every
// third cell is skipped. When arrow is set, the last cell becomes an
// arrowhead pointing along the final step.
func DrawPath(buf *cellbuf.Buffer, pts []image.Point, style cellbuf.StyleKey, dashed, arrow bool) {
	if len(pts) == 0 {
		return
	}
	body := pts
	if arrow {
		body = pts[:len(pts)-1]
	}
	for i, p := range body {
		if dashed && i%3 == 2 {
			continue
		}
		buf.SetPoint(p, pointChar(pts, i), style)
	}
	if arrow {
		last := pts[len(pts)-1]
		var dx, dy int
		if len(pts) >= 2 {
			dx = last.X - pts[len(pts)-2].X
			dy = last.Y - pts[len(pts)-2].Y
		}
		buf.SetPoint(last, ArrowChar(dx, dy), style)
	}
}

// DrawLine draws a Bresenham line into buf with per-point line characters.
// Coordinates are buffer-local.
func DrawLine(buf *cellbuf.Buffer, x0, y0, x1, y1 int, style cellbuf.StyleKey) {
	DrawPath(buf, Bresenham(x0, y0, x1, y1), style, false, false)
}
