// Package drawutil rasterizes diagram geometry into a cellbuf.Buffer:
// Bresenham segments, sampled connector curves, box outlines and the
// background dot grid.
package drawutil

import "image"

// Bresenham returns the integer points on the line from (x0,y0) to (x1,y1).
// The result always includes both endpoints. The loop is capped at
// dx+dy+2 iterations.
func Bresenham(x0, y0, x1, y1 int) []image.Point {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0

	pts := make([]image.Point, 0, dx+dy+1)
	for range dx + dy + 2 {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return pts
}

// LineChar returns the box-drawing character for a step (dx, dy).
// A zero step is drawn as a dot.
func LineChar(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return '·'
	case dx == 0:
		return '│'
	case dy == 0:
		return '─'
	case (dx > 0) == (dy > 0):
		return '\\'
	}
	return '/'
}

// ArrowChar returns an arrowhead pointing in the dominant direction of
// (dx, dy), or a bullet when there is no direction.
func ArrowChar(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return '•'
	case abs(dy) > abs(dx) && dy > 0:
		return '▼'
	case abs(dy) > abs(dx):
		return '▲'
	case dx > 0:
		return '►'
	}
	return '◄'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
