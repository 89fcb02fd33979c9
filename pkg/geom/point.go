// Package geom provides the diagram-space primitives shared by the graph
// model and the renderers: points, rectangles, snap boxes, connection
// points, and the connector curve geometry.
//
// Diagram coordinates are float64 with Y growing downward, matching the
// screen the diagram is eventually drawn on.
package geom

import (
	"math"
	"strconv"
)

// Point is a location in diagram coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by k.
func (p Point) Mul(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Lerp returns the point a fraction t of the way from p to q. A
// coordinate that p and q share is returned unchanged for any t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// String formats the point as "(x,y)" using the shortest exact decimal form.
func (p Point) String() string {
	return "(" + formatCoord(p.X) + "," + formatCoord(p.Y) + ")"
}

// Rect is an axis-aligned rectangle. Min is inclusive and Max exclusive,
// the same convention as image.Rectangle.
type Rect struct {
	Min, Max Point
}

// RectAt returns the rectangle with top-left pos and the given size.
func RectAt(pos Point, w, h float64) Rect {
	return Rect{Min: pos, Max: Point{X: pos.X + w, Y: pos.Y + h}}
}

// Square returns the square centered on c with half-side extents.
func Square(c Point, extents float64) Rect {
	return Rect{
		Min: Point{X: c.X - extents, Y: c.Y - extents},
		Max: Point{X: c.X + extents, Y: c.Y + extents},
	}
}

// Empty reports whether the rectangle contains no points.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Size returns the width and height of r.
func (r Rect) Size() Point {
	return r.Max.Sub(r.Min)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Overlaps reports whether r and s share any point.
func (r Rect) Overlaps(s Rect) bool {
	return !r.Empty() && !s.Empty() &&
		r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}
