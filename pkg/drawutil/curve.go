package drawutil

import (
	"image"
	"math"

	"github.com/wesen/portgraph/pkg/cellbuf"
	"github.com/wesen/portgraph/pkg/geom"
)

// CellMapper converts a diagram point into a buffer cell.
type CellMapper func(geom.Point) image.Point

// CurveCells rasterizes a connector curve: the curve is sampled into
// segments, each sample is mapped to a cell, and samples are joined with
// Bresenham segments so the result has no gaps.
func CurveCells(c geom.Curve, toCell CellMapper, segments int) []image.Point {
	samples := c.Sample(segments)
	vertices := make([]image.Point, len(samples))
	for i, p := range samples {
		vertices[i] = toCell(p)
	}
	return Polyline(vertices)
}

// SegmentsFor picks a sample count proportional to the curve's control
// polygon length in cells, clamped to [4, 256].
func SegmentsFor(c geom.Curve, toCell CellMapper) int {
	poly := []image.Point{toCell(c.Start), toCell(c.ControlA), toCell(c.ControlB), toCell(c.End)}
	length := 0.0
	for i := 1; i < len(poly); i++ {
		d := poly[i].Sub(poly[i-1])
		length += math.Hypot(float64(d.X), float64(d.Y))
	}
	return min(max(int(length), 4), 256)
}

// DrawCurve draws a connector curve into buf, ending with an arrowhead.
// A dashed curve is used for connectors still being drawn.
func DrawCurve(buf *cellbuf.Buffer, c geom.Curve, toCell CellMapper, style cellbuf.StyleKey, dashed bool) {
	pts := CurveCells(c, toCell, SegmentsFor(c, toCell))
	DrawPath(buf, pts, style, dashed, true)
}
