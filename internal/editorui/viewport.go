package editorui

import (
	"image"
	"math"

	"github.com/wesen/portgraph/pkg/geom"
)

// Viewport maps canvas cells to diagram coordinates and back. Camera is
// the world cell shown at the canvas origin; UnitsPerCell is the size of
// one cell in diagram units.
type Viewport struct {
	Camera       image.Point
	UnitsPerCell geom.Point
}

// NewViewport returns a viewport at the origin. Non-positive scales fall
// back to one unit per cell.
func NewViewport(unitsX, unitsY float64) Viewport {
	if !(unitsX > 0) {
		unitsX = 1
	}
	if !(unitsY > 0) {
		unitsY = 1
	}
	return Viewport{UnitsPerCell: geom.Pt(unitsX, unitsY)}
}

// ToDiagram returns the diagram point at the center of a canvas cell.
func (v Viewport) ToDiagram(cell image.Point) geom.Point {
	return geom.Pt(
		(float64(cell.X+v.Camera.X)+0.5)*v.UnitsPerCell.X,
		(float64(cell.Y+v.Camera.Y)+0.5)*v.UnitsPerCell.Y,
	)
}

// ToCell returns the canvas cell containing a diagram point.
func (v Viewport) ToCell(p geom.Point) image.Point {
	return image.Pt(
		int(math.Floor(p.X/v.UnitsPerCell.X))-v.Camera.X,
		int(math.Floor(p.Y/v.UnitsPerCell.Y))-v.Camera.Y,
	)
}

// RectToCells returns the smallest cell rectangle covering r.
func (v Viewport) RectToCells(r geom.Rect) image.Rectangle {
	lo := v.ToCell(r.Min)
	hi := image.Pt(
		int(math.Ceil(r.Max.X/v.UnitsPerCell.X))-v.Camera.X,
		int(math.Ceil(r.Max.Y/v.UnitsPerCell.Y))-v.Camera.Y,
	)
	return image.Rectangle{Min: lo, Max: hi}
}

// Visible returns the diagram area covered by a canvas of the given size.
func (v Viewport) Visible(size image.Point) geom.Rect {
	return geom.Rect{
		Min: geom.Pt(float64(v.Camera.X)*v.UnitsPerCell.X, float64(v.Camera.Y)*v.UnitsPerCell.Y),
		Max: geom.Pt(float64(v.Camera.X+size.X)*v.UnitsPerCell.X, float64(v.Camera.Y+size.Y)*v.UnitsPerCell.Y),
	}
}

// Pan moves the camera by d cells.
func (v Viewport) Pan(d image.Point) Viewport {
	v.Camera = v.Camera.Add(d)
	return v
}
