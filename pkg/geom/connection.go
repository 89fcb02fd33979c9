package geom

// ConnectionPoint is one end of a connector: either a bare Point or a
// SnapBox. The set of implementations is closed to this package.
type ConnectionPoint interface {
	// Anchor is the location the connector is attached to before any
	// stand-off is applied.
	Anchor() Point
	isConnectionPoint()
}

// SnapBox is a point with a square half-extent. A connector ending on a
// snap box stands off from Position by Extents along its egress direction.
type SnapBox struct {
	Position Point
	Extents  float64
}

// Anchor implements ConnectionPoint.
func (p Point) Anchor() Point { return p }

func (Point) isConnectionPoint() {}

// Anchor implements ConnectionPoint.
func (s SnapBox) Anchor() Point { return s.Position }

func (SnapBox) isConnectionPoint() {}

// Region returns the square hit/snap region of the box.
func (s SnapBox) Region() Rect {
	return Square(s.Position, s.Extents)
}

// resolve returns the anchor and stand-off distance of a connection point.
// A nil connection point resolves to the origin with no stand-off.
func resolve(cp ConnectionPoint) (Point, float64) {
	switch v := cp.(type) {
	case SnapBox:
		return v.Position, v.Extents
	case *SnapBox:
		if v == nil {
			return Point{}, 0
		}
		return v.Position, v.Extents
	case Point:
		return v, 0
	case *Point:
		if v == nil {
			return Point{}, 0
		}
		return *v, 0
	default:
		return Point{}, 0
	}
}
