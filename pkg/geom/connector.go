package geom

import (
	"math"
	"strings"
)

// Bow is the fraction of the span on the egress axis used to push each
// control point away from its endpoint.
const Bow = 0.3

// Curve is a cubic Bézier from Start to End with two control points.
type Curve struct {
	Start, End         Point
	ControlA, ControlB Point
}

// EgressDirection returns the unit cardinal direction a connector leaves
// its first endpoint in, given diff = anchorB - anchorA. Both endpoints use
// the same axis: the end is entered from the opposite side.
//
// The axis is horizontal when |dx| > |dy| and vertical otherwise, so ties
// go vertical. Coincident anchors, or a diff with a non-finite component,
// yield the zero direction.
func EgressDirection(diff Point) Point {
	if !diff.IsFinite() {
		return Point{}
	}
	if math.Abs(diff.X) > math.Abs(diff.Y) {
		return Point{X: sign(diff.X)}
	}
	return Point{Y: sign(diff.Y)}
}

// Connect computes the connector curve between a and b.
//
// A snap box endpoint is pushed outward by its extents along the egress
// direction (inward toward b's box for the far end). Bare points are used
// as-is. The control points bow the curve by Bow times the span on the
// chosen axis. The result is finite whenever the inputs are finite.
func Connect(a, b ConnectionPoint) Curve {
	pointA, extentsA := resolve(a)
	pointB, extentsB := resolve(b)

	diff := pointB.Sub(pointA)
	dir := EgressDirection(diff)

	start := pointA.Add(dir.Mul(extentsA))
	end := pointB.Sub(dir.Mul(extentsB))

	span := math.Abs(diff.X)
	if dir.X == 0 {
		span = math.Abs(diff.Y)
	}
	if !isFinite(span) {
		span = 0
	}
	pull := dir.Mul(Bow * span)

	return Curve{
		Start:    start,
		End:      end,
		ControlA: start.Add(pull),
		ControlB: end.Sub(pull),
	}
}

// At evaluates the curve at parameter t in [0,1] by de Casteljau
// subdivision, so a curve whose control polygon lies on one axis-aligned
// line stays exactly on it. t <= 0 and t >= 1 return Start and End.
func (c Curve) At(t float64) Point {
	switch {
	case t <= 0:
		return c.Start
	case t >= 1:
		return c.End
	}
	ab := c.Start.Lerp(c.ControlA, t)
	bc := c.ControlA.Lerp(c.ControlB, t)
	cd := c.ControlB.Lerp(c.End, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	return abc.Lerp(bcd, t)
}

// Sample returns n+1 evenly spaced points along the curve, Start and End
// included. n < 1 is treated as 1.
func (c Curve) Sample(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	pts[0] = c.Start
	for i := 1; i < n; i++ {
		pts[i] = c.At(float64(i) / float64(n))
	}
	pts[n] = c.End
	return pts
}

// PathCommand renders the curve as an SVG path command:
//
//	M{start} C{controlA} {controlB} {end}
func (c Curve) PathCommand() string {
	var sb strings.Builder
	sb.WriteString("M")
	writePair(&sb, c.Start)
	sb.WriteString(" C")
	writePair(&sb, c.ControlA)
	sb.WriteString(" ")
	writePair(&sb, c.ControlB)
	sb.WriteString(" ")
	writePair(&sb, c.End)
	return sb.String()
}

func writePair(sb *strings.Builder, p Point) {
	sb.WriteString(formatCoord(p.X))
	sb.WriteString(",")
	sb.WriteString(formatCoord(p.Y))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
