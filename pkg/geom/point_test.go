package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	assert.Equal(t, Pt(4, 6), p.Add(Pt(1, 2)))
	assert.Equal(t, Pt(2, 2), p.Sub(Pt(1, 2)))
	assert.Equal(t, Pt(1.5, 2), p.Mul(0.5))
	assert.Equal(t, "(3,4)", p.String())
	assert.Equal(t, Pt(3.5, 4), p.Lerp(Pt(4, 4), 0.5))
	assert.Equal(t, 4.0, p.Lerp(Pt(7, 4), 0.3).Y)
}

func TestPointIsFinite(t *testing.T) {
	assert.True(t, Pt(1, -1).IsFinite())
	assert.False(t, Pt(math.NaN(), 0).IsFinite())
	assert.False(t, Pt(0, math.Inf(-1)).IsFinite())
}

func TestRectContains(t *testing.T) {
	r := RectAt(Pt(10, 10), 20, 10)
	assert.True(t, r.Contains(Pt(10, 10)))
	assert.True(t, r.Contains(Pt(29.9, 19.9)))
	assert.False(t, r.Contains(Pt(30, 15)))
	assert.False(t, r.Contains(Pt(9, 15)))
	assert.Equal(t, Pt(20, 10), r.Size())
}

func TestSnapBoxRegion(t *testing.T) {
	box := SnapBox{Position: Pt(10, 10), Extents: 10}
	r := box.Region()
	assert.Equal(t, Rect{Min: Pt(0, 0), Max: Pt(20, 20)}, r)
	assert.Equal(t, Pt(10, 10), box.Anchor())

	zero := SnapBox{Position: Pt(5, 5)}
	assert.True(t, zero.Region().Empty())
}

func TestRectOverlaps(t *testing.T) {
	a := RectAt(Pt(0, 0), 10, 10)
	assert.True(t, a.Overlaps(RectAt(Pt(5, 5), 10, 10)))
	assert.False(t, a.Overlaps(RectAt(Pt(10, 0), 10, 10)))
	assert.False(t, a.Overlaps(Rect{}))
}
