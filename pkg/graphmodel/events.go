package graphmodel

import "github.com/wesen/portgraph/pkg/geom"

// EventKind is the wire name of an event.
type EventKind string

const (
	KindDragStart     EventKind = "dragstart"
	KindMouseDownPort EventKind = "mousedownport"
	KindMouseMove     EventKind = "mousemove"
	KindMouseUp       EventKind = "mouseup"
)

// Event is an input to Reduce. The implementations are DragStart,
// MouseDownPort, MouseMove and MouseUp, passed by value.
type Event interface {
	Kind() EventKind
	isEvent()
}

// DragStart begins dragging a node. Position is the cursor in diagram
// coordinates.
type DragStart struct {
	NodeID   string
	Position geom.Point
}

// MouseDownPort begins drawing a connector from a port.
type MouseDownPort struct {
	NodeID string
	PortID string
}

// MouseMove reports the cursor in diagram coordinates.
type MouseMove struct {
	X, Y float64
}

// MouseUp ends whatever drag is active.
type MouseUp struct{}

func (DragStart) Kind() EventKind     { return KindDragStart }
func (MouseDownPort) Kind() EventKind { return KindMouseDownPort }
func (MouseMove) Kind() EventKind     { return KindMouseMove }
func (MouseUp) Kind() EventKind       { return KindMouseUp }

func (DragStart) isEvent()     {}
func (MouseDownPort) isEvent() {}
func (MouseMove) isEvent()     {}
func (MouseUp) isEvent()       {}

// Point returns the cursor position carried by the event.
func (e MouseMove) Point() geom.Point {
	return geom.Pt(e.X, e.Y)
}
