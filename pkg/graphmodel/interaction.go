package graphmodel

import "github.com/wesen/portgraph/pkg/geom"

// Mode names the kind of the active interaction.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDraggingNode
	ModeDraggingLine
)

// String returns the mode name for display.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "IDLE"
	case ModeDraggingNode:
		return "DRAGGING NODE"
	case ModeDraggingLine:
		return "DRAWING CONNECTOR"
	default:
		return "UNKNOWN"
	}
}

// Interaction is the single active drag operation: Idle, DraggingNode or
// DraggingLine. The set of implementations is closed to this package.
type Interaction interface {
	Mode() Mode
	isInteraction()
}

// Idle means no drag is in progress.
type Idle struct{}

// DraggingNode tracks a node drag. Last is the most recent cursor position
// and is used to compute incremental deltas.
type DraggingNode struct {
	NodeID string
	Last   geom.Point
}

// LineEnd is one end of a connector being drawn. HasPort is false for a
// free end that follows the cursor, and Port is then the zero value.
// Port is held by value so later states never share it.
type LineEnd struct {
	Port            Port
	HasPort         bool
	ConnectionPoint geom.ConnectionPoint
}

// DraggingLine tracks a connector being drawn from a port. From always
// starts on a port's snap box; To follows the cursor as a bare point.
type DraggingLine struct {
	From LineEnd
	To   LineEnd
}

func (Idle) Mode() Mode         { return ModeIdle }
func (DraggingNode) Mode() Mode { return ModeDraggingNode }
func (DraggingLine) Mode() Mode { return ModeDraggingLine }

func (Idle) isInteraction()         {}
func (DraggingNode) isInteraction() {}
func (DraggingLine) isInteraction() {}

// Curve returns the connector geometry between the two ends.
func (d DraggingLine) Curve() geom.Curve {
	return geom.Connect(d.From.ConnectionPoint, d.To.ConnectionPoint)
}

// ModeOf returns i.Mode(), treating nil as ModeIdle.
func ModeOf(i Interaction) Mode {
	if i == nil {
		return ModeIdle
	}
	return i.Mode()
}
