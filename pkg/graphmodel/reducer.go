package graphmodel

import (
	"fmt"

	"github.com/wesen/portgraph/pkg/geom"
)

// Reduce applies ev to state and returns the resulting state. It has no
// side effects: state and everything it references are left untouched.
//
// On error the returned state is state itself. Errors wrap
// ErrUnknownEventKind for events outside the closed set (including
// pointers to event values) and ErrMissingEntity when the event names a
// node or port that state does not hold.
func Reduce(state GraphState, ev Event) (GraphState, error) {
	switch e := ev.(type) {
	case DragStart:
		return reduceDragStart(state, e)
	case MouseDownPort:
		return reduceMouseDownPort(state, e)
	case MouseMove:
		return reduceMouseMove(state, e)
	case MouseUp:
		return state.withInteraction(Idle{}), nil
	default:
		return state, fmt.Errorf("%w: %T", ErrUnknownEventKind, ev)
	}
}

// ReduceAll applies events in order and stops at the first error, returning
// the last good state alongside it.
func ReduceAll(state GraphState, events ...Event) (GraphState, error) {
	for i, ev := range events {
		next, err := Reduce(state, ev)
		if err != nil {
			return state, fmt.Errorf("event %d (%T): %w", i, ev, err)
		}
		state = next
	}
	return state, nil
}

func reduceDragStart(state GraphState, e DragStart) (GraphState, error) {
	if _, ok := state.Nodes[e.NodeID]; !ok {
		return state, fmt.Errorf("dragstart: %w", missing("node", e.NodeID))
	}
	return state.withInteraction(DraggingNode{NodeID: e.NodeID, Last: e.Position}), nil
}

func reduceMouseDownPort(state GraphState, e MouseDownPort) (GraphState, error) {
	box, port, err := portSnapBox(state, e.NodeID, e.PortID)
	if err != nil {
		return state, fmt.Errorf("mousedownport: %w", err)
	}
	return state.withInteraction(DraggingLine{
		From: LineEnd{Port: port, HasPort: true, ConnectionPoint: box},
		To:   LineEnd{ConnectionPoint: box},
	}), nil
}

func reduceMouseMove(state GraphState, e MouseMove) (GraphState, error) {
	switch drag := state.Interaction.(type) {
	case DraggingNode:
		node, ok := state.Nodes[drag.NodeID]
		if !ok {
			return state, fmt.Errorf("mousemove: %w", missing("node", drag.NodeID))
		}
		cursor := e.Point()
		node.Position = node.Position.Add(cursor.Sub(drag.Last))
		next := state.withNode(node)
		drag.Last = cursor
		return next.withInteraction(drag), nil

	case DraggingLine:
		drag.To = LineEnd{ConnectionPoint: e.Point()}
		return state.withInteraction(drag), nil

	default:
		return state, nil
	}
}

// portSnapBox resolves a port owned by nodeID and returns its snap box in
// diagram coordinates.
func portSnapBox(state GraphState, nodeID, portID string) (geom.SnapBox, Port, error) {
	port, ok := state.Ports[portID]
	if !ok {
		return geom.SnapBox{}, Port{}, missing("port", portID)
	}
	node, ok := state.Nodes[nodeID]
	if !ok {
		return geom.SnapBox{}, Port{}, missing("node", nodeID)
	}
	if port.NodeID != nodeID {
		return geom.SnapBox{}, Port{}, fmt.Errorf("%w: port %q is not on node %q", ErrMissingEntity, portID, nodeID)
	}
	return geom.SnapBox{
		Position: node.Position.Add(port.LocalPosition),
		Extents:  port.Extents,
	}, port, nil
}
