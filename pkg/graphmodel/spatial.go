package graphmodel

import "github.com/wesen/portgraph/pkg/geom"

// Bounds returns the rectangle covered by the node.
func (n Node) Bounds() geom.Rect {
	return geom.RectAt(n.Position, n.Width, n.Height)
}

// PortSnapBox returns the snap box of a port: centered on the owning
// node's position plus the port's local position, with the port's extents.
func PortSnapBox(state GraphState, portID string) (geom.SnapBox, error) {
	port, ok := state.Ports[portID]
	if !ok {
		return geom.SnapBox{}, missing("port", portID)
	}
	box, _, err := portSnapBox(state, port.NodeID, portID)
	return box, err
}

// PortRegion returns the square hit/snap region of a port, side 2×extents.
func PortRegion(state GraphState, portID string) (geom.Rect, error) {
	box, err := PortSnapBox(state, portID)
	if err != nil {
		return geom.Rect{}, err
	}
	return box.Region(), nil
}

// Hit identifies what lies under a point. PortID is empty when the node
// body was hit.
type Hit struct {
	NodeID string
	PortID string
}

// OnPort reports whether the hit landed on a port.
func (h Hit) OnPort() bool { return h.PortID != "" }

// HitTest returns the topmost element containing p. Later nodes are on top
// of earlier ones, and a node's ports are on top of its body, later ports
// above earlier ones.
func HitTest(state GraphState, p geom.Point) (Hit, bool) {
	for i := len(state.NodeIDs) - 1; i >= 0; i-- {
		n, ok := state.Nodes[state.NodeIDs[i]]
		if !ok {
			continue
		}
		for j := len(n.PortIDs) - 1; j >= 0; j-- {
			port, ok := state.Ports[n.PortIDs[j]]
			if !ok {
				continue
			}
			center := n.Position.Add(port.LocalPosition)
			if geom.Square(center, port.Extents).Contains(p) {
				return Hit{NodeID: n.ID, PortID: port.ID}, true
			}
		}
		if n.Bounds().Contains(p) {
			return Hit{NodeID: n.ID}, true
		}
	}
	return Hit{}, false
}

// NodesInRect returns the nodes whose bounds intersect r, in insertion
// order.
func NodesInRect(state GraphState, r geom.Rect) []Node {
	var result []Node
	for _, n := range state.OrderedNodes() {
		if n.Bounds().Overlaps(r) {
			result = append(result, n)
		}
	}
	return result
}
