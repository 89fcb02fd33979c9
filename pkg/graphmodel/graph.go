// Package graphmodel holds the diagram state: nodes with attachment ports,
// their insertion order, and the single active interaction. A GraphState
// is a value; the factory and the reducer always return a new one and
// never modify the state they were given.
package graphmodel

import (
	"fmt"
	"maps"

	"github.com/wesen/portgraph/pkg/geom"
)

// Port is an attachment point positioned relative to its owning node.
// Extents is the half-side of its square hit/snap region.
type Port struct {
	ID            string
	NodeID        string
	LocalPosition geom.Point
	Extents       float64
}

// Node is a positioned rectangle. Position is the top-left corner in
// diagram coordinates and PortIDs lists owned ports in creation order.
type Node struct {
	ID       string
	Position geom.Point
	Width    float64
	Height   float64
	PortIDs  []string
}

// GraphState is a complete snapshot of the diagram.
//
// Slices and maps may be shared between successive states; treat them as
// read-only.
type GraphState struct {
	Nodes       map[string]Node
	Ports       map[string]Port
	NodeIDs     []string
	PortIDs     []string
	Interaction Interaction
}

// Node returns the node with the given ID.
func (s GraphState) Node(id string) (Node, bool) {
	n, ok := s.Nodes[id]
	return n, ok
}

// Port returns the port with the given ID.
func (s GraphState) Port(id string) (Port, bool) {
	p, ok := s.Ports[id]
	return p, ok
}

// OrderedNodes returns the nodes in insertion order. IDs with no entry in
// Nodes are skipped.
func (s GraphState) OrderedNodes() []Node {
	result := make([]Node, 0, len(s.NodeIDs))
	for _, id := range s.NodeIDs {
		if n, ok := s.Nodes[id]; ok {
			result = append(result, n)
		}
	}
	return result
}

// PortsOf returns the ports of n in creation order.
func (s GraphState) PortsOf(n Node) []Port {
	result := make([]Port, 0, len(n.PortIDs))
	for _, id := range n.PortIDs {
		if p, ok := s.Ports[id]; ok {
			result = append(result, p)
		}
	}
	return result
}

// Mode returns the mode of the current interaction. A nil interaction is
// reported as ModeIdle.
func (s GraphState) Mode() Mode {
	return ModeOf(s.Interaction)
}

// withNode returns a copy of s where the node n replaces the entry with
// the same ID.
func (s GraphState) withNode(n Node) GraphState {
	next := s
	next.Nodes = maps.Clone(s.Nodes)
	if next.Nodes == nil {
		next.Nodes = make(map[string]Node, 1)
	}
	next.Nodes[n.ID] = n
	return next
}

func (s GraphState) withInteraction(i Interaction) GraphState {
	next := s
	next.Interaction = i
	return next
}

// Validate checks the structural invariants: ID lists match the map key
// sets in order, every port references an existing node, and each node's
// PortIDs is exactly its ports in insertion order.
func (s GraphState) Validate() error {
	if err := checkIDs("node", s.NodeIDs, len(s.Nodes), func(id string) (string, bool) {
		n, ok := s.Nodes[id]
		return n.ID, ok
	}); err != nil {
		return err
	}
	if err := checkIDs("port", s.PortIDs, len(s.Ports), func(id string) (string, bool) {
		p, ok := s.Ports[id]
		return p.ID, ok
	}); err != nil {
		return err
	}

	owned := make(map[string][]string, len(s.Nodes))
	for _, pid := range s.PortIDs {
		p := s.Ports[pid]
		if _, ok := s.Nodes[p.NodeID]; !ok {
			return fmt.Errorf("%w: port %q references missing node %q", ErrBrokenInvariant, pid, p.NodeID)
		}
		owned[p.NodeID] = append(owned[p.NodeID], pid)
	}
	for _, nid := range s.NodeIDs {
		n := s.Nodes[nid]
		want := owned[nid]
		if len(n.PortIDs) != len(want) {
			return fmt.Errorf("%w: node %q lists %d ports, owns %d", ErrBrokenInvariant, nid, len(n.PortIDs), len(want))
		}
		for i := range want {
			if n.PortIDs[i] != want[i] {
				return fmt.Errorf("%w: node %q port order differs at %d", ErrBrokenInvariant, nid, i)
			}
		}
	}
	return nil
}

func checkIDs(kind string, ids []string, mapLen int, lookup func(string) (string, bool)) error {
	if len(ids) != mapLen {
		return fmt.Errorf("%w: %d %s IDs listed, %d stored", ErrBrokenInvariant, len(ids), kind, mapLen)
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate %s ID %q", ErrBrokenInvariant, kind, id)
		}
		seen[id] = struct{}{}
		stored, ok := lookup(id)
		if !ok {
			return fmt.Errorf("%w: %s %q listed but not stored", ErrBrokenInvariant, kind, id)
		}
		if stored != id {
			return fmt.Errorf("%w: %s stored under %q has ID %q", ErrBrokenInvariant, kind, id, stored)
		}
	}
	return nil
}
