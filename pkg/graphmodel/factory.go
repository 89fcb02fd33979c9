package graphmodel

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/wesen/portgraph/pkg/geom"
)

// IDGenerator hands out identifiers that are unique for the life of the
// process.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random (v4) UUID strings.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() string { return uuid.NewString() }

// SequenceGenerator issues "<Prefix>-1", "<Prefix>-2", ... It is meant for
// deterministic tests and is not safe for concurrent use.
type SequenceGenerator struct {
	Prefix string
	n      int
}

// NewID implements IDGenerator.
func (g *SequenceGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.Prefix, g.n)
}

// PortConfig describes a port to create. LocalPosition is relative to the
// owning node's top-left corner.
type PortConfig struct {
	LocalPosition geom.Point `yaml:"position"`
	Extents       float64    `yaml:"extents" validate:"gte=0"`
}

// NodeConfig describes a node to create together with its ports.
type NodeConfig struct {
	Width    float64      `yaml:"width" validate:"gte=0"`
	Height   float64      `yaml:"height" validate:"gte=0"`
	Position geom.Point   `yaml:"position"`
	Ports    []PortConfig `yaml:"ports" validate:"dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		cfg := sl.Current().Interface().(NodeConfig)
		if !cfg.Position.IsFinite() {
			sl.ReportError(cfg.Position, "Position", "Position", "finite", "")
		}
		if !geom.Pt(cfg.Width, cfg.Height).IsFinite() {
			sl.ReportError(cfg.Width, "Width", "Width", "finite", "")
		}
	}, NodeConfig{})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		cfg := sl.Current().Interface().(PortConfig)
		if !cfg.LocalPosition.IsFinite() {
			sl.ReportError(cfg.LocalPosition, "LocalPosition", "LocalPosition", "finite", "")
		}
		if !geom.Pt(cfg.Extents, 0).IsFinite() {
			sl.ReportError(cfg.Extents, "Extents", "Extents", "finite", "")
		}
	}, PortConfig{})
	return v
}

// ValidateConfigs checks every config and returns the first failure
// wrapped in ErrInvalidConfig.
func ValidateConfigs(configs []NodeConfig) error {
	for i := range configs {
		if err := validate.Struct(configs[i]); err != nil {
			return fmt.Errorf("%w: node %d: %v", ErrInvalidConfig, i, err)
		}
	}
	return nil
}

// Factory creates nodes and ports with identities from its IDGenerator.
type Factory struct {
	ids IDGenerator
}

// NewFactory returns a factory drawing IDs from ids. A nil ids uses
// UUIDGenerator.
func NewFactory(ids IDGenerator) *Factory {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Factory{ids: ids}
}

var defaultFactory = NewFactory(nil)

// CreateEmptyState returns a state with no nodes or ports and an Idle
// interaction.
func CreateEmptyState() GraphState {
	return GraphState{
		Nodes:       map[string]Node{},
		Ports:       map[string]Port{},
		NodeIDs:     []string{},
		PortIDs:     []string{},
		Interaction: Idle{},
	}
}

// AddNodes creates nodes and ports using UUID identities. See
// (*Factory).AddNodes.
func AddNodes(state GraphState, configs []NodeConfig) (GraphState, error) {
	return defaultFactory.AddNodes(state, configs)
}

// AddNodes creates one node per config, then one port per port config,
// allocating a fresh ID for each in that order.
//
// The returned state's Nodes and Ports maps hold only the entities created
// by this call: entries from state are not carried over. NodeIDs and
// PortIDs are state's lists with the new IDs appended. Calling AddNodes
// on a non-empty state therefore yields ID lists that name entities no
// longer stored, and such a state fails Validate.
//
// Configs are validated before any ID is allocated; on error state is
// returned as given.
func (f *Factory) AddNodes(state GraphState, configs []NodeConfig) (GraphState, error) {
	if err := ValidateConfigs(configs); err != nil {
		return state, err
	}

	nodes := make(map[string]Node, len(configs))
	ports := make(map[string]Port)
	nodeIDs := make([]string, 0, len(configs))
	var portIDs []string

	for _, cfg := range configs {
		nodeID := f.ids.NewID()
		nodeIDs = append(nodeIDs, nodeID)

		node := Node{
			ID:       nodeID,
			Position: cfg.Position,
			Width:    cfg.Width,
			Height:   cfg.Height,
			PortIDs:  make([]string, 0, len(cfg.Ports)),
		}
		for _, pc := range cfg.Ports {
			portID := f.ids.NewID()
			node.PortIDs = append(node.PortIDs, portID)
			portIDs = append(portIDs, portID)
			ports[portID] = Port{
				ID:            portID,
				NodeID:        nodeID,
				LocalPosition: pc.LocalPosition,
				Extents:       pc.Extents,
			}
		}
		nodes[nodeID] = node
	}

	next := state
	next.Nodes = nodes
	next.Ports = ports
	next.NodeIDs = appendIDs(state.NodeIDs, nodeIDs)
	next.PortIDs = appendIDs(state.PortIDs, portIDs)
	return next, nil
}

// appendIDs returns a fresh, never nil, slice holding old then added.
func appendIDs(old, added []string) []string {
	out := make([]string, 0, len(old)+len(added))
	out = append(out, old...)
	return append(out, added...)
}
