// Package scene produces the node configurations an editor session starts
// from: the built-in demo, a YAML file, or a JavaScript scene script.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wesen/portgraph/pkg/geom"
	"github.com/wesen/portgraph/pkg/graphmodel"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by LoadFile for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported scene format")

// File is the YAML scene document.
type File struct {
	Nodes []graphmodel.NodeConfig `yaml:"nodes"`
}

// Default returns the demo scene: four 100×100 nodes laid out left to
// right, the first carrying ports near its top-left and bottom-right
// corners.
func Default() []graphmodel.NodeConfig {
	nodes := make([]graphmodel.NodeConfig, 4)
	for i := range nodes {
		nodes[i] = graphmodel.NodeConfig{
			Width:    100,
			Height:   100,
			Position: geom.Pt(float64(i)*200, float64(i%2)*120),
		}
	}
	nodes[0].Ports = []graphmodel.PortConfig{
		{LocalPosition: geom.Pt(10, 10), Extents: 10},
		{LocalPosition: geom.Pt(90, 90), Extents: 10},
	}
	return nodes
}

// LoadYAML decodes a scene document. Unknown keys are rejected and every
// node is validated.
func LoadYAML(r io.Reader) ([]graphmodel.NodeConfig, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := graphmodel.ValidateConfigs(f.Nodes); err != nil {
		return nil, err
	}
	return f.Nodes, nil
}

// LoadFile loads a scene by extension: .yaml/.yml documents or .js scripts.
func LoadFile(path string) ([]graphmodel.NodeConfig, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".js":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	var nodes []graphmodel.NodeConfig
	if ext == ".js" {
		nodes, err = LoadScript(string(data))
	} else {
		nodes, err = LoadYAML(strings.NewReader(string(data)))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return nodes, nil
}
