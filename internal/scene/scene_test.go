package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wesen/portgraph/pkg/geom"
	"github.com/wesen/portgraph/pkg/graphmodel"
)

func TestDefault(t *testing.T) {
	nodes := Default()
	require.Len(t, nodes, 4)

	for i, n := range nodes {
		assert.Equal(t, 100.0, n.Width, "node %d width", i)
		assert.Equal(t, 100.0, n.Height, "node %d height", i)
	}
	require.Len(t, nodes[0].Ports, 2)
	assert.Equal(t, geom.Pt(10, 10), nodes[0].Ports[0].LocalPosition)
	assert.Equal(t, geom.Pt(90, 90), nodes[0].Ports[1].LocalPosition)
	assert.Equal(t, 10.0, nodes[0].Ports[0].Extents)
	for _, n := range nodes[1:] {
		assert.Empty(t, n.Ports)
	}
	require.NoError(t, graphmodel.ValidateConfigs(nodes))
}

func TestDefaultNodesDoNotOverlap(t *testing.T) {
	factory := graphmodel.NewFactory(&graphmodel.SequenceGenerator{Prefix: "n"})
	state, err := factory.AddNodes(graphmodel.CreateEmptyState(), Default())
	require.NoError(t, err)

	nodes := state.OrderedNodes()
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			assert.False(t, nodes[i].Bounds().Overlaps(nodes[j].Bounds()),
				"nodes %s and %s overlap", nodes[i].ID, nodes[j].ID)
		}
	}
}

const sampleYAML = `
nodes:
  - width: 120
    height: 80
    position: {x: 10, y: 20}
    ports:
      - position: {x: 0, y: 40}
        extents: 6
      - position: {x: 120, y: 40}
        extents: 6
  - width: 50
    height: 50
    position: {x: 300, y: 20}
`

func TestLoadYAML(t *testing.T) {
	nodes, err := LoadYAML(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	assert.Equal(t, graphmodel.NodeConfig{
		Width:    120,
		Height:   80,
		Position: geom.Pt(10, 20),
		Ports: []graphmodel.PortConfig{
			{LocalPosition: geom.Pt(0, 40), Extents: 6},
			{LocalPosition: geom.Pt(120, 40), Extents: 6},
		},
	}, nodes[0])
	assert.Equal(t, geom.Pt(300, 20), nodes[1].Position)
	assert.Empty(t, nodes[1].Ports)
}

func TestLoadYAMLEmpty(t *testing.T) {
	nodes, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestLoadYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		msg     string
	}{
		{
			name: "unknown field",
			doc:  "nodes:\n  - widht: 10\n",
			msg:  "parse scene",
		},
		{
			name:    "negative size",
			doc:     "nodes:\n  - width: -1\n    height: 10\n",
			wantErr: graphmodel.ErrInvalidConfig,
		},
		{
			name:    "negative extents",
			doc:     "nodes:\n  - width: 1\n    height: 1\n    ports:\n      - extents: -4\n",
			wantErr: graphmodel.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.doc))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	nodes, err := LoadScript(`
		var first = node({
			x: 0, y: 0, width: 100, height: 100,
			ports: [{x: 10, y: 10, extents: 10}, {x: 90, y: 90, extents: 10}]
		});
		for (var i = 1; i <= 3; i++) {
			node({x: i * 200, y: (i % 2) * 120, width: 100, height: 100});
		}
		print("declared", first);
	`)
	require.NoError(t, err)
	assert.Equal(t, Default(), nodes)
}

func TestLoadScriptReturnsIndex(t *testing.T) {
	nodes, err := LoadScript(`
		var a = node({width: 1, height: 1});
		var b = node({width: 2, height: 2});
		if (a !== 0 || b !== 1) { throw new Error("bad index " + a + "," + b); }
	`)
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax error", `node({`},
		{"thrown error", `throw new Error("boom")`},
		{"missing argument", `node()`},
		{"invalid node", `node({width: -5, height: 1})`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript(tt.src)
			require.Error(t, err)
		})
	}
}

func TestLoadScriptTimeout(t *testing.T) {
	prev := ScriptTimeout
	ScriptTimeout = 50 * time.Millisecond
	t.Cleanup(func() { ScriptTimeout = prev })

	_, err := LoadScript(`for (;;) {}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "scene.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0o644))
	nodes, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Len(t, nodes, 2)

	jsPath := filepath.Join(dir, "scene.js")
	require.NoError(t, os.WriteFile(jsPath, []byte(`node({width: 10, height: 10})`), 0o644))
	nodes, err = LoadFile(jsPath)
	require.NoError(t, err)
	assert.Len(t, nodes, 1)

	_, err = LoadFile(filepath.Join(dir, "scene.json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("nodes:\n  - width: -1\n"), 0o644))
	_, err = LoadFile(badPath)
	assert.ErrorIs(t, err, graphmodel.ErrInvalidConfig)
	assert.Contains(t, err.Error(), badPath)
}

func TestShippedScenes(t *testing.T) {
	for _, name := range []string{"demo.yaml", "fan.js"} {
		t.Run(name, func(t *testing.T) {
			nodes, err := LoadFile(filepath.Join("..", "..", "scenes", name))
			require.NoError(t, err)
			assert.NotEmpty(t, nodes)
		})
	}
}
