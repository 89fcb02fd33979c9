package scene

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dop251/goja"
	"github.com/wesen/portgraph/pkg/geom"
	"github.com/wesen/portgraph/pkg/graphmodel"
)

// ScriptTimeout bounds how long a scene script may run.
var ScriptTimeout = 2 * time.Second

type scriptPort struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Extents float64 `json:"extents"`
}

type scriptNode struct {
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Ports  []scriptPort `json:"ports"`
}

func (n scriptNode) config() graphmodel.NodeConfig {
	cfg := graphmodel.NodeConfig{
		Width:    n.Width,
		Height:   n.Height,
		Position: geom.Pt(n.X, n.Y),
	}
	for _, p := range n.Ports {
		cfg.Ports = append(cfg.Ports, graphmodel.PortConfig{
			LocalPosition: geom.Pt(p.X, p.Y),
			Extents:       p.Extents,
		})
	}
	return cfg
}

// LoadScript runs a JavaScript scene script and collects the nodes it
// declares. The script sees two globals:
//
//	node({x, y, width, height, ports: [{x, y, extents}]}) // returns the node index
//	print(...args)                                        // writes to the log
//
// Scripts that throw, or run longer than ScriptTimeout, fail.
func LoadScript(src string) ([]graphmodel.NodeConfig, error) {
	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))

	var nodes []graphmodel.NodeConfig

	vm.Set("node", func(call goja.FunctionCall) goja.Value {
		arg := call.Argument(0)
		if goja.IsUndefined(arg) || goja.IsNull(arg) {
			panic(vm.NewTypeError("node: expected an object"))
		}
		var n scriptNode
		if err := vm.ExportTo(arg, &n); err != nil {
			panic(vm.NewTypeError("node: %v", err))
		}
		nodes = append(nodes, n.config())
		return vm.ToValue(len(nodes) - 1)
	})

	vm.Set("print", func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		log.Printf("scene: %s", strings.Join(parts, " "))
		return goja.Undefined()
	})

	timer := time.AfterFunc(ScriptTimeout, func() {
		vm.Interrupt("scene script timed out")
	})
	defer timer.Stop()

	if _, err := vm.RunString(src); err != nil {
		return nil, fmt.Errorf("run scene script: %w", err)
	}
	if err := graphmodel.ValidateConfigs(nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}
