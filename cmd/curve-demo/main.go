// curve-demo renders a scene with connectors between consecutive nodes to
// check the connector geometry and cell rasterization by eye. Each
// connector's path command is printed below the picture.
//
// Run: go run ./cmd/curve-demo/ [-scene scenes/fan.js] [-width 100] [-height 30]
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/wesen/portgraph/internal/config"
	"github.com/wesen/portgraph/internal/scene"
	"github.com/wesen/portgraph/pkg/cellbuf"
	"github.com/wesen/portgraph/pkg/drawutil"
	"github.com/wesen/portgraph/pkg/geom"
	"github.com/wesen/portgraph/pkg/graphmodel"
)

// Style keys
const (
	BG cellbuf.StyleKey = iota
	Grid
	NodeBox
	Port
	Curve
	Label
)

var styles = map[cellbuf.StyleKey]lipgloss.Style{
	BG:      lipgloss.NewStyle().Background(lipgloss.Color("#0a0a0a")),
	Grid:    lipgloss.NewStyle().Foreground(lipgloss.Color("#1a3a1a")).Background(lipgloss.Color("#0a0a0a")),
	NodeBox: lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88")).Background(lipgloss.Color("#0a1510")),
	Port:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ddaa44")).Background(lipgloss.Color("#0a0a0a")),
	Curve:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6600")).Background(lipgloss.Color("#0a0a0a")).Bold(true),
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00")).Background(lipgloss.Color("#0a1510")),
}

func main() {
	scenePath := flag.String("scene", "", "scene file (.yaml, .yml or .js); default is the built-in demo")
	width := flag.Int("width", 130, "canvas width in cells")
	height := flag.Int("height", 26, "canvas height in cells")
	flag.Parse()

	if err := run(*scenePath, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scenePath string, width, height int) error {
	nodes := scene.Default()
	if scenePath != "" {
		var err error
		if nodes, err = scene.LoadFile(scenePath); err != nil {
			return err
		}
	}
	factory := graphmodel.NewFactory(&graphmodel.SequenceGenerator{Prefix: "n"})
	state, err := factory.AddNodes(graphmodel.CreateEmptyState(), nodes)
	if err != nil {
		return err
	}

	canvas := config.DefaultConfig().Canvas
	toCell := func(p geom.Point) image.Point {
		return image.Pt(int(p.X/canvas.UnitsPerCellX), int(p.Y/canvas.UnitsPerCellY))
	}
	boxCells := func(r geom.Rect) image.Rectangle {
		return image.Rectangle{Min: toCell(r.Min), Max: toCell(r.Max)}
	}

	buf := cellbuf.New(width, height, BG)
	drawutil.DrawGrid(buf, image.Point{}, image.Pt(canvas.GridX, canvas.GridY), Grid)

	ordered := state.OrderedNodes()
	for _, n := range ordered {
		box := boxCells(n.Bounds())
		drawutil.DrawBox(buf, box, drawutil.RoundedBox, NodeBox)
		buf.SetString(box.Min.X+2, box.Min.Y+1, n.ID, Label)
		for _, p := range state.PortsOf(n) {
			region, err := graphmodel.PortRegion(state, p.ID)
			if err != nil {
				return err
			}
			drawutil.DrawBox(buf, boxCells(region), drawutil.SquareBox, Port)
		}
	}

	var paths []string
	for i := 1; i < len(ordered); i++ {
		a, err := anchorOf(state, ordered[i-1])
		if err != nil {
			return err
		}
		b, err := anchorOf(state, ordered[i])
		if err != nil {
			return err
		}
		c := geom.Connect(a, b)
		drawutil.DrawCurve(buf, c, toCell, Curve, i%2 == 0)
		paths = append(paths, fmt.Sprintf("  %s → %s  %s", ordered[i-1].ID, ordered[i].ID, c.PathCommand()))
	}

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ffcc")).
		Bold(true).
		Underline(true)
	fmt.Println()
	fmt.Println(title.Render("  connector geometry demo"))
	fmt.Println()
	fmt.Println(buf.Render(styles))
	fmt.Println()
	legend := lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	for _, p := range paths {
		fmt.Println(legend.Render(p))
	}
	fmt.Println()
	return nil
}

// anchorOf connects from a node's first port, or from its center when it
// has none.
func anchorOf(state graphmodel.GraphState, n graphmodel.Node) (geom.ConnectionPoint, error) {
	if len(n.PortIDs) > 0 {
		return graphmodel.PortSnapBox(state, n.PortIDs[0])
	}
	return n.Position.Add(geom.Pt(n.Width/2, n.Height/2)), nil
}
