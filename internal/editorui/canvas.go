package editorui

import (
	"image"

	"charm.land/lipgloss/v2"
	"github.com/wesen/portgraph/pkg/cellbuf"
	"github.com/wesen/portgraph/pkg/drawutil"
	"github.com/wesen/portgraph/pkg/geom"
	"github.com/wesen/portgraph/pkg/graphmodel"
	"github.com/wesen/portgraph/pkg/tealayout"
)

// canvasLayer renders the diagram into a single layer at Z=0.
func (m Model) canvasLayer(r tealayout.Region) *lipgloss.Layer {
	if r.Empty() {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).ID(regionCanvas)
	}
	buf := m.renderCanvas(r.Rect.Size())
	return lipgloss.NewLayer(buf.Render(canvasStyles)).
		X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(0).ID(regionCanvas)
}

// renderCanvas draws the grid, then visible nodes in insertion order with
// their ports, then the connector being drawn. Later nodes paint over
// earlier ones and the connector paints over everything.
func (m Model) renderCanvas(size image.Point) *cellbuf.Buffer {
	buf := cellbuf.New(size.X, size.Y, styleBG)
	drawutil.DrawGrid(buf, m.viewport.Camera, m.grid, styleGrid)

	var hotNode, hotPort string
	var line *graphmodel.DraggingLine
	switch in := m.state.Interaction.(type) {
	case graphmodel.DraggingNode:
		hotNode = in.NodeID
	case graphmodel.DraggingLine:
		line = &in
		if in.From.HasPort {
			hotPort = in.From.Port.ID
		}
	}

	for _, n := range graphmodel.NodesInRect(m.state, m.viewport.Visible(size)) {
		style, runes := styleNode, drawutil.SquareBox
		if n.ID == hotNode {
			style, runes = styleNodeHot, drawutil.RoundedBox
		}
		box := m.viewport.RectToCells(n.Bounds())
		drawutil.DrawBox(buf, box, runes, style)
		if label := " " + shortID(n.ID) + " "; len(label)+2 <= box.Dx() {
			buf.SetString(box.Min.X+1, box.Min.Y, label, styleLabel)
		}

		for _, p := range m.state.PortsOf(n) {
			ps := stylePort
			if p.ID == hotPort {
				ps = stylePortHot
			}
			center := n.Position.Add(p.LocalPosition)
			cells := m.viewport.RectToCells(geom.Square(center, p.Extents))
			if cells.Empty() {
				buf.SetPoint(m.viewport.ToCell(center), '◆', ps)
				continue
			}
			drawutil.DrawBox(buf, cells, drawutil.SquareBox, ps)
		}
	}

	if line != nil {
		drawutil.DrawCurve(buf, line.Curve(), m.viewport.ToCell, styleCurve, true)
	}
	return buf
}

// shortID abbreviates generated ids for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
