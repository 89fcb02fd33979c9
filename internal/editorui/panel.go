package editorui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/wesen/portgraph/pkg/geom"
	"github.com/wesen/portgraph/pkg/graphmodel"
	"github.com/wesen/portgraph/pkg/tealayout"
)

// panelLayers renders the separator and the side panel sections.
func (m Model) panelLayers(panel tealayout.Region) []*lipgloss.Layer {
	r := panel.Rect
	if r.Dx() < 4 || r.Dy() <= 0 {
		return nil
	}

	content := tealayout.Region{Name: "panel-content", Rect: r}
	content.Rect.Min.X += 2

	helpLines := strings.Split(m.help.View(m.keys), "\n")
	rows := tealayout.SplitRows(content,
		tealayout.Row{Name: "panel-state"},
		tealayout.Row{Name: "panel-help", Height: len(helpLines) + 2},
	)
	width := content.Rect.Dx()

	keys := append([]string{
		panelTitleStyle.Render("? KEYS"),
		panelDimStyle.Render(strings.Repeat("─", max(width-1, 0))),
	}, helpLines...)

	return []*lipgloss.Layer{
		tealayout.VerticalSeparator(r.Min.X, r.Min.Y, r.Dy(), separatorStyle),
		tealayout.PanelLayer(rows[0], m.stateLines(width), panelBGStyle),
		tealayout.PanelLayer(rows[1], keys, panelBGStyle),
	}
}

// stateLines describes the interaction, the diagram and the last error.
func (m Model) stateLines(width int) []string {
	rule := panelDimStyle.Render(strings.Repeat("─", max(width-1, 0)))
	field := func(name, value string) string {
		return panelTextStyle.Render(fmt.Sprintf("  %-7s", name)) + panelValueStyle.Render(value)
	}

	lines := []string{
		panelTitleStyle.Render("◆ INTERACTION"),
		rule,
		field("mode", m.state.Mode().String()),
	}

	switch in := m.state.Interaction.(type) {
	case graphmodel.DraggingNode:
		lines = append(lines,
			field("node", shortID(in.NodeID)),
			field("cursor", in.Last.String()),
		)
		if n, ok := m.state.Node(in.NodeID); ok {
			lines = append(lines, field("at", n.Position.String()))
		}
	case graphmodel.DraggingLine:
		from := "-"
		if in.From.HasPort {
			from = "port " + shortID(in.From.Port.ID)
		}
		lines = append(lines,
			field("from", from),
			field("to", describePoint(in.To.ConnectionPoint)),
			panelTextStyle.Render("  path"),
		)
		for _, l := range wrapWords(in.Curve().PathCommand(), width-4) {
			lines = append(lines, panelValueStyle.Render("    "+l))
		}
	}

	lines = append(lines,
		"",
		panelTitleStyle.Render("◆ DIAGRAM"),
		rule,
		field("nodes", fmt.Sprint(len(m.state.NodeIDs))),
		field("ports", fmt.Sprint(len(m.state.PortIDs))),
	)

	if m.lastErr != nil {
		lines = append(lines, "", panelTitleStyle.Render("✗ LAST ERROR"), rule)
		for _, l := range wrapWords(m.lastErr.Error(), width-2) {
			lines = append(lines, panelDimStyle.Render("  "+l))
		}
	}
	return lines
}

// describePoint formats a connection point for the panel.
func describePoint(cp geom.ConnectionPoint) string {
	switch p := cp.(type) {
	case geom.SnapBox:
		return fmt.Sprintf("box %s ±%s", p.Position, strconv.FormatFloat(p.Extents, 'f', -1, 64))
	case geom.Point:
		return p.String()
	case nil:
		return "-"
	}
	return cp.Anchor().String()
}

// wrapWords greedily wraps s on spaces to lines of at most width runes.
// Words longer than width get a line of their own.
func wrapWords(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	var cur strings.Builder
	for _, w := range strings.Fields(s) {
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
