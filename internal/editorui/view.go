package editorui

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/wesen/portgraph/pkg/tealayout"
)

// Region names.
const (
	regionToolbar = "toolbar"
	regionFooter  = "footer"
	regionPanel   = "panel"
	regionCanvas  = "canvas"
)

const panelWidth = 36

// layout splits the screen into toolbar, footer, side panel and canvas.
// Mouse translation and View share it.
func (m Model) layout() tealayout.Layout {
	return tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed(regionToolbar, 1).
		BottomFixed(regionFooter, 1).
		RightFixed(regionPanel, panelWidth).
		Remaining(regionCanvas).
		Build()
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	l := m.layout()
	toolbar := l.Get(regionToolbar)
	footer := l.Get(regionFooter)
	panel := l.Get(regionPanel)
	canvas := l.Get(regionCanvas)

	fstyle := footerStyle
	if m.lastErr != nil {
		fstyle = footerErrStyle
	}

	layers := []*lipgloss.Layer{
		tealayout.FillLayer(toolbar, toolbarStyle, 0),
		tealayout.FillLayer(footer, footerStyle, 0),
		tealayout.FillLayer(panel, panelBGStyle, 0),
		tealayout.BarLayer(toolbar, m.toolbarText(), toolbarStyle),
		tealayout.BarLayer(footer, m.footerText(canvas.Rect), fstyle),
		m.canvasLayer(canvas),
	}
	layers = append(layers, m.panelLayers(panel)...)

	if canvas.Empty() {
		msg := fmt.Sprintf("Terminal too small\n\nneed more than %d columns", panelWidth)
		layers = append(layers, tealayout.ModalLayer(msg, m.Width, m.Height, modalStyle))
	}

	comp := lipgloss.NewCompositor(layers...)
	screen := lipgloss.NewCanvas(m.Width, m.Height)
	screen.Compose(comp)

	v := tea.NewView(screen.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

func (m Model) toolbarText() string {
	title := m.title
	if title == "" {
		title = "untitled"
	}
	return fmt.Sprintf(" PORTGRAPH  │  %s  │  %s  │  drag nodes, drag ports to connect",
		title, m.state.Mode())
}

func (m Model) footerText(canvas image.Rectangle) string {
	if m.lastErr != nil {
		return " ✗ " + m.lastErr.Error()
	}
	where := "-"
	if m.mouse.In(canvas) {
		where = m.viewport.ToDiagram(m.mouse.Sub(canvas.Min)).String()
	}
	return fmt.Sprintf(" Mouse: (%d,%d)  Diagram: %s  Cam: (%d,%d)",
		m.mouse.X, m.mouse.Y, where, m.viewport.Camera.X, m.viewport.Camera.Y)
}
