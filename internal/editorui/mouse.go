package editorui

import (
	"image"
	"log"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/portgraph/pkg/graphmodel"
)

// handleMouse records the cursor, translates the message into a reducer
// event and applies it.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	mouse := msg.Mouse()
	m.mouse = image.Pt(mouse.X, mouse.Y)

	if wheel, ok := msg.(tea.MouseWheelMsg); ok {
		return m.scroll(wheel)
	}

	canvas := m.layout().Rect(regionCanvas)
	ev := m.translateMouse(msg, m.mouse.Sub(canvas.Min), m.mouse.In(canvas))
	if ev == nil {
		return m
	}
	return m.dispatch(ev)
}

// translateMouse picks the reducer event for a mouse message. cell is
// relative to the canvas origin and inCanvas tells whether the cursor is
// over the canvas. Presses only start interactions inside the canvas;
// motion and release are always forwarded so drags survive leaving it.
func (m Model) translateMouse(msg tea.MouseMsg, cell image.Point, inCanvas bool) graphmodel.Event {
	p := m.viewport.ToDiagram(cell)

	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft || !inCanvas {
			return nil
		}
		hit, ok := graphmodel.HitTest(m.state, p)
		if !ok {
			return nil
		}
		if hit.OnPort() {
			return graphmodel.MouseDownPort{NodeID: hit.NodeID, PortID: hit.PortID}
		}
		return graphmodel.DragStart{NodeID: hit.NodeID, Position: p}

	case tea.MouseMotionMsg:
		if m.state.Mode() == graphmodel.ModeIdle {
			return nil
		}
		return graphmodel.MouseMove{X: p.X, Y: p.Y}

	case tea.MouseReleaseMsg:
		return graphmodel.MouseUp{}
	}
	return nil
}

// scroll pans the camera with the wheel.
func (m Model) scroll(msg tea.MouseWheelMsg) Model {
	var d image.Point
	switch msg.Button {
	case tea.MouseWheelUp:
		d.Y = -m.panStep
	case tea.MouseWheelDown:
		d.Y = m.panStep
	case tea.MouseWheelLeft:
		d.X = -m.panStep
	case tea.MouseWheelRight:
		d.X = m.panStep
	}
	m.viewport = m.viewport.Pan(d)
	return m
}

// dispatch runs the reducer. A rejected event is logged and the previous
// state is kept.
func (m Model) dispatch(ev graphmodel.Event) Model {
	next, err := graphmodel.Reduce(m.state, ev)
	if err != nil {
		log.Printf("editorui: %s rejected: %v", ev.Kind(), err)
		m.lastErr = err
		return m
	}
	if m.state.Mode() != next.Mode() {
		log.Printf("editorui: %s: %s -> %s", ev.Kind(), m.state.Mode(), next.Mode())
	}
	m.state = next
	m.lastErr = nil
	return m
}
