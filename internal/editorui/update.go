package editorui

import (
	"image"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/wesen/portgraph/pkg/graphmodel"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.SetWidth(panelWidth - 2)

	case tea.KeyPressMsg:
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}

	return m, nil
}

// handleKeys processes keyboard input.
func (m Model) handleKeys(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.viewport = m.viewport.Pan(image.Pt(0, -m.panStep))
	case key.Matches(msg, m.keys.Down):
		m.viewport = m.viewport.Pan(image.Pt(0, m.panStep))
	case key.Matches(msg, m.keys.Left):
		m.viewport = m.viewport.Pan(image.Pt(-m.panStep, 0))
	case key.Matches(msg, m.keys.Right):
		m.viewport = m.viewport.Pan(image.Pt(m.panStep, 0))
	case key.Matches(msg, m.keys.Cancel):
		m = m.dispatch(graphmodel.MouseUp{})
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}
