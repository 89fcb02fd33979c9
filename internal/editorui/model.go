// Package editorui is the terminal host of the diagram editor. It maps
// mouse cells to diagram coordinates, turns mouse messages into reducer
// events and renders the resulting GraphState.
package editorui

import (
	"image"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/wesen/portgraph/internal/config"
	"github.com/wesen/portgraph/pkg/graphmodel"
)

// Model is the bubbletea model of an editor session.
type Model struct {
	Width, Height int

	state    graphmodel.GraphState
	viewport Viewport
	grid     image.Point
	panStep  int
	title    string

	// mouse is the last mouse cell in screen coordinates.
	mouse   image.Point
	lastErr error

	keys keyMap
	help help.Model
}

// New creates a model editing state. title is shown in the toolbar.
func New(state graphmodel.GraphState, cfg *config.Config, title string) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = panelValueStyle
	h.Styles.ShortDesc = panelDimStyle
	h.Styles.ShortSeparator = panelDimStyle
	h.Styles.FullKey = panelValueStyle
	h.Styles.FullDesc = panelTextStyle
	h.Styles.FullSeparator = panelDimStyle
	h.Styles.Ellipsis = panelDimStyle
	return Model{
		state:    state,
		viewport: NewViewport(cfg.Canvas.UnitsPerCellX, cfg.Canvas.UnitsPerCellY),
		grid:     image.Pt(cfg.Canvas.GridX, cfg.Canvas.GridY),
		panStep:  cfg.PanStep,
		title:    title,
		keys:     defaultKeyMap(),
		help:     h,
	}
}

// State returns the current diagram state.
func (m Model) State() graphmodel.GraphState { return m.state }

// Viewport returns the current coordinate mapper.
func (m Model) Viewport() Viewport { return m.viewport }

// Err returns the error of the last rejected event, if any.
func (m Model) Err() error { return m.lastErr }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
