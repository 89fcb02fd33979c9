package editorui

import (
	"image"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wesen/portgraph/internal/config"
	"github.com/wesen/portgraph/internal/scene"
	"github.com/wesen/portgraph/pkg/cellbuf"
	"github.com/wesen/portgraph/pkg/geom"
	"github.com/wesen/portgraph/pkg/graphmodel"
)

// newTestModel loads the demo scene with ids id-1 (node with ports id-2
// and id-3), id-4, id-5 and id-6, on a 100x30 screen. The canvas spans
// screen rows 1..28 and columns 0..63; one cell is 5x10 diagram units.
func newTestModel(t *testing.T) Model {
	t.Helper()
	factory := graphmodel.NewFactory(&graphmodel.SequenceGenerator{Prefix: "id"})
	state, err := factory.AddNodes(graphmodel.CreateEmptyState(), scene.Default())
	require.NoError(t, err)

	m := New(state, config.DefaultConfig(), "demo")
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

// click, motion and release target canvas cell (x,y); the canvas starts
// below the one-row toolbar.
func click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y + 1, Button: tea.MouseLeft}
}

func motion(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: x, Y: y + 1}
}

func release(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: x, Y: y + 1, Button: tea.MouseLeft}
}

func TestLayoutRegions(t *testing.T) {
	m := newTestModel(t)
	l := m.layout()
	assert.Equal(t, image.Rect(0, 1, 64, 29), l.Rect(regionCanvas))
	assert.Equal(t, image.Rect(64, 1, 100, 29), l.Rect(regionPanel))
}

func TestClickNodeStartsDrag(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, click(10, 5))
	require.Equal(t, graphmodel.DraggingNode{NodeID: "id-1", Last: geom.Pt(52.5, 55)}, m.State().Interaction)

	m = update(t, m, motion(12, 6))
	n, _ := m.State().Node("id-1")
	assert.Equal(t, geom.Pt(10, 10), n.Position)

	m = update(t, m, release(12, 6))
	assert.Equal(t, graphmodel.ModeIdle, m.State().Mode())
	n, _ = m.State().Node("id-1")
	assert.Equal(t, geom.Pt(10, 10), n.Position)
	assert.NoError(t, m.Err())
}

func TestClickPortStartsLine(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, click(1, 0))
	line, ok := m.State().Interaction.(graphmodel.DraggingLine)
	require.True(t, ok, "interaction %T", m.State().Interaction)
	require.True(t, line.From.HasPort)
	assert.Equal(t, "id-2", line.From.Port.ID)
	box := geom.SnapBox{Position: geom.Pt(10, 10), Extents: 10}
	assert.Equal(t, box, line.From.ConnectionPoint)
	assert.Equal(t, box, line.To.ConnectionPoint)

	m = update(t, m, motion(39, 4))
	line = m.State().Interaction.(graphmodel.DraggingLine)
	assert.Equal(t, geom.Pt(197.5, 45), line.To.ConnectionPoint)
	assert.Equal(t, "M20,10 C76.25,10 141.25,45 197.5,45", line.Curve().PathCommand())

	before := m.State().Nodes
	m = update(t, m, release(39, 4))
	assert.Equal(t, graphmodel.ModeIdle, m.State().Mode())
	assert.Equal(t, before, m.State().Nodes)
}

func TestClickEmptyCanvasDoesNothing(t *testing.T) {
	m := newTestModel(t)
	before := m.State()

	m = update(t, m, click(30, 20))
	assert.Equal(t, before, m.State())
}

func TestClickOutsideCanvasIgnored(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.MouseClickMsg{X: 80, Y: 5, Button: tea.MouseLeft})
	assert.Equal(t, graphmodel.ModeIdle, m.State().Mode())

	// the top-left node is under the toolbar row when clicked at y=0
	m = update(t, m, tea.MouseClickMsg{X: 1, Y: 0, Button: tea.MouseLeft})
	assert.Equal(t, graphmodel.ModeIdle, m.State().Mode())
}

func TestRightClickIgnored(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.MouseClickMsg{X: 10, Y: 6, Button: tea.MouseRight})
	assert.Equal(t, graphmodel.ModeIdle, m.State().Mode())
}

func TestDragContinuesOutsideCanvas(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, click(10, 5))
	m = update(t, m, tea.MouseMotionMsg{X: 70, Y: 6})

	n, _ := m.State().Node("id-1")
	assert.Equal(t, geom.Pt(300, 0), n.Position)
}

func TestMotionWhileIdleIsNotAnEvent(t *testing.T) {
	m := newTestModel(t)
	assert.Nil(t, m.translateMouse(motion(5, 5), image.Pt(5, 5), true))
}

func TestRejectedEventKeepsState(t *testing.T) {
	m := newTestModel(t)
	before := m.State()

	m = m.dispatch(graphmodel.DragStart{NodeID: "missing"})
	assert.Equal(t, before, m.State())
	require.ErrorIs(t, m.Err(), graphmodel.ErrMissingEntity)

	m = m.dispatch(graphmodel.MouseUp{})
	assert.NoError(t, m.Err())
}

func TestKeys(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyRight})
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, image.Pt(3, 3), m.Viewport().Camera)

	m = update(t, m, tea.KeyPressMsg{Code: 'h', Text: "h"})
	assert.Equal(t, image.Pt(0, 3), m.Viewport().Camera)

	m = update(t, m, tea.KeyPressMsg{Code: '?', Text: "?"})
	assert.True(t, m.help.ShowAll)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEscapeCancelsDrag(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, click(1, 0))
	require.Equal(t, graphmodel.ModeDraggingLine, m.State().Mode())

	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, graphmodel.ModeIdle, m.State().Mode())
}

func TestWheelPans(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.MouseWheelMsg{X: 5, Y: 5, Button: tea.MouseWheelDown})
	assert.Equal(t, image.Pt(0, 3), m.Viewport().Camera)

	// panned canvas shifts hit testing: cell (10,2) is now diagram y=55
	m = update(t, m, click(10, 2))
	assert.Equal(t, graphmodel.ModeDraggingNode, m.State().Mode())
}

func TestRenderCanvas(t *testing.T) {
	m := newTestModel(t)
	buf := m.renderCanvas(image.Pt(64, 28))

	// port id-2 covers cells (0,0)-(4,2)
	assert.Equal(t, cellbuf.Cell{Ch: '┌', Style: stylePort}, buf.At(0, 0))
	assert.Equal(t, cellbuf.Cell{Ch: '┘', Style: stylePort}, buf.At(3, 1))
	// node id-4 at (200,120) has its box at cells (40,12)-(60,22)
	assert.Equal(t, cellbuf.Cell{Ch: '┌', Style: styleNode}, buf.At(40, 12))
	assert.Equal(t, cellbuf.Cell{Ch: 'i', Style: styleLabel}, buf.At(42, 12))
	assert.Equal(t, cellbuf.Cell{Ch: '┘', Style: styleNode}, buf.At(59, 21))
}

func TestRenderCanvasHighlightsInteraction(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, click(10, 5))
	buf := m.renderCanvas(image.Pt(64, 28))
	assert.Equal(t, cellbuf.Cell{Ch: '╮', Style: styleNodeHot}, buf.At(19, 0))

	m = update(t, m, release(10, 5))
	m = update(t, m, click(1, 0))
	m = update(t, m, motion(40, 20))
	buf = m.renderCanvas(image.Pt(64, 28))

	assert.Equal(t, stylePortHot, buf.At(0, 0).Style)
	curve := 0
	for y := range buf.H {
		for x := range buf.W {
			if buf.At(x, y).Style == styleCurve {
				curve++
			}
		}
	}
	assert.Greater(t, curve, 15)
}

func TestPanelDescribesLine(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, click(1, 0))
	m = update(t, m, motion(39, 4))

	text := strings.Join(m.stateLines(34), "\n")
	assert.Contains(t, text, "DRAWING CONNECTOR")
	assert.Contains(t, text, "port id-2")
	assert.Contains(t, text, "M20,10")
	assert.Contains(t, text, "(197.5,45)")
}

func TestViewRenders(t *testing.T) {
	m := newTestModel(t)
	v := m.View()
	assert.NotEmpty(t, v.Content)
	assert.True(t, v.AltScreen)
	assert.Equal(t, tea.MouseModeAllMotion, v.MouseMode)

	small := update(t, m, tea.WindowSizeMsg{Width: 20, Height: 6})
	assert.NotEmpty(t, small.View().Content)

	empty := New(graphmodel.CreateEmptyState(), nil, "")
	assert.Empty(t, empty.View().Content)
}

func TestWrapWords(t *testing.T) {
	assert.Equal(t, []string{"M20,10 C77,10", "143,50 200,50"}, wrapWords("M20,10 C77,10 143,50 200,50", 14))
	assert.Equal(t, []string{"abcdefgh"}, wrapWords("abcdefgh", 3))
	assert.Nil(t, wrapWords("", 10))
}
