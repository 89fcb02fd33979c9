package editorui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/wesen/portgraph/pkg/cellbuf"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette, CRT green.
var (
	colorBG      = c("#080e0b")
	colorPanelBG = c("#1a2a20")
	colorGrid    = c("#0e2e20")
	colorNode    = c("#00d4a0")
	colorNodeHot = c("#00ffee")
	colorPort    = c("#ddaa44")
	colorPortHot = c("#ffcc00")
	colorCurve   = c("#ffcc00")
	colorText    = c("#00ffc8")
	colorDim     = c("#336655")
	colorErr     = c("#ff5f5f")
)

// cellbuf style keys for the canvas layer.
const (
	styleBG cellbuf.StyleKey = iota
	styleGrid
	styleNode
	styleNodeHot
	styleLabel
	stylePort
	stylePortHot
	styleCurve
)

var canvasStyles = map[cellbuf.StyleKey]lipgloss.Style{
	styleBG:      lipgloss.NewStyle().Background(colorBG),
	styleGrid:    lipgloss.NewStyle().Foreground(colorGrid).Background(colorBG),
	styleNode:    lipgloss.NewStyle().Foreground(colorNode).Background(colorBG),
	styleNodeHot: lipgloss.NewStyle().Foreground(colorNodeHot).Background(c("#0a1a15")).Bold(true),
	styleLabel:   lipgloss.NewStyle().Foreground(colorText).Background(colorBG).Bold(true),
	stylePort:    lipgloss.NewStyle().Foreground(colorPort).Background(colorBG),
	stylePortHot: lipgloss.NewStyle().Foreground(colorPortHot).Background(c("#12120a")).Bold(true),
	styleCurve:   lipgloss.NewStyle().Foreground(colorCurve).Background(colorBG).Bold(true),
}

// Chrome styles.
var (
	toolbarStyle = lipgloss.NewStyle().
			Background(c("#0a1510")).
			Foreground(colorText).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Background(colorBG).
			Foreground(c("#666666"))

	footerErrStyle = footerStyle.Foreground(colorErr)

	panelBGStyle = lipgloss.NewStyle().Background(colorPanelBG)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorPanelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Background(colorPanelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(colorNode).
			Background(colorPanelBG)

	panelValueStyle = lipgloss.NewStyle().
			Foreground(colorPort).
			Background(colorPanelBG)

	separatorStyle = lipgloss.NewStyle().
			Foreground(c("#1a4a3a")).
			Background(colorPanelBG)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorNodeHot).
			Background(colorPanelBG).
			Padding(1, 2)
)
