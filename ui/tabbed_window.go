package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	zone "github.com/lrstanley/bubblezone/v2"
)

func tabBorderWithBottom(left, middle, right string) lipgloss.Border {
	border := lipgloss.RoundedBorder()
	border.BottomLeft = left
	border.Bottom = middle
	border.BottomRight = right
	return border
}

var (
	inactiveTabBorder = tabBorderWithBottom("┴", "─", "┴")
	activeTabBorder   = tabBorderWithBottom("┘", " ", "└")
	inactiveTabStyle  = lipgloss.NewStyle().
				Border(inactiveTabBorder, true).
				BorderForeground(ColorIris).
				AlignHorizontal(lipgloss.Center)
	activeTabStyle = inactiveTabStyle.
			Border(activeTabBorder, true).
			AlignHorizontal(lipgloss.Center)
	windowBorder = lipgloss.RoundedBorder()
	windowStyle  = lipgloss.NewStyle().
			BorderForeground(ColorIris).
			Border(windowBorder, false, true, true, true)
)

// TabbedWindow renders a single-select or legacy widget: a row of tabs over
// a window showing the open panel. Each tab takes up three rows including
// its border.
type TabbedWindow struct {
	headers []HeaderView

	height int
	width  int
}

func NewTabbedWindow() *TabbedWindow {
	return &TabbedWindow{}
}

func (w *TabbedWindow) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// ContentWidth is the width available to panel bodies inside the window.
func (w *TabbedWindow) ContentWidth() int {
	return w.width - windowStyle.GetHorizontalFrameSize()
}

// SetHeaders replaces the snapshot rendered by String.
func (w *TabbedWindow) SetHeaders(headers []HeaderView) {
	w.headers = headers
}

func (w *TabbedWindow) String() string {
	if w.width == 0 || w.height == 0 || len(w.headers) == 0 {
		return ""
	}

	var renderedTabs []string

	tabWidth := w.width / len(w.headers)
	lastTabWidth := w.width - tabWidth*(len(w.headers)-1)
	tabHeight := activeTabStyle.GetVerticalFrameSize() + 1

	open, hasOpen := openHeader(w.headers)

	var borderColor color.Color = ColorOverlay
	if hasOpen && open.PanelFocused {
		borderColor = ColorIris
	}
	for i, h := range w.headers {
		width := tabWidth
		if i == len(w.headers)-1 {
			width = lastTabWidth
		}

		var style lipgloss.Style
		isFirst, isLast, isActive := i == 0, i == len(w.headers)-1, h.Open
		if isActive {
			style = activeTabStyle
		} else {
			style = inactiveTabStyle
		}
		style = style.BorderForeground(borderColor)
		border, _, _, _, _ := style.GetBorder()
		if isFirst && isActive {
			border.BottomLeft = "│"
		} else if isFirst {
			border.BottomLeft = "├"
		} else if isLast && isActive {
			border.BottomRight = "│"
		} else if isLast {
			border.BottomRight = "┤"
		}
		style = style.Border(border)
		style = style.Width(width - style.GetHorizontalFrameSize())

		label := h.style().Render(h.label(width - style.GetHorizontalFrameSize()))
		renderedTabs = append(renderedTabs, zone.Mark(HeaderZoneID(h.Index), style.Render(label)))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	content := panelDimStyle.Render("no panel open")
	zoneID := ""
	if hasOpen {
		content = open.Body
		zoneID = PanelZoneID(open.Index)
	}
	windowHeight := w.height - tabHeight - windowStyle.GetVerticalFrameSize()
	if windowHeight < 1 {
		windowHeight = 1
	}
	window := windowStyle.
		BorderForeground(borderColor).
		Width(w.ContentWidth()).
		Height(windowHeight).
		Render(content)
	if zoneID != "" {
		window = zone.Mark(zoneID, window)
	}

	return lipgloss.JoinVertical(lipgloss.Left, row, window)
}
