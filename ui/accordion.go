package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	zone "github.com/lrstanley/bubblezone/v2"
)

var (
	accordionHeaderStyle = lipgloss.NewStyle().Padding(0, 1)
	accordionBodyStyle   = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(ColorOverlay).
				PaddingLeft(1).
				MarginLeft(2)
)

const (
	glyphCollapsed = "▸"
	glyphExpanded  = "▾"
)

// Accordion renders a multiselectable widget as stacked headers, each
// followed by its panel when expanded.
type Accordion struct {
	headers []HeaderView
	width   int
}

func NewAccordion() *Accordion {
	return &Accordion{}
}

func (a *Accordion) SetSize(width int) {
	a.width = width
}

// ContentWidth is the width available to panel bodies.
func (a *Accordion) ContentWidth() int {
	return a.width - accordionBodyStyle.GetHorizontalFrameSize()
}

func (a *Accordion) SetHeaders(headers []HeaderView) {
	a.headers = headers
}

func (a *Accordion) String() string {
	if a.width == 0 || len(a.headers) == 0 {
		return ""
	}

	var b strings.Builder
	for i, h := range a.headers {
		if i > 0 {
			b.WriteByte('\n')
		}
		glyph := glyphCollapsed
		if h.Open {
			glyph = glyphExpanded
		}
		labelWidth := a.width - accordionHeaderStyle.GetHorizontalFrameSize() - 2
		line := accordionHeaderStyle.Render(glyph + " " + h.style().Render(h.label(labelWidth)))
		b.WriteString(zone.Mark(HeaderZoneID(h.Index), line))

		if !h.Open {
			continue
		}
		body := accordionBodyStyle
		if h.PanelFocused {
			body = body.BorderForeground(ColorIris)
		}
		b.WriteByte('\n')
		b.WriteString(zone.Mark(PanelZoneID(h.Index), body.Width(a.ContentWidth()).Render(h.Body)))
	}
	return b.String()
}
