package ui

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// HeaderView is the render-side snapshot of one header/panel pair. The app
// rebuilds it from the markup attributes before every frame, so renderers
// never consult the controller directly.
type HeaderView struct {
	Index    int
	Label    string
	Disabled bool
	// Selected marks the header holding tabindex="0".
	Selected bool
	// Focused marks the header holding host focus.
	Focused bool
	// Open mirrors aria-expanded.
	Open bool
	// Body is the pre-rendered panel content.
	Body string
	// PanelFocused is true when host focus is inside this header's panel.
	PanelFocused bool
}

func (h HeaderView) style() lipgloss.Style {
	var s lipgloss.Style
	switch {
	case h.Disabled:
		s = disabledHeaderStyle
	case h.Selected:
		s = selectedHeaderStyle
	default:
		s = headerStyle
	}
	if h.Focused {
		s = s.Underline(true).Foreground(ColorGold)
	}
	return s
}

// label truncates the header text to width cells.
func (h HeaderView) label(width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(h.Label, width, "…")
}

// openHeader returns the first open header, if any.
func openHeader(headers []HeaderView) (HeaderView, bool) {
	for _, h := range headers {
		if h.Open {
			return h, true
		}
	}
	return HeaderView{}, false
}
