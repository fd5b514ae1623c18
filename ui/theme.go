package ui

import "charm.land/lipgloss/v2"

// Rosé Pine Moon palette
// https://rosepinetheme.com/palette/
var (
	// Base tones
	ColorBase    = lipgloss.Color("#232136")
	ColorSurface = lipgloss.Color("#2a273f")
	ColorOverlay = lipgloss.Color("#393552")
	ColorMuted   = lipgloss.Color("#6e6a86")
	ColorSubtle  = lipgloss.Color("#908caa")
	ColorText    = lipgloss.Color("#e0def4")

	// Semantic colors
	ColorLove = lipgloss.Color("#eb6f92") // closed, refused
	ColorGold = lipgloss.Color("#f6c177") // host focus
	ColorRose = lipgloss.Color("#ea9a97") // accent, secondary
	ColorPine = lipgloss.Color("#3e8fb0") // link
	ColorFoam = lipgloss.Color("#9ccfd8") // opened
	ColorIris = lipgloss.Color("#c4a7e7") // highlight, primary
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(ColorText)
	// selectedHeaderStyle marks the header holding the roving tabindex.
	selectedHeaderStyle = headerStyle.Bold(true).Foreground(ColorIris)
	disabledHeaderStyle = headerStyle.Foreground(ColorMuted).Strikethrough(true)
	// focusedHeaderStyle is layered on top when the header has host focus.
	focusedHeaderStyle = lipgloss.NewStyle().Underline(true).Foreground(ColorGold)

	panelTextStyle = lipgloss.NewStyle().Foreground(ColorText)
	panelDimStyle  = lipgloss.NewStyle().Foreground(ColorSubtle)
)
