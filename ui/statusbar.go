package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// StatusBarData holds the contextual information displayed in the status bar.
type StatusBarData struct {
	Source string // file name or "sample"
	Mode   string // "single-select", "accordion", "legacy-tab-only"
	Focus  string // what holds host focus, empty when nothing does
	Opened int
	Items  int
	Event  string // last open/close notification, empty = none yet
}

// StatusBar is the top status bar component.
type StatusBar struct {
	width int
	data  StatusBarData
}

// NewStatusBar creates a new StatusBar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetSize sets the terminal width for the status bar.
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetData updates the status bar content.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

var statusBarStyle = lipgloss.NewStyle().
	Background(ColorSurface).
	Foreground(ColorText).
	Padding(0, 1)

var statusBarAppNameStyle = lipgloss.NewStyle().
	Foreground(ColorIris).
	Background(ColorSurface).
	Bold(true)

var statusBarSepStyle = lipgloss.NewStyle().
	Foreground(ColorOverlay).
	Background(ColorSurface)

var statusBarSourceStyle = lipgloss.NewStyle().
	Foreground(ColorPine).
	Background(ColorSurface)

var statusBarTextStyle = lipgloss.NewStyle().
	Foreground(ColorText).
	Background(ColorSurface)

var statusBarEventStyle = lipgloss.NewStyle().
	Foreground(ColorRose).
	Background(ColorSurface)

func modeStyle(mode string) string {
	fg := ColorMuted
	switch mode {
	case "accordion":
		fg = ColorFoam
	case "single-select":
		fg = ColorIris
	}
	return lipgloss.NewStyle().Foreground(fg).Background(ColorSurface).Render(mode)
}

const statusBarSep = " │ "

func (s *StatusBar) String() string {
	if s.width < 10 {
		return ""
	}

	parts := make([]string, 0, 6)
	parts = append(parts, statusBarAppNameStyle.Render("tablist"))

	if s.data.Source != "" {
		parts = append(parts, statusBarSourceStyle.Render(s.data.Source))
	}
	if s.data.Mode != "" {
		parts = append(parts, modeStyle(s.data.Mode))
	}
	if s.data.Items > 0 {
		parts = append(parts, statusBarTextStyle.Render(openedLabel(s.data.Opened, s.data.Items)))
	}
	if s.data.Focus != "" {
		parts = append(parts, statusBarTextStyle.Render("focus: "+s.data.Focus))
	}

	sep := statusBarSepStyle.Render(statusBarSep)
	content := strings.Join(parts, sep)

	if s.data.Event != "" {
		used := lipgloss.Width(content) + runewidth.StringWidth(statusBarSep) + statusBarStyle.GetHorizontalFrameSize()
		if room := s.width - used; room > 3 {
			event := runewidth.Truncate(s.data.Event, room, "…")
			content += sep + statusBarEventStyle.Render(event)
		}
	}

	return statusBarStyle.Width(s.width).Render(content)
}

func openedLabel(opened, items int) string {
	return fmt.Sprintf("%d/%d open", opened, items)
}
