package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/kastheco/tablist"
)

type KeyName int

const (
	KeyLeft KeyName = iota
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEnter
	KeySpace

	KeyPanelPrev   // ctrl+pgup inside a panel
	KeyPanelNext   // ctrl+pgdown inside a panel
	KeyPanelHeader // ctrl+up inside a panel

	KeyTab      // Tab moves host focus between the header row and the open panel.
	KeyCloseAll // Collapses every panel (accordion and single-select only).
	KeyYank     // Copies the open panel's text to the clipboard.
	KeyHelp
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"left":        KeyLeft,
	"h":           KeyLeft,
	"right":       KeyRight,
	"l":           KeyRight,
	"up":          KeyUp,
	"k":           KeyUp,
	"down":        KeyDown,
	"j":           KeyDown,
	"home":        KeyHome,
	"end":         KeyEnd,
	"enter":       KeyEnter,
	"space":       KeySpace,
	"ctrl+pgup":   KeyPanelPrev,
	"ctrl+pgdown": KeyPanelNext,
	"ctrl+up":     KeyPanelHeader,
	"tab":         KeyTab,
	"shift+tab":   KeyTab,
	"c":           KeyCloseAll,
	"y":           KeyYank,
	"?":           KeyHelp,
	"q":           KeyQuit,
	"ctrl+c":      KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous"),
	),
	KeyRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next"),
	),
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next"),
	),
	KeyHome: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first"),
	),
	KeyEnd: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "toggle"),
	),
	KeySpace: key.NewBinding(
		key.WithKeys("space"),
		key.WithHelp("space", "toggle"),
	),
	KeyPanelPrev: key.NewBinding(
		key.WithKeys("ctrl+pgup"),
		key.WithHelp("ctrl+pgup", "prev tab"),
	),
	KeyPanelNext: key.NewBinding(
		key.WithKeys("ctrl+pgdown"),
		key.WithHelp("ctrl+pgdown", "next tab"),
	),
	KeyPanelHeader: key.NewBinding(
		key.WithKeys("ctrl+up"),
		key.WithHelp("ctrl+↑", "to header"),
	),
	KeyTab: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "header/panel"),
	),
	KeyCloseAll: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "close all"),
	),
	KeyYank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy panel"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ToInput translates a widget key into the keydown the controller expects.
// Keys that only drive the host report false.
func ToInput(name KeyName) (tablist.Input, bool) {
	in := tablist.Input{Kind: tablist.InputKeyDown}
	switch name {
	case KeyLeft:
		in.Key = tablist.KeyLeft
	case KeyRight:
		in.Key = tablist.KeyRight
	case KeyUp:
		in.Key = tablist.KeyUp
	case KeyDown:
		in.Key = tablist.KeyDown
	case KeyHome:
		in.Key = tablist.KeyHome
	case KeyEnd:
		in.Key = tablist.KeyEnd
	case KeyEnter:
		in.Key = tablist.KeyEnter
	case KeySpace:
		in.Key = tablist.KeySpace
	case KeyPanelPrev:
		in.Key, in.Ctrl = tablist.KeyPageUp, true
	case KeyPanelNext:
		in.Key, in.Ctrl = tablist.KeyPageDown, true
	case KeyPanelHeader:
		in.Key, in.Ctrl = tablist.KeyUp, true
	default:
		return tablist.Input{}, false
	}
	return in, true
}

// ShortHelp lists the bindings shown in the status line.
func ShortHelp() []key.Binding {
	return []key.Binding{
		GlobalkeyBindings[KeyLeft],
		GlobalkeyBindings[KeyRight],
		GlobalkeyBindings[KeyEnter],
		GlobalkeyBindings[KeyTab],
		GlobalkeyBindings[KeyCloseAll],
		GlobalkeyBindings[KeyHelp],
		GlobalkeyBindings[KeyQuit],
	}
}

// FullHelp groups every binding for the expanded help view.
func FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{GlobalkeyBindings[KeyLeft], GlobalkeyBindings[KeyRight], GlobalkeyBindings[KeyUp], GlobalkeyBindings[KeyDown]},
		{GlobalkeyBindings[KeyHome], GlobalkeyBindings[KeyEnd], GlobalkeyBindings[KeyEnter], GlobalkeyBindings[KeySpace]},
		{GlobalkeyBindings[KeyPanelPrev], GlobalkeyBindings[KeyPanelNext], GlobalkeyBindings[KeyPanelHeader]},
		{GlobalkeyBindings[KeyTab], GlobalkeyBindings[KeyCloseAll], GlobalkeyBindings[KeyYank]},
		{GlobalkeyBindings[KeyHelp], GlobalkeyBindings[KeyQuit]},
	}
}
