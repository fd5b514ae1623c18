// Package tablist implements the WAI-ARIA tabs and accordion patterns as a
// host-independent state machine.
//
// A Tablist is mounted on a Container supplied by a host (a DOM, a terminal
// renderer, a test fake). It discovers the header/panel pairs below the
// container, writes the roving tabindex and expansion attributes, and
// reacts to typed Commands. Hosts that dispatch raw input implement
// EventSource; the controller then attaches its own listeners at mount.
package tablist

// Element is a single node the controller reads and writes. Implementations
// must be comparable (pointer types are); the controller keys state by
// element identity.
type Element interface {
	ID() string
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)
	// NextElementSibling returns nil when the element is the last child.
	NextElementSibling() Element
	Focus()
}

// Container is the root element of one widget instance.
type Container interface {
	Element
	// QueryRole returns descendants carrying role="<role>" in document order.
	QueryRole(role string) []Element
	// ElementByID returns nil when no element has the id.
	ElementByID(id string) Element
	// ActiveElement returns the element holding host focus, or nil.
	ActiveElement() Element
}

// EventSource is implemented by hosts that deliver input to listeners.
// Listeners attached to an element also receive input originating from its
// descendants.
type EventSource interface {
	Listen(target Element, l Listener) (cancel func())
}

// Listener handles one input and reports whether the host default action
// must be prevented.
type Listener func(in Input) (preventDefault bool)

// InputKind classifies host input.
type InputKind int

const (
	InputClick InputKind = iota
	InputKeyDown
	InputFocus
)

func (k InputKind) String() string {
	switch k {
	case InputClick:
		return "click"
	case InputKeyDown:
		return "keydown"
	case InputFocus:
		return "focus"
	}
	return "unknown"
}

// Key is the subset of keys the widget reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeySpace
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Input is the host-neutral shape of a click, keydown or focus.
type Input struct {
	Kind InputKind
	Key  Key
	Ctrl bool
	// Origin is the element the input started on. It may be a descendant of
	// the element whose listener is running.
	Origin Element
}

// Attribute names written or consumed by the controller.
const (
	AttrRole            = "role"
	AttrControls        = "aria-controls"
	AttrLabelledBy      = "aria-labelledby"
	AttrMultiselectable = "aria-multiselectable"
	AttrDisabled        = "disabled"
	AttrAriaDisabled    = "aria-disabled"
	AttrOpen            = "data-open"
	AttrTabIndex        = "tabindex"
	AttrSelected        = "aria-selected"
	AttrExpanded        = "aria-expanded"
	AttrHidden          = "aria-hidden"

	RoleTablist  = "tablist"
	RoleTab      = "tab"
	RoleTabPanel = "tabpanel"
)

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
