package tablist

import "fmt"

// CommandKind names a state-machine operation.
type CommandKind int

const (
	CmdActivate CommandKind = iota
	CmdFocusHeader
	CmdNavigateNext
	CmdNavigatePrevious
	CmdNavigateFirst
	CmdNavigateLast
	CmdFocusPanel
	CmdReturnToHeader
)

var commandNames = map[CommandKind]string{
	CmdActivate:         "activate",
	CmdFocusHeader:      "focus-header",
	CmdNavigateNext:     "navigate-next",
	CmdNavigatePrevious: "navigate-previous",
	CmdNavigateFirst:    "navigate-first",
	CmdNavigateLast:     "navigate-last",
	CmdFocusPanel:       "focus-panel",
	CmdReturnToHeader:   "return-to-header",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is a typed instruction for Tablist.Apply. Index is the item the
// command acts on, or the starting point for relative navigation.
type Command struct {
	Kind  CommandKind
	Index int
}

func (c Command) String() string {
	switch c.Kind {
	case CmdNavigateFirst, CmdNavigateLast:
		return c.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", c.Kind, c.Index)
}

// Activate toggles item i, focusing its header first.
func Activate(i int) Command { return Command{Kind: CmdActivate, Index: i} }

// FocusHeader records that header i received focus and selects it.
func FocusHeader(i int) Command { return Command{Kind: CmdFocusHeader, Index: i} }

// NavigateNext moves focus to the enabled header after from.
func NavigateNext(from int) Command { return Command{Kind: CmdNavigateNext, Index: from} }

// NavigatePrevious moves focus to the enabled header before from.
func NavigatePrevious(from int) Command { return Command{Kind: CmdNavigatePrevious, Index: from} }

// NavigateFirst moves focus to the first enabled header.
func NavigateFirst() Command { return Command{Kind: CmdNavigateFirst} }

// NavigateLast moves focus to the header chosen by the EndPolicy.
func NavigateLast() Command { return Command{Kind: CmdNavigateLast} }

// FocusPanel records that focus entered panel i.
func FocusPanel(i int) Command { return Command{Kind: CmdFocusPanel, Index: i} }

// ReturnToHeader moves focus from panel i back to its header.
func ReturnToHeader(i int) Command { return Command{Kind: CmdReturnToHeader, Index: i} }
