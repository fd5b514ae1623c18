package tablist

import (
	"github.com/kastheco/tablist/log"
)

// Apply runs a command against the mounted state and reports whether it
// was accepted. Commands naming a disabled or unknown item are ignored.
func (t *Tablist) Apply(cmd Command) bool {
	if !t.mounted {
		return false
	}
	switch cmd.Kind {
	case CmdActivate:
		return t.activate(cmd.Index)
	case CmdFocusHeader:
		return t.focusHeader(cmd.Index)
	case CmdNavigateNext:
		return t.moveFocus(t.nav.Next(cmd.Index))
	case CmdNavigatePrevious:
		return t.moveFocus(t.nav.Previous(cmd.Index))
	case CmdNavigateFirst:
		return t.moveFocus(t.nav.First())
	case CmdNavigateLast:
		return t.moveFocus(t.nav.Last())
	case CmdFocusPanel:
		if !t.valid(cmd.Index) {
			return false
		}
		t.track(eventPanelFocused, cmd.Index)
		return true
	case CmdReturnToHeader:
		return t.moveFocus(cmd.Index)
	}
	return false
}

// Dispatch routes host input aimed at a header or panel (or anything
// inside one) without going through an EventSource. It reports whether the
// host default action must be prevented.
func (t *Tablist) Dispatch(target Element, in Input) bool {
	if !t.mounted || target == nil {
		return false
	}
	if in.Origin == nil {
		in.Origin = target
	}
	for _, it := range t.items {
		switch target {
		case it.Header:
			return t.handleHeader(it.Index, in)
		case it.Panel:
			return t.handlePanel(it.Index, in)
		}
	}
	return false
}

func (t *Tablist) attach(src EventSource) {
	for _, it := range t.items {
		idx := it.Index
		t.cancels = append(t.cancels,
			src.Listen(it.Header, func(in Input) bool { return t.handleHeader(idx, in) }),
			src.Listen(it.Panel, func(in Input) bool { return t.handlePanel(idx, in) }),
		)
	}
}

func (t *Tablist) handleHeader(i int, in Input) bool {
	switch in.Kind {
	case InputFocus:
		t.Apply(FocusHeader(i))
		return false
	case InputClick:
		t.Apply(Activate(i))
		return true
	case InputKeyDown:
		if !t.router.tracking() {
			t.Apply(FocusHeader(i))
		}
		from := t.router.current
		switch in.Key {
		case KeyEnter, KeySpace:
			t.Apply(Activate(i))
		case KeyLeft, KeyUp:
			t.Apply(NavigatePrevious(from))
		case KeyRight, KeyDown:
			t.Apply(NavigateNext(from))
		case KeyHome:
			t.Apply(NavigateFirst())
		case KeyEnd:
			t.Apply(NavigateLast())
		default:
			return false
		}
		return true
	}
	return false
}

func (t *Tablist) handlePanel(i int, in Input) bool {
	switch in.Kind {
	case InputFocus:
		return t.panelFocus(i, in.Origin)
	case InputKeyDown:
		if !t.router.tracking() {
			t.panelFocus(i, in.Origin)
		}
		if !in.Ctrl {
			return false
		}
		switch in.Key {
		case KeyPageUp:
			t.Apply(NavigatePrevious(i))
		case KeyPageDown:
			t.Apply(NavigateNext(i))
		case KeyUp:
			t.Apply(ReturnToHeader(i))
		default:
			return false
		}
		return true
	}
	return false
}

// panelFocus swallows the second focus event some hosts fire for labelled
// radio and checkbox inputs. The flag stays set until that input is focused
// again, so on a host that never fires the duplicate (the dom package only
// fires focus when it moves) the next real visit to the input is swallowed
// and current keeps pointing at the previous header.
func (t *Tablist) panelFocus(i int, origin Element) bool {
	if origin != nil {
		if _, seen := t.handled[origin]; seen {
			delete(t.handled, origin)
			return true
		}
	}
	t.Apply(FocusPanel(i))
	if isToggleInput(origin) {
		t.handled[origin] = struct{}{}
	}
	return false
}

func (t *Tablist) activate(i int) bool {
	if !t.valid(i) || t.items[i].Disabled {
		return false
	}
	header := t.items[i].Header
	if t.container.ActiveElement() != header {
		t.moveFocus(i)
	}
	if t.cfg.FollowFocus {
		t.sync.Open(i, true)
		return true
	}
	if !t.sync.Toggle(i, true) && t.sync.isOpen(i) {
		log.InfoLog.Printf("close of %s refused: %s mode cannot collapse", describe(header, i), t.mode)
	}
	return true
}

func (t *Tablist) focusHeader(i int) bool {
	if !t.valid(i) || t.items[i].Disabled {
		return false
	}
	t.track(eventHeaderFocused, i)
	t.selectHeader(i)
	if t.cfg.FollowFocus {
		t.sync.Open(i, true)
	}
	return true
}

// moveFocus hands host focus to header i. Hosts that report focus back
// re-enter through focusHeader; applying it here as well keeps hosts that
// do not in the same state.
func (t *Tablist) moveFocus(i int) bool {
	if !t.valid(i) {
		return false
	}
	t.track(eventNavigated, i)
	t.items[i].Header.Focus()
	if t.items[i].Disabled {
		return true
	}
	return t.focusHeader(i)
}

func (t *Tablist) track(event focusEvent, i int) {
	if err := t.router.track(event, i); err != nil {
		log.WarningLog.Printf("tablist focus tracking: %v", err)
	}
}

func (t *Tablist) valid(i int) bool {
	return i >= 0 && i < len(t.items)
}

func isToggleInput(el Element) bool {
	if el == nil {
		return false
	}
	typ, _ := el.Attr("type")
	return typ == "radio" || typ == "checkbox"
}
