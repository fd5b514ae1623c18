package tablist

import (
	"reflect"

	"github.com/kastheco/tablist/log"
)

// Config tunes a Tablist. The zero value is usable.
type Config struct {
	// OnOpen runs after a header's panel opens.
	OnOpen func(header Element)
	// OnClose runs after a header's panel closes.
	OnClose func(header Element)
	// OnCloseAll runs once after a non-silent CloseAll with the headers it closed.
	OnCloseAll func(headers []Element)

	// End picks what End/NavigateLast resolve to.
	End EndPolicy
	// FollowFocus opens a header's panel whenever the header is focused, so
	// activation only ever opens.
	FollowFocus bool
}

// EventName identifies callbacks registrable through On.
type EventName string

const (
	EventOpen  EventName = "open"
	EventClose EventName = "close"
)

// Callback receives the header whose panel changed.
type Callback func(header Element)

// Subscription identifies a callback registered with On. The zero value
// never matches.
type Subscription uint64

type subscriber struct {
	id Subscription
	fn Callback
}

// Tablist controls one container. Instances share no state.
type Tablist struct {
	container Container
	cfg       Config

	mounted bool
	mode    Mode
	items   []*Item
	nav     navigator
	sync    *synchronizer
	router  routerState

	// handled marks radio/checkbox origins whose next panel focus is swallowed.
	handled map[Element]struct{}
	cancels []func()

	subs   map[EventName][]subscriber
	nextID Subscription
}

// New prepares a controller. Nothing is read or written until Mount.
func New(container Container, cfg Config) *Tablist {
	return &Tablist{
		container: container,
		cfg:       cfg,
		router:    newRouterState(),
		handled:   make(map[Element]struct{}),
		subs:      make(map[EventName][]subscriber),
	}
}

// Mount discovers the items, writes the initial attributes and, when the
// container is an EventSource, attaches listeners. A ConfigurationError
// leaves the markup untouched. Mounting a mounted Tablist is a no-op.
func (t *Tablist) Mount() error {
	if t.mounted {
		return nil
	}
	if isNil(t.container) {
		return &ConfigurationError{Reason: "container is not an element"}
	}
	items, err := discover(t.container)
	if err != nil {
		return err
	}

	t.mode = modeOf(t.container)
	t.items = items
	t.nav = newNavigator(items, t.cfg.End)
	t.sync = newSynchronizer(t.mode, items, t)
	t.router = newRouterState()

	var flagged []int
	for _, it := range items {
		if v, ok := it.Header.Attr(AttrOpen); ok {
			it.Header.RemoveAttr(AttrOpen)
			if v == "true" && !it.Disabled {
				flagged = append(flagged, it.Index)
			}
		}
	}
	t.sync.reset()

	switch {
	case len(flagged) > 0 && t.mode.multiselectable():
		for _, i := range flagged {
			t.sync.Open(i, false)
		}
	case len(flagged) > 0:
		t.sync.Open(flagged[0], false)
	case !t.mode.multiselectable():
		t.sync.Open(t.nav.First(), false)
	}

	roving := t.nav.First()
	if open := t.sync.openIndices(); len(open) > 0 {
		roving = open[0]
	}
	t.selectHeader(roving)

	if src, ok := t.container.(EventSource); ok {
		t.attach(src)
	}
	t.mounted = true

	log.InfoLog.Printf("tablist mounted on %s: %d items, mode %s", describe(t.container, -1), len(items), t.mode)
	return nil
}

// Unmount detaches listeners, strips the attributes written at mount and
// leaves every panel visible. Safe to call repeatedly.
func (t *Tablist) Unmount() {
	if !t.mounted {
		return
	}
	for _, cancel := range t.cancels {
		cancel()
	}
	t.cancels = nil

	for _, it := range t.items {
		it.Header.RemoveAttr(AttrTabIndex)
		it.Header.RemoveAttr(AttrSelected)
		it.Header.RemoveAttr(AttrExpanded)
		it.Panel.SetAttr(AttrHidden, "false")
	}

	t.items = nil
	t.sync = nil
	t.nav = navigator{}
	t.router.reset()
	clear(t.handled)
	t.mounted = false

	log.InfoLog.Printf("tablist unmounted from %s", describe(t.container, -1))
}

// Mounted reports whether Mount succeeded and Unmount has not run since.
func (t *Tablist) Mounted() bool {
	return t.mounted
}

// Mode returns the mode captured at mount.
func (t *Tablist) Mode() Mode {
	return t.mode
}

// Items returns copies of the discovered pairs.
func (t *Tablist) Items() []Item {
	out := make([]Item, len(t.items))
	for i, it := range t.items {
		out[i] = *it
	}
	return out
}

// Opened returns the expanded indices in ascending order.
func (t *Tablist) Opened() []int {
	if t.sync == nil {
		return nil
	}
	return t.sync.openIndices()
}

// Expanded reports whether item i is open.
func (t *Tablist) Expanded(i int) bool {
	return t.sync != nil && t.sync.isOpen(i)
}

// CurrentIndex returns the header index that last received focus.
func (t *Tablist) CurrentIndex() (int, bool) {
	if !t.router.tracking() {
		return -1, false
	}
	return t.router.current, true
}

// Current returns the open pair in single-select modes. It reports false
// when nothing is open and always in accordion mode.
func (t *Tablist) Current() (Item, bool) {
	if t.sync == nil || t.mode.multiselectable() || len(t.sync.open) != 1 {
		return Item{}, false
	}
	return *t.items[t.sync.open[0]], true
}

// CloseAll collapses every open panel. A silent call fires no callbacks.
// Refused in legacy tab-only mode.
func (t *Tablist) CloseAll(silent bool) {
	if t.sync == nil {
		return
	}
	if !t.mode.collapsible() {
		log.InfoLog.Printf("close all refused: %s mode cannot collapse", t.mode)
		return
	}
	t.sync.CloseAll(silent)
}

// On registers fn for "open" or "close". Other names are ignored and
// yield the zero Subscription.
func (t *Tablist) On(name EventName, fn Callback) Subscription {
	if fn == nil || (name != EventOpen && name != EventClose) {
		return 0
	}
	t.nextID++
	t.subs[name] = append(t.subs[name], subscriber{id: t.nextID, fn: fn})
	return t.nextID
}

// Off removes a subscription. Unknown names or ids are ignored.
func (t *Tablist) Off(name EventName, sub Subscription) {
	list := t.subs[name]
	for i, s := range list {
		if s.id == sub {
			t.subs[name] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

func (t *Tablist) trigger(name EventName, header Element) {
	// Snapshot so a callback may call Off on itself.
	list := append([]subscriber(nil), t.subs[name]...)
	for _, s := range list {
		s.fn(header)
	}
}

func (t *Tablist) opened(it *Item) {
	if t.cfg.OnOpen != nil {
		t.cfg.OnOpen(it.Header)
	}
	t.trigger(EventOpen, it.Header)
}

func (t *Tablist) closed(it *Item) {
	if t.cfg.OnClose != nil {
		t.cfg.OnClose(it.Header)
	}
	t.trigger(EventClose, it.Header)
}

func (t *Tablist) closedAll(items []*Item) {
	if t.cfg.OnCloseAll == nil {
		return
	}
	headers := make([]Element, len(items))
	for i, it := range items {
		headers[i] = it.Header
	}
	t.cfg.OnCloseAll(headers)
}

// selectHeader moves the roving tabindex (and aria-selected outside
// accordion mode) to header i.
func (t *Tablist) selectHeader(i int) {
	for _, it := range t.items {
		selected := it.Index == i
		if selected {
			it.Header.SetAttr(AttrTabIndex, "0")
		} else {
			it.Header.SetAttr(AttrTabIndex, "-1")
		}
		if !t.mode.multiselectable() {
			it.Header.SetAttr(AttrSelected, boolAttr(selected))
		}
	}
}

// isNil also catches an interface holding a nil pointer, which a host lookup
// such as dom.Document.FirstByRole returns when nothing matches.
func isNil(c Container) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return v.IsNil()
	}
	return false
}
