package dom

import (
	"github.com/kastheco/tablist"
)

type listenerEntry struct {
	id uint64
	fn tablist.Listener
}

// Document owns a node tree, the focused node and the listener registry.
type Document struct {
	root      *Node
	active    *Node
	listeners map[*Node][]listenerEntry
	nextID    uint64
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	d := &Document{listeners: make(map[*Node][]listenerEntry)}
	d.root = &Node{Type: DocumentNode, doc: d}
	return d
}

// Root returns the document node.
func (d *Document) Root() *Node {
	return d.root
}

// CreateElement returns a detached element owned by d. Attributes are given
// as name/value pairs.
func (d *Document) CreateElement(tag string, attrs ...string) *Node {
	n := &Node{Type: ElementNode, Tag: tag, doc: d}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.SetAttr(attrs[i], attrs[i+1])
	}
	return n
}

// CreateText returns a detached text node.
func (d *Document) CreateText(text string) *Node {
	return &Node{Type: TextNode, Data: text, doc: d}
}

// GetElementByID returns the first attached element with the id, or nil.
func (d *Document) GetElementByID(id string) *Node {
	if id == "" {
		return nil
	}
	var found *Node
	d.root.walk(func(n *Node) bool {
		if n.Type == ElementNode && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// FirstByRole returns the first element with the role, or nil.
func (d *Document) FirstByRole(role string) *Node {
	if nodes := d.root.ByRole(role); len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

// Active returns the focused node, or nil.
func (d *Document) Active() *Node {
	return d.active
}

// Blur clears focus without firing input.
func (d *Document) Blur() {
	d.active = nil
}

func (d *Document) focus(n *Node) {
	if d.active == n {
		return
	}
	d.active = n
	d.Dispatch(n, tablist.Input{Kind: tablist.InputFocus})
}

// AddListener registers fn on target. The returned func removes it and may
// be called more than once.
func (d *Document) AddListener(target *Node, fn tablist.Listener) func() {
	d.nextID++
	id := d.nextID
	d.listeners[target] = append(d.listeners[target], listenerEntry{id: id, fn: fn})
	return func() {
		list := d.listeners[target]
		for i, e := range list {
			if e.id == id {
				d.listeners[target] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
		if len(d.listeners[target]) == 0 {
			delete(d.listeners, target)
		}
	}
}

// ListenerCount returns how many listeners are attached anywhere.
func (d *Document) ListenerCount() int {
	total := 0
	for _, list := range d.listeners {
		total += len(list)
	}
	return total
}

// Dispatch delivers in to target and then to each ancestor's listeners.
// Origin defaults to target. It reports whether any listener prevented the
// default action.
func (d *Document) Dispatch(target *Node, in tablist.Input) bool {
	if target == nil {
		return false
	}
	if in.Origin == nil {
		in.Origin = target
	}
	prevented := false
	for n := target; n != nil; n = n.parent {
		list := append([]listenerEntry(nil), d.listeners[n]...)
		for _, e := range list {
			if e.fn(in) {
				prevented = true
			}
		}
	}
	return prevented
}

// Click dispatches a click on n.
func (d *Document) Click(n *Node) bool {
	return d.Dispatch(n, tablist.Input{Kind: tablist.InputClick})
}

// KeyDown dispatches a keydown on n.
func (d *Document) KeyDown(n *Node, key tablist.Key, ctrl bool) bool {
	return d.Dispatch(n, tablist.Input{Kind: tablist.InputKeyDown, Key: key, Ctrl: ctrl})
}
