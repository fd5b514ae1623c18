// Package dom is an in-memory element tree that hosts tablist widgets:
// ordered attributes, an id lookup, focus tracking and bubbling input
// dispatch. Markup is parsed with golang.org/x/net/html.
package dom

import (
	"strings"

	"github.com/kastheco/tablist"
)

// NodeType distinguishes element, text and document nodes.
type NodeType int

const (
	DocumentNode NodeType = iota
	ElementNode
	TextNode
)

type attr struct {
	name, value string
}

// Node is one node of a Document. Only element nodes take part in widgets.
type Node struct {
	Type NodeType
	// Tag is the lower-case element name; empty for text and document nodes.
	Tag string
	// Data is the text of a text node.
	Data string

	attrs    []attr
	parent   *Node
	children []*Node
	doc      *Document
}

// Parent returns nil for the document node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes in order.
func (n *Node) Children() []*Node {
	return n.children
}

// Document returns the owning document.
func (n *Node) Document() *Document {
	return n.doc
}

// AppendChild moves child under n.
func (n *Node) AppendChild(child *Node) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	child.setDoc(n.doc)
	n.children = append(n.children, child)
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

func (n *Node) setDoc(d *Document) {
	n.doc = d
	for _, c := range n.children {
		c.setDoc(d)
	}
}

// ID returns the id attribute.
func (n *Node) ID() string {
	v, _ := n.Attr("id")
	return v
}

// Attr returns an attribute value and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// SetAttr sets or replaces an attribute, keeping first-set order.
func (n *Node) SetAttr(name, value string) {
	for i, a := range n.attrs {
		if a.name == name {
			n.attrs[i].value = value
			return
		}
	}
	n.attrs = append(n.attrs, attr{name: name, value: value})
}

// RemoveAttr deletes an attribute if present.
func (n *Node) RemoveAttr(name string) {
	for i, a := range n.attrs {
		if a.name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

// Attrs returns name/value pairs in order.
func (n *Node) Attrs() [][2]string {
	out := make([][2]string, len(n.attrs))
	for i, a := range n.attrs {
		out[i] = [2]string{a.name, a.value}
	}
	return out
}

// NextElementSibling skips text siblings.
func (n *Node) NextElementSibling() tablist.Element {
	if next := n.nextElement(); next != nil {
		return next
	}
	return nil
}

func (n *Node) nextElement() *Node {
	if n.parent == nil {
		return nil
	}
	found := false
	for _, c := range n.parent.children {
		if found && c.Type == ElementNode {
			return c
		}
		if c == n {
			found = true
		}
	}
	return nil
}

// Focus moves document focus here, firing a focus input when focus changes.
func (n *Node) Focus() {
	if n.doc != nil {
		n.doc.focus(n)
	}
}

// Hidden reports aria-hidden="true".
func (n *Node) Hidden() bool {
	v, _ := n.Attr("aria-hidden")
	return v == "true"
}

// Text returns the descendant text with whitespace collapsed.
func (n *Node) Text() string {
	var b strings.Builder
	n.walk(func(c *Node) bool {
		if c.Type == TextNode {
			b.WriteString(c.Data)
			b.WriteByte(' ')
		}
		return true
	})
	return strings.Join(strings.Fields(b.String()), " ")
}

// ByRole returns descendants (not n itself) with role="<role>" in document order.
func (n *Node) ByRole(role string) []*Node {
	var out []*Node
	for _, c := range n.children {
		c.walk(func(d *Node) bool {
			if d.Type == ElementNode {
				if v, _ := d.Attr("role"); v == role {
					out = append(out, d)
				}
			}
			return true
		})
	}
	return out
}

// ByTag returns descendants with the given element name in document order.
func (n *Node) ByTag(tag string) []*Node {
	var out []*Node
	for _, c := range n.children {
		c.walk(func(d *Node) bool {
			if d.Type == ElementNode && d.Tag == tag {
				out = append(out, d)
			}
			return true
		})
	}
	return out
}

// QueryRole implements tablist.Container.
func (n *Node) QueryRole(role string) []tablist.Element {
	nodes := n.ByRole(role)
	out := make([]tablist.Element, len(nodes))
	for i, d := range nodes {
		out[i] = d
	}
	return out
}

// ElementByID implements tablist.Container; the lookup spans the document.
func (n *Node) ElementByID(id string) tablist.Element {
	if n.doc == nil {
		return nil
	}
	if found := n.doc.GetElementByID(id); found != nil {
		return found
	}
	return nil
}

// ActiveElement implements tablist.Container.
func (n *Node) ActiveElement() tablist.Element {
	if n.doc == nil || n.doc.active == nil {
		return nil
	}
	return n.doc.active
}

// Listen implements tablist.EventSource.
func (n *Node) Listen(target tablist.Element, l tablist.Listener) func() {
	node, ok := target.(*Node)
	if !ok || n.doc == nil {
		return func() {}
	}
	return n.doc.AddListener(node, l)
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for c := other; c != nil; c = c.parent {
		if c == n {
			return true
		}
	}
	return false
}

// walk visits n and its descendants depth first until fn returns false.
func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}
