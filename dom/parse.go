package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse reads an HTML document or fragment into a new Document. Comments
// and doctypes are dropped.
func Parse(r io.Reader) (*Document, error) {
	parsed, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	d := NewDocument()
	for c := parsed.FirstChild; c != nil; c = c.NextSibling {
		if n := convert(d, c); n != nil {
			d.root.AppendChild(n)
		}
	}
	return d, nil
}

// ParseString is Parse over a string.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// MustParse panics on error; meant for fixtures and tests.
func MustParse(markup string) *Document {
	d, err := ParseString(markup)
	if err != nil {
		panic(err)
	}
	return d
}

func convert(d *Document, src *html.Node) *Node {
	var n *Node
	switch src.Type {
	case html.ElementNode:
		n = &Node{Type: ElementNode, Tag: src.Data, doc: d}
		for _, a := range src.Attr {
			if a.Namespace != "" {
				continue
			}
			n.SetAttr(a.Key, a.Val)
		}
	case html.TextNode:
		return &Node{Type: TextNode, Data: src.Data, doc: d}
	default:
		return nil
	}
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		if child := convert(d, c); child != nil {
			n.AppendChild(child)
		}
	}
	return n
}

// Render writes n and its descendants back out as HTML.
func Render(w io.Writer, n *Node) error {
	return html.Render(w, back(n))
}

func back(n *Node) *html.Node {
	out := &html.Node{}
	switch n.Type {
	case DocumentNode:
		out.Type = html.DocumentNode
	case TextNode:
		out.Type = html.TextNode
		out.Data = n.Data
		return out
	default:
		out.Type = html.ElementNode
		out.Data = n.Tag
		for _, a := range n.attrs {
			out.Attr = append(out.Attr, html.Attribute{Key: a.name, Val: a.value})
		}
	}
	for _, c := range n.children {
		out.AppendChild(back(c))
	}
	return out
}
