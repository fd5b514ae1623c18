package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/kastheco/tablist/dom"
)

// block elements start a new line when rendered.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "br": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "section": true, "fieldset": true,
}

// RenderPanel flattens a panel's markup into wrapped terminal text. Check
// boxes and radio buttons render as [x] and (•); the one holding focus is
// highlighted.
func RenderPanel(panel *dom.Node, focus *dom.Node, width int) string {
	var lines []string
	var cur strings.Builder
	flush := func() {
		if text := strings.Join(strings.Fields(cur.String()), " "); text != "" {
			lines = append(lines, wrap(text, width)...)
		}
		cur.Reset()
	}

	var walk func(n *dom.Node)
	walk = func(n *dom.Node) {
		switch n.Type {
		case dom.TextNode:
			cur.WriteString(n.Data)
			return
		case dom.ElementNode:
			if n.Tag == "input" {
				cur.WriteString(" " + renderControl(n, n == focus) + " ")
				return
			}
			if blockTags[n.Tag] {
				flush()
			}
		}
		for _, c := range n.Children() {
			walk(c)
		}
		if n.Type == dom.ElementNode && blockTags[n.Tag] {
			flush()
		}
	}
	for _, c := range panel.Children() {
		walk(c)
	}
	flush()

	return panelTextStyle.Render(strings.Join(lines, "\n"))
}

func renderControl(n *dom.Node, focused bool) string {
	typ, _ := n.Attr("type")
	checked := n.HasAttr("checked")
	var glyph string
	switch {
	case typ == "radio" && checked:
		glyph = "(•)"
	case typ == "radio":
		glyph = "( )"
	case checked:
		glyph = "[x]"
	default:
		glyph = "[ ]"
	}
	if focused {
		return focusedHeaderStyle.Render(glyph)
	}
	return glyph
}

// wrap breaks text on spaces so no line exceeds width cells. Words wider
// than width are truncated.
func wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width <= 0 {
		return []string{text}
	}
	lines := strings.Split(wordwrap.String(text, width), "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		if ansi.StringWidth(line) > width {
			line = ansi.Truncate(line, width, "…")
		}
		lines[i] = line
	}
	return lines
}
