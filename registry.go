package tablist

import "fmt"

// Item is one header/panel pair. Index is the header's position in
// document order.
type Item struct {
	Header   Element
	Panel    Element
	Index    int
	Disabled bool
}

// discover pairs every role="tab" descendant with its panel. It only reads
// the tree; nothing is written until the whole set is known to be valid.
func discover(c Container) ([]*Item, error) {
	headers := c.QueryRole(RoleTab)
	if len(headers) == 0 {
		return nil, &ConfigurationError{Element: describe(c, -1), Reason: "no [role=tab] elements found"}
	}

	items := make([]*Item, 0, len(headers))
	owners := make(map[Element]int, len(headers))
	enabled := 0
	for i, header := range headers {
		panel := resolvePanel(c, header)
		if panel == nil {
			return nil, &ConfigurationError{
				Element: describe(header, i),
				Reason:  "no associated tabpanel; link them with aria-controls on the tab",
			}
		}
		if prev, taken := owners[panel]; taken {
			return nil, &ConfigurationError{
				Element: describe(header, i),
				Reason:  fmt.Sprintf("tabpanel %s already belongs to tab %s", describe(panel, -1), describe(headers[prev], prev)),
			}
		}
		owners[panel] = i

		it := &Item{Header: header, Panel: panel, Index: i, Disabled: isDisabled(header)}
		if !it.Disabled {
			enabled++
		}
		items = append(items, it)
	}

	if enabled == 0 {
		return nil, &ConfigurationError{Element: describe(c, -1), Reason: "every tab is disabled"}
	}
	return items, nil
}

// resolvePanel prefers aria-controls and falls back to the adjacent sibling
// labelled by the header.
func resolvePanel(c Container, header Element) Element {
	if controls, ok := header.Attr(AttrControls); ok && controls != "" {
		return c.ElementByID(controls)
	}
	next := header.NextElementSibling()
	if next == nil || header.ID() == "" {
		return nil
	}
	if by, ok := next.Attr(AttrLabelledBy); ok && by == header.ID() {
		return next
	}
	return nil
}

func isDisabled(header Element) bool {
	if _, ok := header.Attr(AttrDisabled); ok {
		return true
	}
	v, _ := header.Attr(AttrAriaDisabled)
	return v == "true"
}

func describe(el Element, pos int) string {
	if id := el.ID(); id != "" {
		return "#" + id
	}
	if pos >= 0 {
		return fmt.Sprintf("tab[%d]", pos)
	}
	return "element without id"
}
