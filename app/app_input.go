package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	zone "github.com/lrstanley/bubblezone/v2"

	"github.com/kastheco/tablist"
	"github.com/kastheco/tablist/dom"
	"github.com/kastheco/tablist/keys"
	"github.com/kastheco/tablist/log"
	"github.com/kastheco/tablist/ui"
)

func (m *home) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m, tea.Quit
	case keys.KeyHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case keys.KeyTab:
		m.cycleFocus()
		return m, nil
	case keys.KeyCloseAll:
		m.list.CloseAll(false)
		return m, nil
	case keys.KeyYank:
		m.yankPanel()
		return m, nil
	case keys.KeySpace:
		if m.toggleControl() {
			return m, nil
		}
	}

	if in, ok := keys.ToInput(name); ok {
		m.doc.Dispatch(m.focusTarget(), in)
	}
	return m, nil
}

// writeClipboard is swapped out by tests.
var writeClipboard = clipboard.WriteAll

// yankPanel copies the text of the panel holding focus, or else the first
// open panel.
func (m *home) yankPanel() {
	items := m.list.Items()
	target := -1
	if active := m.doc.Active(); active != nil {
		for _, it := range items {
			if it.Panel.(*dom.Node).Contains(active) {
				target = it.Index
				break
			}
		}
	}
	if target < 0 {
		open := m.list.Opened()
		if len(open) == 0 {
			m.lastEvent = "nothing to copy"
			return
		}
		target = open[0]
	}

	it := items[target]
	if err := writeClipboard(it.Panel.(*dom.Node).Text()); err != nil {
		log.WarningLog.Printf("clipboard: %v", err)
		m.lastEvent = "clipboard unavailable"
		return
	}
	m.lastEvent = "copied " + headerLabel(it.Header)
}

func (m *home) handleMouse(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Mouse().Button != tea.MouseLeft {
		return m, nil
	}
	for _, it := range m.list.Items() {
		if zone.Get(ui.HeaderZoneID(it.Index)).InBounds(msg) {
			m.clickHeader(it.Index)
			return m, nil
		}
		if zone.Get(ui.PanelZoneID(it.Index)).InBounds(msg) {
			m.focusPanel(it.Panel.(*dom.Node))
			return m, nil
		}
	}
	return m, nil
}

// clickHeader delivers a click the way a pointer would.
func (m *home) clickHeader(i int) {
	items := m.list.Items()
	if i < 0 || i >= len(items) {
		return
	}
	m.doc.Click(items[i].Header.(*dom.Node))
}

// focusTarget returns the focused node inside the widget. When focus is
// elsewhere the header holding tabindex="0" receives it first, as tabbing
// into the widget would.
func (m *home) focusTarget() *dom.Node {
	if active := m.doc.Active(); active != nil && m.container.Contains(active) {
		return active
	}
	header := m.rovingHeader()
	header.Focus()
	return header
}

func (m *home) rovingHeader() *dom.Node {
	items := m.list.Items()
	for _, it := range items {
		if v, _ := it.Header.Attr(tablist.AttrTabIndex); v == "0" {
			return it.Header.(*dom.Node)
		}
	}
	return items[0].Header.(*dom.Node)
}

// cycleFocus moves host focus from a header into its open panel, or back
// from anywhere else to the roving header.
func (m *home) cycleFocus() {
	if active := m.doc.Active(); active != nil {
		items := m.list.Items()
		for _, it := range items {
			if it.Header != tablist.Element(active) {
				continue
			}
			target := it.Index
			if !m.list.Expanded(target) {
				open := m.list.Opened()
				if len(open) == 0 {
					return
				}
				target = open[0]
			}
			m.focusPanel(items[target].Panel.(*dom.Node))
			return
		}
	}
	m.rovingHeader().Focus()
}

// focusPanel focuses the first form control in the panel, or the panel.
func (m *home) focusPanel(panel *dom.Node) {
	if inputs := panel.ByTag("input"); len(inputs) > 0 {
		inputs[0].Focus()
		return
	}
	panel.Focus()
}

// toggleControl flips the focused check box or selects the focused radio
// button. It reports false when focus is not on such a control.
func (m *home) toggleControl() bool {
	active := m.doc.Active()
	if active == nil || active.Tag != "input" || !m.container.Contains(active) {
		return false
	}
	switch typ, _ := active.Attr("type"); typ {
	case "checkbox":
		if active.HasAttr("checked") {
			active.RemoveAttr("checked")
		} else {
			active.SetAttr("checked", "")
		}
	case "radio":
		name, _ := active.Attr("name")
		for _, other := range m.container.ByTag("input") {
			if n, _ := other.Attr("name"); name != "" && n == name && other != active {
				other.RemoveAttr("checked")
			}
		}
		active.SetAttr("checked", "")
	default:
		return false
	}
	return true
}
