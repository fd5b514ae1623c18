package app

import (
	"context"
	_ "embed"
	"fmt"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	zone "github.com/lrstanley/bubblezone/v2"

	"github.com/kastheco/tablist"
	"github.com/kastheco/tablist/dom"
	"github.com/kastheco/tablist/internal/sentry"
	"github.com/kastheco/tablist/keys"
	"github.com/kastheco/tablist/log"
	"github.com/kastheco/tablist/ui"
)

// SampleHTML is the markup shown when no file is given.
//
//go:embed sample.html
var SampleHTML string

// Options configures one terminal session.
type Options struct {
	// Source names the markup in the status bar.
	Source string
	// ContainerID picks the role="tablist" element; empty means the first.
	ContainerID string
	Tablist     tablist.Config
	AltScreen   bool
	Mouse       bool
}

// Run is the main entrypoint into the application.
func Run(ctx context.Context, doc *dom.Document, opts Options) error {
	zone.NewGlobal()

	m, err := newHome(doc, opts)
	if err != nil {
		return err
	}
	defer m.list.Unmount()
	sentry.SetContext(opts.Source, m.list.Mode().String(), len(m.list.Items()))

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

type home struct {
	doc       *dom.Document
	container *dom.Node
	list      *tablist.Tablist
	opts      Options

	statusBar *ui.StatusBar
	tabs      *ui.TabbedWindow
	accordion *ui.Accordion
	help      help.Model
	showHelp  bool

	// lastEvent is the most recent open/close notification.
	lastEvent string

	termWidth  int
	termHeight int
}

func newHome(doc *dom.Document, opts Options) (*home, error) {
	container, err := findContainer(doc, opts.ContainerID)
	if err != nil {
		return nil, err
	}

	m := &home{
		doc:       doc,
		container: container,
		opts:      opts,
		statusBar: ui.NewStatusBar(),
		tabs:      ui.NewTabbedWindow(),
		accordion: ui.NewAccordion(),
		help:      help.New(),
	}

	cfg := opts.Tablist
	onOpen, onClose, onCloseAll := cfg.OnOpen, cfg.OnClose, cfg.OnCloseAll
	cfg.OnOpen = func(h tablist.Element) {
		m.notify("opened " + headerLabel(h))
		if onOpen != nil {
			onOpen(h)
		}
	}
	cfg.OnClose = func(h tablist.Element) {
		m.notify("closed " + headerLabel(h))
		if onClose != nil {
			onClose(h)
		}
	}
	cfg.OnCloseAll = func(hs []tablist.Element) {
		m.notify(fmt.Sprintf("closed all (%d)", len(hs)))
		if onCloseAll != nil {
			onCloseAll(hs)
		}
	}

	m.list = tablist.New(container, cfg)
	if err := m.list.Mount(); err != nil {
		return nil, err
	}
	return m, nil
}

func findContainer(doc *dom.Document, id string) (*dom.Node, error) {
	if id == "" {
		if c := doc.FirstByRole(tablist.RoleTablist); c != nil {
			return c, nil
		}
		return nil, &tablist.ConfigurationError{Reason: "no [role=tablist] element in markup"}
	}
	c := doc.GetElementByID(id)
	if c == nil {
		return nil, &tablist.ConfigurationError{Element: "#" + id, Reason: "no such element"}
	}
	if role, _ := c.Attr(tablist.AttrRole); role != tablist.RoleTablist {
		return nil, &tablist.ConfigurationError{Element: "#" + id, Reason: "element is not a [role=tablist]"}
	}
	return c, nil
}

func headerLabel(h tablist.Element) string {
	if n, ok := h.(*dom.Node); ok {
		if text := n.Text(); text != "" {
			return text
		}
	}
	return "#" + h.ID()
}

func (m *home) notify(event string) {
	m.lastEvent = event
	log.InfoLog.Printf("%s: %s", m.opts.Source, event)
	sentry.WidgetEvent(event)
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case tea.MouseClickMsg:
		return m.handleMouse(msg)
	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.termWidth = msg.Width
	m.termHeight = msg.Height
	m.statusBar.SetSize(msg.Width)
	m.accordion.SetSize(msg.Width)
	// Status bar and help line take one row each.
	m.tabs.SetSize(msg.Width, msg.Height-2)
}

func (m *home) View() tea.View {
	v := tea.NewView(zone.Scan(m.render()))
	v.AltScreen = m.opts.AltScreen
	if m.opts.Mouse {
		v.MouseMode = tea.MouseModeCellMotion
	}
	return v
}

func (m *home) render() string {
	if m.termWidth == 0 {
		return ""
	}

	accordion := m.list.Mode() == tablist.Accordion
	width := m.tabs.ContentWidth()
	if accordion {
		width = m.accordion.ContentWidth()
	}
	headers := m.snapshot(width)

	m.statusBar.SetData(ui.StatusBarData{
		Source: m.opts.Source,
		Mode:   m.list.Mode().String(),
		Focus:  m.describeFocus(),
		Opened: len(m.list.Opened()),
		Items:  len(headers),
		Event:  m.lastEvent,
	})

	var body string
	if accordion {
		m.accordion.SetHeaders(headers)
		body = m.accordion.String()
	} else {
		m.tabs.SetHeaders(headers)
		body = m.tabs.String()
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.statusBar.String(), body, m.helpView())
}

// snapshot reads the widget state back from the markup, the way a browser
// would render it.
func (m *home) snapshot(bodyWidth int) []ui.HeaderView {
	active := m.doc.Active()
	items := m.list.Items()
	views := make([]ui.HeaderView, len(items))
	for i, it := range items {
		header := it.Header.(*dom.Node)
		panel := it.Panel.(*dom.Node)
		tabindex, _ := header.Attr(tablist.AttrTabIndex)
		expanded, _ := header.Attr(tablist.AttrExpanded)

		views[i] = ui.HeaderView{
			Index:        it.Index,
			Label:        headerLabel(header),
			Disabled:     it.Disabled,
			Selected:     tabindex == "0",
			Focused:      active == header,
			Open:         expanded == "true",
			PanelFocused: active != nil && panel.Contains(active),
		}
		if views[i].Open {
			views[i].Body = ui.RenderPanel(panel, active, bodyWidth)
		}
	}
	return views
}

func (m *home) describeFocus() string {
	active := m.doc.Active()
	if active == nil || !m.container.Contains(active) {
		return ""
	}
	for _, it := range m.list.Items() {
		if it.Header == tablist.Element(active) {
			return "tab " + headerLabel(active)
		}
		if panel := it.Panel.(*dom.Node); panel.Contains(active) {
			return "panel " + headerLabel(it.Header)
		}
	}
	return "#" + active.ID()
}

func (m *home) helpView() string {
	if m.showHelp {
		return m.help.FullHelpView(keys.FullHelp())
	}
	return m.help.ShortHelpView(keys.ShortHelp())
}
