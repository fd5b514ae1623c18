package tablist

// fakeElement is a minimal Element for tests that do not need a tree.
type fakeElement struct {
	id      string
	attrs   map[string]string
	focused int
}

func newFake(id string, attrs ...string) *fakeElement {
	f := &fakeElement{id: id, attrs: map[string]string{}}
	for i := 0; i+1 < len(attrs); i += 2 {
		f.attrs[attrs[i]] = attrs[i+1]
	}
	return f
}

func (f *fakeElement) ID() string { return f.id }
func (f *fakeElement) SetAttr(name, value string) { f.attrs[name] = value }
func (f *fakeElement) RemoveAttr(name string) { delete(f.attrs, name) }
func (f *fakeElement) NextElementSibling() Element { return nil }
func (f *fakeElement) Focus() { f.focused++ }
func (f *fakeElement) Attr(name string) (string, bool) {
	v, ok := f.attrs[name]
	return v, ok
}

// fakeItems builds n pairs; disabled lists the disabled indices.
func fakeItems(n int, disabled ...int) []*Item {
	off := map[int]bool{}
	for _, d := range disabled {
		off[d] = true
	}
	items := make([]*Item, n)
	for i := range items {
		items[i] = &Item{
			Header:   newFake("h"),
			Panel:    newFake("p"),
			Index:    i,
			Disabled: off[i],
		}
	}
	return items
}

type recorder struct {
	events []string
	onOpen  func(it *Item)
	onClose func(it *Item)
}

func (r *recorder) opened(it *Item) {
	r.events = append(r.events, "open:"+itoa(it.Index))
	if r.onOpen != nil {
		r.onOpen(it)
	}
}

func (r *recorder) closed(it *Item) {
	r.events = append(r.events, "close:"+itoa(it.Index))
	if r.onClose != nil {
		r.onClose(it)
	}
}

func (r *recorder) closedAll(items []*Item) {
	r.events = append(r.events, "close-all:"+itoa(len(items)))
}

func itoa(i int) string {
	return string(rune('0' + i))
}
