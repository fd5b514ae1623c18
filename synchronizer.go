package tablist

import "sort"

// notifier receives state transitions after the synchronizer has finished
// mutating, so callbacks that re-enter see a consistent state.
type notifier interface {
	opened(it *Item)
	closed(it *Item)
	closedAll(items []*Item)
}

// synchronizer is the only writer of aria-expanded and aria-hidden.
type synchronizer struct {
	mode   Mode
	items  []*Item
	open   []int // ascending
	notify notifier
}

func newSynchronizer(mode Mode, items []*Item, n notifier) *synchronizer {
	return &synchronizer{mode: mode, items: items, notify: n}
}

func (s *synchronizer) isOpen(i int) bool {
	idx := sort.SearchInts(s.open, i)
	return idx < len(s.open) && s.open[idx] == i
}

// openIndices returns a copy in ascending order.
func (s *synchronizer) openIndices() []int {
	out := make([]int, len(s.open))
	copy(out, s.open)
	return out
}

// Open expands item i. Outside accordion mode every other open item is
// closed first, in ascending order. Returns false when nothing changed.
func (s *synchronizer) Open(i int, notify bool) bool {
	if !s.valid(i) || s.items[i].Disabled || s.isOpen(i) {
		return false
	}

	var replaced []*Item
	if !s.mode.multiselectable() {
		for _, j := range s.openIndices() {
			s.remove(j)
			s.write(j, false)
			replaced = append(replaced, s.items[j])
		}
	}
	s.insert(i)
	s.write(i, true)

	if notify {
		// A callback may re-enter and change state; skip notifications
		// that no longer describe it.
		for _, it := range replaced {
			if !s.isOpen(it.Index) {
				s.notify.closed(it)
			}
		}
		if s.isOpen(i) {
			s.notify.opened(s.items[i])
		}
	}
	return true
}

// Close collapses item i. Refused in legacy tab-only mode.
func (s *synchronizer) Close(i int, notify bool) bool {
	if !s.mode.collapsible() || !s.valid(i) || !s.isOpen(i) {
		return false
	}
	s.remove(i)
	s.write(i, false)
	if notify {
		s.notify.closed(s.items[i])
	}
	return true
}

// Toggle flips item i through Open or Close.
func (s *synchronizer) Toggle(i int, notify bool) bool {
	if s.isOpen(i) {
		return s.Close(i, notify)
	}
	return s.Open(i, notify)
}

// CloseAll collapses every open item in ascending order. A non-silent call
// notifies once per item and then once for the whole batch.
func (s *synchronizer) CloseAll(silent bool) []*Item {
	if !s.mode.collapsible() {
		return nil
	}
	var closed []*Item
	for _, j := range s.openIndices() {
		if s.Close(j, !silent) {
			closed = append(closed, s.items[j])
		}
	}
	if !silent && len(closed) > 0 {
		s.notify.closedAll(closed)
	}
	return closed
}

// reset writes the collapsed state onto every item without notifying.
func (s *synchronizer) reset() {
	s.open = s.open[:0]
	for i := range s.items {
		s.write(i, false)
	}
}

func (s *synchronizer) write(i int, expanded bool) {
	it := s.items[i]
	it.Header.SetAttr(AttrExpanded, boolAttr(expanded))
	it.Panel.SetAttr(AttrHidden, boolAttr(!expanded))
}

func (s *synchronizer) insert(i int) {
	idx := sort.SearchInts(s.open, i)
	s.open = append(s.open, 0)
	copy(s.open[idx+1:], s.open[idx:])
	s.open[idx] = i
}

func (s *synchronizer) remove(i int) {
	idx := sort.SearchInts(s.open, i)
	if idx < len(s.open) && s.open[idx] == i {
		s.open = append(s.open[:idx], s.open[idx+1:]...)
	}
}

func (s *synchronizer) valid(i int) bool {
	return i >= 0 && i < len(s.items)
}
