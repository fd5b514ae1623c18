package tablist

// EndPolicy selects what End (and NavigateLast) resolves to. Older
// releases of the widget moved to the very last header even when it was
// disabled, while Home always skipped disabled headers.
type EndPolicy int

const (
	// EndSkipsDisabled resolves to the highest enabled header.
	EndSkipsDisabled EndPolicy = iota
	// EndLastIndex resolves to the highest index regardless of state. A
	// disabled header reached this way gets host focus only.
	EndLastIndex
)

// navigator resolves focus targets. Skipping is iterative and bounded by
// the item count, so it terminates on any arrangement.
type navigator struct {
	disabled []bool
	end      EndPolicy
}

func newNavigator(items []*Item, end EndPolicy) navigator {
	disabled := make([]bool, len(items))
	for i, it := range items {
		disabled[i] = it.Disabled
	}
	return navigator{disabled: disabled, end: end}
}

// Next steps forward, wrapping past the last header.
func (n navigator) Next(from int) int {
	if !n.inRange(from) {
		return n.First()
	}
	return n.step(from, 1)
}

// Previous steps backward, wrapping before the first header.
func (n navigator) Previous(from int) int {
	if !n.inRange(from) {
		return n.lastEnabled()
	}
	return n.step(from, -1)
}

// First is the lowest enabled index.
func (n navigator) First() int {
	for i, off := range n.disabled {
		if !off {
			return i
		}
	}
	return -1
}

// Last honours the EndPolicy.
func (n navigator) Last() int {
	if n.end == EndLastIndex {
		return len(n.disabled) - 1
	}
	return n.lastEnabled()
}

func (n navigator) lastEnabled() int {
	for i := len(n.disabled) - 1; i >= 0; i-- {
		if !n.disabled[i] {
			return i
		}
	}
	return -1
}

func (n navigator) step(from, dir int) int {
	count := len(n.disabled)
	idx := from
	for range count {
		idx = (idx + dir + count) % count
		if !n.disabled[idx] {
			return idx
		}
	}
	return from
}

func (n navigator) inRange(i int) bool {
	return i >= 0 && i < len(n.disabled)
}
