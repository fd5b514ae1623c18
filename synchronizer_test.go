package tablist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expandedState(t *testing.T, items []*Item) []bool {
	t.Helper()
	out := make([]bool, len(items))
	for i, it := range items {
		exp, _ := it.Header.Attr(AttrExpanded)
		hidden, _ := it.Panel.Attr(AttrHidden)
		require.NotEqual(t, exp, hidden, "item %d lost lockstep", i)
		out[i] = exp == "true"
	}
	return out
}

func TestSynchronizer_SingleSelectReplaces(t *testing.T) {
	items := fakeItems(4)
	rec := &recorder{}
	s := newSynchronizer(SingleSelect, items, rec)
	s.reset()

	assert.True(t, s.Open(0, true))
	assert.True(t, s.Open(2, true))
	assert.Equal(t, []int{2}, s.openIndices())
	assert.Equal(t, []bool{false, false, true, false}, expandedState(t, items))
	assert.Equal(t, []string{"open:0", "close:0", "open:2"}, rec.events)
}

func TestSynchronizer_OpenIsIdempotent(t *testing.T) {
	items := fakeItems(3)
	rec := &recorder{}
	s := newSynchronizer(SingleSelect, items, rec)
	s.reset()

	s.Open(1, true)
	assert.False(t, s.Open(1, true))
	assert.Equal(t, []string{"open:1"}, rec.events)
	assert.Equal(t, []int{1}, s.openIndices())
}

func TestSynchronizer_DisabledNeverOpens(t *testing.T) {
	items := fakeItems(3, 1)
	s := newSynchronizer(Accordion, items, &recorder{})
	s.reset()

	assert.False(t, s.Open(1, true))
	assert.Empty(t, s.openIndices())
}

func TestSynchronizer_AccordionKeepsIndependentPanels(t *testing.T) {
	items := fakeItems(3)
	s := newSynchronizer(Accordion, items, &recorder{})
	s.reset()

	s.Open(1, true)
	s.Open(0, true)
	assert.Equal(t, []int{0, 1}, s.openIndices())
	assert.True(t, s.Close(1, true))
	assert.Equal(t, []int{0}, s.openIndices())
}

func TestSynchronizer_LegacyRefusesClose(t *testing.T) {
	items := fakeItems(3)
	rec := &recorder{}
	s := newSynchronizer(LegacyTabOnly, items, rec)
	s.reset()

	s.Open(0, false)
	assert.False(t, s.Close(0, true))
	assert.False(t, s.Toggle(0, true))
	assert.Nil(t, s.CloseAll(false))
	assert.Equal(t, []int{0}, s.openIndices())

	// Replacement is still allowed.
	assert.True(t, s.Open(2, true))
	assert.Equal(t, []int{2}, s.openIndices())
	assert.Equal(t, []string{"close:0", "open:2"}, rec.events)
}

func TestSynchronizer_CloseAll(t *testing.T) {
	t.Run("silent", func(t *testing.T) {
		items := fakeItems(3)
		rec := &recorder{}
		s := newSynchronizer(Accordion, items, rec)
		s.reset()
		s.Open(0, false)
		s.Open(2, false)

		closed := s.CloseAll(true)
		assert.Len(t, closed, 2)
		assert.Empty(t, s.openIndices())
		assert.Empty(t, rec.events)
		assert.Equal(t, []bool{false, false, false}, expandedState(t, items))
	})

	t.Run("notifying", func(t *testing.T) {
		items := fakeItems(3)
		rec := &recorder{}
		s := newSynchronizer(Accordion, items, rec)
		s.reset()
		s.Open(2, false)
		s.Open(0, false)

		s.CloseAll(false)
		assert.Equal(t, []string{"close:0", "close:2", "close-all:2"}, rec.events)
	})

	t.Run("nothing open", func(t *testing.T) {
		rec := &recorder{}
		s := newSynchronizer(SingleSelect, fakeItems(2), rec)
		s.reset()
		assert.Empty(t, s.CloseAll(false))
		assert.Empty(t, rec.events)
	})
}

func TestSynchronizer_ReentrantCallbackStaysConsistent(t *testing.T) {
	items := fakeItems(3)
	rec := &recorder{}
	s := newSynchronizer(SingleSelect, items, rec)
	s.reset()

	// Opening 1 immediately redirects to 2 from inside the callback.
	rec.onOpen = func(it *Item) {
		if it.Index == 1 {
			s.Open(2, true)
		}
	}
	s.Open(1, true)

	assert.Equal(t, []int{2}, s.openIndices())
	assert.Equal(t, []bool{false, false, true}, expandedState(t, items))
	assert.Equal(t, []string{"open:1", "close:1", "open:2"}, rec.events)
}

func TestSynchronizer_ReentrantCloseSkipsStaleOpen(t *testing.T) {
	items := fakeItems(3)
	rec := &recorder{}
	s := newSynchronizer(SingleSelect, items, rec)
	s.reset()
	s.Open(0, false)

	// Closing 0 on the way to 1 redirects to 2, so 1 is never reported open.
	rec.onClose = func(it *Item) {
		if it.Index == 0 {
			s.Open(2, true)
		}
	}
	assert.True(t, s.Open(1, true))

	assert.Equal(t, []int{2}, s.openIndices())
	assert.Equal(t, []bool{false, false, true}, expandedState(t, items))
	assert.Equal(t, []string{"close:0", "close:1", "open:2"}, rec.events)
}
