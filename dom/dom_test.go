package dom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/tablist"
)

const fixture = `<div role="tablist" id="tabs">
  <button role="tab" id="t1" aria-controls="p1">One</button>
  <button role="tab" id="t2">Two</button>
  <div role="tabpanel" id="p2" aria-labelledby="t2"><input type="checkbox" id="c1"> Two body</div>
  <div role="tabpanel" id="p1">One   body</div>
</div>`

func TestParse_BuildsQueryableTree(t *testing.T) {
	d, err := ParseString(fixture)
	require.NoError(t, err)

	container := d.FirstByRole("tablist")
	require.NotNil(t, container)
	assert.Equal(t, "tabs", container.ID())

	tabs := container.ByRole("tab")
	require.Len(t, tabs, 2)
	assert.Equal(t, "t1", tabs[0].ID())
	assert.Equal(t, "One", tabs[0].Text())

	panel := d.GetElementByID("p1")
	require.NotNil(t, panel)
	assert.Equal(t, "One body", panel.Text())
}

func TestNextElementSibling_SkipsText(t *testing.T) {
	d := MustParse(fixture)
	t2 := d.GetElementByID("t2")

	next := t2.NextElementSibling()
	require.NotNil(t, next)
	assert.Equal(t, "p2", next.ID())

	assert.Nil(t, d.GetElementByID("p1").NextElementSibling())
}

func TestElementByID_MissingIsUntypedNil(t *testing.T) {
	d := MustParse(fixture)
	container := d.FirstByRole("tablist")

	// A typed nil inside the interface would defeat nil checks in callers.
	assert.True(t, container.ElementByID("nope") == nil)
	assert.True(t, container.ActiveElement() == nil)
}

func TestAttributes_KeepOrder(t *testing.T) {
	d := NewDocument()
	n := d.CreateElement("button", "role", "tab", "id", "x")
	n.SetAttr("tabindex", "0")
	n.SetAttr("role", "tab")
	n.RemoveAttr("id")

	assert.Equal(t, [][2]string{{"role", "tab"}, {"tabindex", "0"}}, n.Attrs())
	assert.False(t, n.HasAttr("id"))
}

func TestFocus_FiresOnlyOnChange(t *testing.T) {
	d := MustParse(fixture)
	t1 := d.GetElementByID("t1")

	count := 0
	d.AddListener(t1, func(in tablist.Input) bool {
		if in.Kind == tablist.InputFocus {
			count++
		}
		return false
	})

	t1.Focus()
	t1.Focus()
	assert.Equal(t, 1, count)
	assert.Equal(t, t1, d.Active())

	d.Blur()
	t1.Focus()
	assert.Equal(t, 2, count)
}

func TestDispatch_BubblesWithOrigin(t *testing.T) {
	d := MustParse(fixture)
	panel := d.GetElementByID("p2")
	box := d.GetElementByID("c1")

	var origins []string
	d.AddListener(panel, func(in tablist.Input) bool {
		origins = append(origins, in.Origin.ID())
		return true
	})

	prevented := d.KeyDown(box, tablist.KeyUp, true)
	assert.True(t, prevented)
	box.Focus()
	assert.Equal(t, []string{"c1", "c1"}, origins)
}

func TestAddListener_CancelIsIdempotent(t *testing.T) {
	d := MustParse(fixture)
	t1 := d.GetElementByID("t1")

	cancel := d.AddListener(t1, func(tablist.Input) bool { return true })
	assert.Equal(t, 1, d.ListenerCount())
	cancel()
	cancel()
	assert.Equal(t, 0, d.ListenerCount())
	assert.False(t, d.Click(t1))
}

func TestRender_RoundTripsAttributes(t *testing.T) {
	d := MustParse(fixture)
	d.GetElementByID("t1").SetAttr("aria-selected", "true")

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d.FirstByRole("tablist")))
	assert.Contains(t, buf.String(), `aria-selected="true"`)
	assert.Contains(t, buf.String(), `<input type="checkbox" id="c1"/>`)
}
