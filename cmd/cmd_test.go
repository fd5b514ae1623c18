package cmd

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/tablist"
	"github.com/kastheco/tablist/config"
	"github.com/kastheco/tablist/dom"
)

func lineWith(t *testing.T, out, needle string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}
	t.Fatalf("no line containing %q in:\n%s", needle, out)
	return ""
}

func TestLoadDocument(t *testing.T) {
	t.Run("sample when no path", func(t *testing.T) {
		doc, source, err := LoadDocument("")
		require.NoError(t, err)
		assert.Equal(t, "sample", source)
		assert.NotNil(t, doc.GetElementByID("settings"))
	})

	t.Run("file on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte(`<div role="tablist" id="x"></div>`), 0o644))

		doc, source, err := LoadDocument(path)
		require.NoError(t, err)
		assert.Equal(t, "page.html", source)
		assert.NotNil(t, doc.GetElementByID("x"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := LoadDocument(filepath.Join(t.TempDir(), "nope.html"))
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestCheck_Sample(t *testing.T) {
	doc, _, err := LoadDocument("")
	require.NoError(t, err)

	out, err := executeCheck(doc, tablist.Config{})
	require.NoError(t, err)
	out = ansi.Strip(out)

	assert.Contains(t, out, "#settings: single-select, 4 items")
	assert.Contains(t, out, "#faq: accordion, 3 items")

	assert.Contains(t, lineWith(t, out, "#tab-billing"), "disabled")
	assert.Contains(t, lineWith(t, out, "#tab-general"), "open")
	assert.NotContains(t, lineWith(t, out, "#tab-network"), "open")
	assert.Contains(t, lineWith(t, out, "#faq-many"), "open")

	// Mounting for the report leaves no listeners behind.
	assert.Zero(t, doc.ListenerCount())
}

func TestCheck_ReportsBrokenContainers(t *testing.T) {
	doc := dom.MustParse(`
<div role="tablist" id="good">
  <button role="tab" aria-controls="p1">One</button>
  <div role="tabpanel" id="p1">first</div>
</div>
<div role="tablist" id="broken">
  <button role="tab" id="lonely" aria-controls="nowhere">Lonely</button>
</div>`)

	out, err := executeCheck(doc, tablist.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, tablist.ErrConfiguration)

	out = ansi.Strip(out)
	assert.Contains(t, out, "#good: legacy-tab-only, 1 items")
	assert.Contains(t, out, "#broken: ")
	assert.Contains(t, out, "no associated tabpanel")
}

func TestCheck_NoContainers(t *testing.T) {
	_, err := executeCheck(dom.MustParse(`<p>plain</p>`), tablist.Config{})
	assert.ErrorIs(t, err, tablist.ErrConfiguration)
}

func TestCheckCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(`
<div role="tablist" aria-multiselectable="true">
  <button role="tab" id="a">A</button>
  <div role="tabpanel" aria-labelledby="a">alpha</div>
</div>`), 0o644))

	c := NewCheckCmd()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetArgs([]string{path})
	require.NoError(t, c.Execute())

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "tablist[0]: accordion, 1 items")
	assert.Contains(t, out, "#a")
}

func TestWriteDebug(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var buf bytes.Buffer
	require.NoError(t, WriteDebug(&buf, config.DefaultConfig()))

	out := buf.String()
	assert.Contains(t, out, filepath.Join("tablist", config.ConfigFileName))
	assert.Contains(t, out, "[navigation]")
	assert.Contains(t, out, "end_skips_disabled = true")
}

func TestSetupAnswers_RoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	a := answersFrom(cfg)
	assert.Equal(t, setupAnswers{
		EndSkipsDisabled: true,
		AltScreen:        true,
		Mouse:            true,
		Telemetry:        true,
	}, a)

	a.EndSkipsDisabled = false
	a.FollowFocus = true
	a.Mouse = false
	a.Telemetry = false
	a.apply(cfg)

	assert.Equal(t, tablist.EndLastIndex, cfg.TablistConfig().End)
	assert.True(t, cfg.TablistConfig().FollowFocus)
	assert.False(t, cfg.IsMouseEnabled())
	assert.False(t, cfg.IsTelemetryEnabled())
	assert.Equal(t, a, answersFrom(cfg))
}

func TestSetupAnswers_SavedConfigLoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	cfg := config.DefaultConfig()
	setupAnswers{FollowFocus: true, Mouse: true}.apply(cfg)
	require.NoError(t, config.SaveConfigTo(cfg, path))

	loaded, err := config.LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, setupAnswers{FollowFocus: true, Mouse: true}, answersFrom(loaded))
}
