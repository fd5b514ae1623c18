package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/tablist"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.IsTelemetryEnabled())
	assert.True(t, cfg.IsMouseEnabled())
	assert.True(t, cfg.UI.AltScreen)
	require.NotNil(t, cfg.Navigation.EndSkipsDisabled)
	assert.True(t, *cfg.Navigation.EndSkipsDisabled)
	assert.Equal(t, tablist.Config{}, cfg.TablistConfig())
}

func TestLoadConfigFrom(t *testing.T) {
	t.Run("overlays file values on defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
telemetry_enabled = false

[navigation]
end_skips_disabled = false
follow_focus = true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadConfigFrom(path)
		require.NoError(t, err)

		assert.False(t, cfg.IsTelemetryEnabled())
		assert.True(t, cfg.IsMouseEnabled(), "unset keys keep defaults")
		assert.True(t, cfg.UI.AltScreen)

		tc := cfg.TablistConfig()
		assert.Equal(t, tablist.EndLastIndex, tc.End)
		assert.True(t, tc.FollowFocus)
	})

	t.Run("returns error on missing file", func(t *testing.T) {
		_, err := LoadConfigFrom("/nonexistent/config.toml")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("returns error on invalid TOML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[invalid toml\n"), 0o644))

		_, err := LoadConfigFrom(path)
		assert.Error(t, err)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[navigation]\nwrap = false\n"), 0o644))

		_, err := LoadConfigFrom(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "navigation.wrap")
	})
}

func TestSaveConfigTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	falseVal := false
	original := DefaultConfig()
	original.UI.Mouse = &falseVal
	original.Navigation.FollowFocus = true

	require.NoError(t, SaveConfigTo(original, path))

	loaded, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.False(t, loaded.IsMouseEnabled())
	assert.True(t, loaded.Navigation.FollowFocus)
}

func TestLoadConfig_CreatesDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, ConfigFileName))
	assert.NoError(t, err)
}

func TestLoadConfig_FallsBackOnBrokenFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir, err := GetConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("=broken"), 0o644))

	assert.Equal(t, DefaultConfig(), LoadConfig())
}
