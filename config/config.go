package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kastheco/tablist"
	"github.com/kastheco/tablist/log"
)

const ConfigFileName = "config.toml"

// GetConfigDir returns the path to the application's configuration directory.
// Uses XDG-compliant ~/.config/tablist/, honouring XDG_CONFIG_HOME when set.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tablist"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "tablist"), nil
}

// Navigation tunes keyboard behaviour of every mounted widget.
type Navigation struct {
	// EndSkipsDisabled makes End land on the last enabled header. When false
	// End goes to the last header even if it is disabled. Defaults to true.
	EndSkipsDisabled *bool `toml:"end_skips_disabled,omitempty"`
	// FollowFocus opens a panel as soon as its header is focused.
	FollowFocus bool `toml:"follow_focus,omitempty"`
}

// UI tunes the terminal demo.
type UI struct {
	AltScreen bool `toml:"alt_screen"`
	// Mouse enables click hit-testing. Defaults to true.
	Mouse *bool `toml:"mouse,omitempty"`
}

// Config represents the application configuration
type Config struct {
	Navigation Navigation `toml:"navigation"`
	UI         UI         `toml:"ui"`
	// TelemetryEnabled controls whether crash reporting via Sentry is active.
	// Defaults to true when not set.
	TelemetryEnabled *bool `toml:"telemetry_enabled,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	trueVal := true
	return &Config{
		Navigation: Navigation{EndSkipsDisabled: &trueVal},
		UI:         UI{AltScreen: true, Mouse: &trueVal},
	}
}

// IsTelemetryEnabled returns whether Sentry telemetry is enabled.
// Defaults to true when the field is not set.
func (c *Config) IsTelemetryEnabled() bool {
	if c.TelemetryEnabled == nil {
		return true
	}
	return *c.TelemetryEnabled
}

// IsMouseEnabled defaults to true when the field is not set.
func (c *Config) IsMouseEnabled() bool {
	if c.UI.Mouse == nil {
		return true
	}
	return *c.UI.Mouse
}

// TablistConfig maps the navigation section onto a controller config.
func (c *Config) TablistConfig() tablist.Config {
	cfg := tablist.Config{FollowFocus: c.Navigation.FollowFocus}
	if c.Navigation.EndSkipsDisabled != nil && !*c.Navigation.EndSkipsDisabled {
		cfg.End = tablist.EndLastIndex
	}
	return cfg
}

// LoadConfig reads ~/.config/tablist/config.toml. A missing file is created
// with the defaults; any other problem is logged and the defaults returned.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	cfg, err := LoadConfigFrom(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := SaveConfigTo(defaultCfg, configPath); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}
		log.WarningLog.Printf("failed to load config file: %v", err)
		return DefaultConfig()
	}
	return cfg
}

// LoadConfigFrom decodes the file at path over the defaults. Keys the file
// omits keep their default values. Unknown keys are an error.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}
	return cfg, nil
}

// SaveConfig writes the configuration to the default location.
func SaveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	return SaveConfigTo(config, filepath.Join(configDir, ConfigFileName))
}

// SaveConfigTo writes the configuration to path, creating its directory.
func SaveConfigTo(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
