package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kastheco/tablist/config"
	"github.com/kastheco/tablist/log"
)

// WriteDebug prints the config path and the effective configuration.
func WriteDebug(w io.Writer, cfg *config.Config) error {
	configDir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	fmt.Fprintf(w, "Config: %s\n", filepath.Join(configDir, config.ConfigFileName))
	fmt.Fprintf(w, "Log: %s\n\n", log.LogPath())
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
