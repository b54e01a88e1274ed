package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// loadTOML reads a .filescope.toml file over the given config. Fields absent
// from the file keep their current (default) values.
func loadTOML(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse TOML config %s: %w", path, err)
	}
	return nil
}
