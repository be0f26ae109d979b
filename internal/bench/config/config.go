// Package config loads the chunkbench driver's YAML configuration, the same
// way internal/sim/tuning loads simulation tuning: a flat struct decoded
// with gopkg.in/yaml.v3, wrapped errors on failure.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls a chunkbench run.
type Config struct {
	Seed         int64  `yaml:"seed"`
	Iterations   int    `yaml:"iterations"`
	FillID       int    `yaml:"fill_id"`
	SnapshotPath string `yaml:"snapshot_path"`
	Live         Live   `yaml:"live"`
}

// Live configures the optional websocket live-view server.
type Live struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// Default returns the configuration chunkbench falls back to when no
// -config flag is given.
func Default() Config {
	return Config{
		Seed:       1,
		Iterations: 1000,
		FillID:     1,
		Live: Live{
			Enabled: false,
			Listen:  "127.0.0.1:8091",
		},
	}
}

// Load reads and decodes a YAML config file, starting from Default() so
// unset fields keep their default value.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("chunkbench config %s: %w", path, err)
	}
	return c, nil
}
