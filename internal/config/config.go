// Package config loads the runtime configuration of the discern CLI: the
// location of a persisted network and of the image to classify.
package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// DefaultPath is where the CLI looks for its configuration when no
// explicit path is given.
const DefaultPath = "./config/config.json"

// Config locates the persisted network state and the test input.
type Config struct {
	// SettingsPath is the path of the serialized network.
	SettingsPath string `json:"settings_path"`
	// TestPath is the path of the image to classify.
	TestPath string `json:"test_path"`
}

// Load reads and decodes a configuration file. A missing or malformed
// file is a hard failure; there is nothing sensible to fall back to.
func Load(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config from %s", path)
	}

	cfg := &Config{}
	if err := json.Unmarshal(contents, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, nil
}
