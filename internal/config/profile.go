package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a reusable inspection preset loaded from its own YAML file.
// A profile overrides the capture filter and inspector options of the
// main configuration, so a single config can be pointed at different
// traffic shapes without editing it.
type Profile struct {
	Name    string         `yaml:"name"`
	Filter  string         `yaml:"filter,omitempty"`
	Inspect map[string]any `yaml:"inspect,omitempty"`
}

// LoadProfile reads a profile file.
func LoadProfile(path string) (*Profile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("profile file does not exist: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile file %s: %w", path, err)
	}
	return &p, nil
}

// ApplyProfile overlays non-empty profile fields onto the configuration.
func (c *Config) ApplyProfile(p *Profile) {
	if p.Filter != "" {
		c.Input.Filter = p.Filter
	}
	if len(p.Inspect) > 0 {
		c.Inspect = p.Inspect
	}
}
