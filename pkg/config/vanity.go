package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"SolTools/internal/address"
)

// VanityConfig holds defaults and presets for the vanity search.
type VanityConfig struct {
	CaseSensitive    bool     `yaml:"case_sensitive"`
	MaxAttempts      uint64   `yaml:"max_attempts"` // 0 = unbounded
	Workers          int      `yaml:"workers"`      // 0 = one worker
	CheckpointEvery  int      `yaml:"checkpoint_every"`
	SampleIntervalMS int      `yaml:"sample_interval_ms"`
	Presets          []Preset `yaml:"presets"`
}

// Preset is a named prefix/suffix pair selectable from the menu.
type Preset struct {
	Name   string `yaml:"name"`
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
}

func LoadVanity(path string) (*VanityConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	var cfg VanityConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode yaml %q: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation %q: %w", path, err)
	}

	return &cfg, nil
}

func validate(c *VanityConfig) error {
	if c == nil {
		return errors.New("nil config")
	}
	if c.Workers < 0 {
		return errors.New("workers must be >= 0")
	}
	if c.CheckpointEvery < 0 {
		return errors.New("checkpoint_every must be >= 0")
	}
	if c.SampleIntervalMS < 0 {
		return errors.New("sample_interval_ms must be >= 0")
	}
	for i, p := range c.Presets {
		if p.Name == "" {
			return fmt.Errorf("presets[%d]: name must not be empty", i)
		}
		if p.Prefix == "" && p.Suffix == "" {
			return fmt.Errorf("presets[%d] %q: prefix and suffix are both empty", i, p.Name)
		}
		if bad := address.InvalidChars(p.Prefix); len(bad) > 0 {
			return fmt.Errorf("presets[%d] %q: prefix contains %q (not base58)", i, p.Name, string(bad))
		}
		if bad := address.InvalidChars(p.Suffix); len(bad) > 0 {
			return fmt.Errorf("presets[%d] %q: suffix contains %q (not base58)", i, p.Name, string(bad))
		}
	}
	return nil
}
