package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/pixelmines.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration: the classic 12x12 board
// with 50 bombs.
func DefaultConfig() GameConfig {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		// The embedded default is part of the build; if it doesn't parse,
		// fall back to the hardcoded layout.
		return GameConfig{Grid: GridForPreset(DifficultyNormal)}
	}
	return cfg
}
