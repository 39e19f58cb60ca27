// Package config provides YAML-based game configuration loading and
// difficulty presets for the minesweeper.
package config

import (
	"fmt"
)

// GameConfig contains all configuration for a game session.
type GameConfig struct {
	Grid GridConfig `yaml:"grid"`
}

// GridConfig defines the board shape and bomb density.
type GridConfig struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Bombs int `yaml:"bombs"`
}

// Validate rejects configurations the board cannot be built from. Mirrors
// the board's own check so a bad config fails before any device is touched.
func (c GameConfig) Validate() error {
	g := c.Grid
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("config: invalid grid %dx%d", g.Rows, g.Cols)
	}
	if g.Bombs <= 0 {
		return fmt.Errorf("config: bomb count must be positive, got %d", g.Bombs)
	}
	if g.Bombs >= g.Rows*g.Cols {
		return fmt.Errorf("config: %d bombs cannot fit on %d cells", g.Bombs, g.Rows*g.Cols)
	}
	return nil
}

// DifficultyPreset represents a named board setup.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// GridForPreset returns the board shape for a difficulty preset. Unknown
// presets fall back to normal, the 12x12/50 layout the game shipped with.
func GridForPreset(preset DifficultyPreset) GridConfig {
	switch preset {
	case DifficultyEasy:
		return GridConfig{Rows: 9, Cols: 9, Bombs: 10}
	case DifficultyHard:
		return GridConfig{Rows: 16, Cols: 16, Bombs: 99}
	default:
		return GridConfig{Rows: 12, Cols: 12, Bombs: 50}
	}
}

// ApplyPreset overrides the grid section with a preset layout. An empty
// preset leaves the config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Grid = GridForPreset(preset)
}
