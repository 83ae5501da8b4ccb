// Package config provides YAML-based game configuration loading and
// difficulty management for blockfall.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid")

// Piece catalog names accepted in pieces.catalog.
const (
	CatalogClassic = "classic"
	CatalogBar     = "bar"
)

// BlockfallConfig contains all configuration for a blockfall session.
type BlockfallConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Pieces     PiecesConfig     `yaml:"pieces"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig sizes the well.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// ScoringConfig defines how locks are rewarded.
type ScoringConfig struct {
	PerLock int `yaml:"per_lock"`
}

// PiecesConfig selects the shape catalog.
type PiecesConfig struct {
	Catalog string `yaml:"catalog"` // "classic" or "bar"
}

// TimingConfig defines gravity and input pacing.
type TimingConfig struct {
	DropIntervalMs int `yaml:"drop_interval_ms"`
	MoveCooldownMs int `yaml:"move_cooldown_ms"` // 0 disables input throttling
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "lines", "time" or "none"
	MaxAt int    `yaml:"max_at"` // score, lines or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to drop speed at max difficulty
}

// Validate reports the first unusable setting.
func (c BlockfallConfig) Validate() error {
	switch {
	case c.Board.Rows <= 0 || c.Board.Cols <= 0:
		return fmt.Errorf("%w: board must be positive, got %dx%d", ErrInvalid, c.Board.Rows, c.Board.Cols)
	case c.Scoring.PerLock < 0:
		return fmt.Errorf("%w: scoring.per_lock must not be negative, got %d", ErrInvalid, c.Scoring.PerLock)
	case c.Timing.DropIntervalMs <= 0:
		return fmt.Errorf("%w: timing.drop_interval_ms must be positive, got %d", ErrInvalid, c.Timing.DropIntervalMs)
	case c.Timing.MoveCooldownMs < 0:
		return fmt.Errorf("%w: timing.move_cooldown_ms must not be negative, got %d", ErrInvalid, c.Timing.MoveCooldownMs)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return fmt.Errorf("%w: difficulty.initial_level must be within [0, 1], got %g", ErrInvalid, c.Difficulty.InitialLevel)
	}
	switch c.Pieces.Catalog {
	case "", CatalogClassic, CatalogBar:
	default:
		return fmt.Errorf("%w: unknown pieces.catalog %q", ErrInvalid, c.Pieces.Catalog)
	}
	switch c.Difficulty.Progression.Type {
	case "", ProgressScore, ProgressLines, ProgressTime, ProgressNone:
	default:
		return fmt.Errorf("%w: unknown difficulty.progression.type %q", ErrInvalid, c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (easy, normal, hard, fixed)", ErrInvalid, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
