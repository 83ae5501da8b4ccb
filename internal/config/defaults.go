package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the built-in configuration: a 20x10 well,
// 10 points per lock and one gravity step every 500 ms.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Scoring: ScoringConfig{
			PerLock: 10,
		},
		Pieces: PiecesConfig{
			Catalog: CatalogClassic,
		},
		Timing: TimingConfig{
			DropIntervalMs: 500,
			MoveCooldownMs: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressScore,
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
			},
		},
	}
}
