package config

import "math"

// Progression types accepted in difficulty.progression.type.
const (
	ProgressScore = "score"
	ProgressLines = "lines"
	ProgressTime  = "time"
	ProgressNone  = "none"
)

// Progress is what a session has achieved so far.
type Progress struct {
	Score int
	Lines int // rows cleared
	Ticks int // active ticks, pauses excluded
}

// DifficultyManager turns session progress into a gravity speed-up.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager. initial_level is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// Level returns the difficulty in [0, 1]. It rises linearly from the initial
// level and reaches 1 when the tracked measure hits max_at.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var done int
	switch d.cfg.Progression.Type {
	case ProgressScore:
		done = p.Score
	case ProgressLines:
		done = p.Lines
	case ProgressTime:
		done = p.Ticks
	default:
		return d.initialLevel
	}

	maxAt := float64(max(1, d.cfg.Progression.MaxAt))
	progress := clampF(float64(done)/maxAt, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the gravity multiplier: 1 at level 0 and
// 1+speed_multiplier at level 1.
func (d *DifficultyManager) Speed(p Progress) float64 {
	return 1.0 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier
}

// DropTicks divides the base gravity period by the current speed.
// The result is never below one tick.
func (d *DifficultyManager) DropTicks(baseTicks int, p Progress) int {
	speed := d.Speed(p)
	if speed <= 0 {
		return max(1, baseTicks)
	}
	return max(1, int(math.Round(float64(baseTicks)/speed)))
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
