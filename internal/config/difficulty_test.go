package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: ProgressScore, MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := dm.Level(Progress{Score: tc.score}); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(score %d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyLevelTracksConfiguredMeasure(t *testing.T) {
	p := Progress{Score: 100, Lines: 5, Ticks: 25}

	tests := []struct {
		typ      string
		maxAt    int
		expected float64
	}{
		{ProgressScore, 100, 1.0},
		{ProgressLines, 10, 0.5},
		{ProgressTime, 100, 0.25},
		{ProgressNone, 100, 0},
		{"", 100, 0},
	}
	for _, tc := range tests {
		dm := NewDifficultyManager(DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: tc.typ, MaxAt: tc.maxAt},
		})
		if got := dm.Level(p); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("%q: Level = %v, expected %v", tc.typ, got, tc.expected)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: ProgressScore, MaxAt: 10},
	})
	if dm.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := dm.Level(Progress{Score: 1000, Ticks: 1000}); got != 0.5 {
		t.Errorf("disabled Level = %v, expected initial level", got)
	}
}

func TestInitialLevelClamped(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{InitialLevel: 3})
	if got := dm.Level(Progress{}); got != 1 {
		t.Errorf("Level = %v, expected clamp to 1", got)
	}
}

func TestDropTicks(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: ProgressScore, MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 3.0},
	})

	tests := []struct {
		base, score, expected int
	}{
		{30, 0, 30},
		{30, 100, 8}, // 30 / 4 rounds to 8
		{30, 50, 12}, // 30 / 2.5
		{1, 100, 1},
	}
	for _, tc := range tests {
		if got := dm.DropTicks(tc.base, Progress{Score: tc.score}); got != tc.expected {
			t.Errorf("DropTicks(%d, score %d) = %d, expected %d", tc.base, tc.score, got, tc.expected)
		}
	}
}

func TestDropTicksTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: ProgressTime, MaxAt: 600},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})
	if got := dm.DropTicks(30, Progress{Ticks: 600}); got != 15 {
		t.Errorf("DropTicks at max time = %d, expected 15", got)
	}
}
