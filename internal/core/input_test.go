package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionRotate)
	if !f.Has(ActionLeft) || !f.Has(ActionRotate) {
		t.Error("frame should have Left and Rotate")
	}
	if f.Has(ActionRight) {
		t.Error("frame should not have Right")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("cleared frame should be empty")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionDown) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionDown)
	if !f.Has(ActionDown) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionRotate, "Rotate"},
		{ActionRestart, "Restart"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestTicksFor(t *testing.T) {
	tests := []struct {
		rate, ms, expected int
	}{
		{60, 500, 30},
		{60, 1000, 60},
		{30, 500, 15},
		{60, 1, 1},
		{0, 500, 30},
	}
	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.TicksFor(tc.ms); got != tc.expected {
			t.Errorf("TicksFor(%d) at %d tps = %d, expected %d", tc.ms, tc.rate, got, tc.expected)
		}
	}
}
