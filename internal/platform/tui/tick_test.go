package tui

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{0, time.Second / 60},
		{-5, time.Second / 60},
		{30, time.Second / 30},
		{120, time.Second / 120},
		{10000, time.Second / 240},
	}
	for _, tc := range tests {
		if got := tickInterval(tc.rate); got != tc.want {
			t.Errorf("tickInterval(%d) = %v, expected %v", tc.rate, got, tc.want)
		}
	}
}
