package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c      Color
		name   string
		ansi   string
		bright bool
	}{
		{ColorDefault, "default", "", false},
		{ColorRed, "red", "1", false},
		{ColorBrightCyan, "bright-cyan", "14", true},
		{ColorOrange, "orange", "208", false},
		{ColorGray, "gray", "245", false},
		{Color(200), "unknown", "", false},
	}

	for _, tc := range tests {
		if got := tc.c.String(); got != tc.name {
			t.Errorf("Color(%d).String() = %q, expected %q", tc.c, got, tc.name)
		}
		if got := tc.c.ANSI(); got != tc.ansi {
			t.Errorf("%s.ANSI() = %q, expected %q", tc.name, got, tc.ansi)
		}
		if got := tc.c.IsBright(); got != tc.bright {
			t.Errorf("%s.IsBright() = %v", tc.name, got)
		}
	}
}

func TestColorsCoversPalette(t *testing.T) {
	colors := Colors()
	if colors[0] != ColorDefault || colors[len(colors)-1] != ColorGray {
		t.Errorf("Colors() = %v", colors)
	}
	for _, c := range colors[1:] {
		if c.ANSI() == "" {
			t.Errorf("%s has no ANSI code", c)
		}
	}
}
