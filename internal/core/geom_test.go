package core

import "testing"

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name           string
		outerW, outerH int
		w, h           int
		want           Rect
	}{
		{"well in a terminal", 80, 24, 22, 22, NewRect(29, 1, 22, 22)},
		{"exact fit", 22, 22, 22, 22, NewRect(0, 0, 22, 22)},
		{"odd slack rounds down", 25, 23, 22, 22, NewRect(1, 0, 22, 22)},
		{"too narrow", 10, 30, 22, 22, NewRect(0, 4, 22, 22)},
		{"too small", 10, 10, 22, 22, NewRect(0, 0, 22, 22)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CenteredRect(tc.outerW, tc.outerH, tc.w, tc.h)
			if got != tc.want {
				t.Errorf("CenteredRect = %+v, want %+v", got, tc.want)
			}
			if got.Right() != got.X+tc.w || got.Bottom() != got.Y+tc.h {
				t.Errorf("edges = %d,%d", got.Right(), got.Bottom())
			}
		})
	}
}
