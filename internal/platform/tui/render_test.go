package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetCell(2, 0, '[', core.ColorCyan)
	s.SetCell(3, 0, ']', core.ColorCyan)
	s.DrawTextColor(0, 1, "xyz", core.ColorOrange)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "ab[]  " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "xyz   " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color should render plain, got %q", got)
	}
}
