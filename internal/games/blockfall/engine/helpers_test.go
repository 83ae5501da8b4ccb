package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

// boardFromRows builds a board from '.', '*' and '#' rows.
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	require.NotEmpty(t, rows)

	b := NewBoard(len(rows), len(rows[0]))
	for r, row := range rows {
		require.Len(t, row, b.cols, "row %d", r)
		for c, ch := range row {
			switch ch {
			case '*':
				b.cells[r][c] = Ephemeral()
			case '#':
				b.cells[r][c] = Locked(core.ColorGray)
			}
		}
	}
	return b
}

func rowsOf(b *Board) string {
	return b.String()
}

func joinRows(rows ...string) string {
	return strings.Join(rows, "\n")
}

// lockAt pre-fills locked cells on an engine that has not started yet.
func lockAt(e *Engine, cells ...Position) {
	for _, p := range cells {
		e.board.cells[p.Row][p.Col] = Locked(core.ColorGray)
	}
}

func newTestEngine(t *testing.T, rows, cols int, opts ...Option) *Engine {
	t.Helper()
	cfg := Config{Rows: rows, Cols: cols, ScorePerLock: DefaultScorePerLock, Seed: 1}
	e, err := New(cfg, opts...)
	require.NoError(t, err)
	return e
}

// dropUntilSettled applies Down until the piece stops moving.
func dropUntilSettled(t *testing.T, e *Engine) Result {
	t.Helper()
	for range e.Rows() + 1 {
		res := e.ApplyMotion(MotionDown)
		if res.Outcome != OutcomeMoved {
			return res
		}
	}
	t.Fatal("piece never settled")
	return Result{}
}

func countKind(b *Board, k CellKind) int {
	n := 0
	for r := range b.cells {
		for _, cell := range b.cells[r] {
			if cell.Kind() == k {
				n++
			}
		}
	}
	return n
}
