package engine

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Board is the rows x cols grid of cell states. Row 0 is the top.
type Board struct {
	rows  int
	cols  int
	cells [][]CellState
}

// NewBoard creates an all-empty board.
func NewBoard(rows, cols int) *Board {
	b := &Board{rows: rows, cols: cols}
	b.cells = make([][]CellState, rows)
	for r := range b.cells {
		b.cells[r] = make([]CellState, cols)
	}
	return b
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// CellState returns the state at (row, col).
func (b *Board) CellState(row, col int) (CellState, error) {
	if !b.inBounds(row, col) {
		return CellState{}, fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfBounds, row, col, b.rows, b.cols)
	}
	return b.cells[row][col], nil
}

// ClearEphemeral resets every ephemeral cell to empty. Locked cells are kept.
func (b *Board) ClearEphemeral() {
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c].IsEphemeral() {
				b.cells[r][c] = Empty()
			}
		}
	}
}

// StampEphemeral marks the frame's footprint at pos as ephemeral.
// Cells outside the grid are skipped and locked cells are never overwritten.
func (b *Board) StampEphemeral(f Frame, pos Position) {
	for _, o := range f.Cells() {
		r, c := pos.Row+o.Row, pos.Col+o.Col
		if !b.inBounds(r, c) || b.cells[r][c].IsLocked() {
			continue
		}
		b.cells[r][c] = Ephemeral()
	}
}

// CanPlace reports whether every occupied cell of f at pos lies inside the
// grid on a cell that is not locked. It is the only collision predicate.
func (b *Board) CanPlace(f Frame, pos Position) bool {
	for _, o := range f.Cells() {
		r, c := pos.Row+o.Row, pos.Col+o.Col
		if !b.inBounds(r, c) || b.cells[r][c].IsLocked() {
			return false
		}
	}
	return true
}

// Lock turns the ephemeral cells under the frame at pos into locked cells.
func (b *Board) Lock(f Frame, pos Position, color core.Color) {
	for _, o := range f.Cells() {
		r, c := pos.Row+o.Row, pos.Col+o.Col
		if b.inBounds(r, c) && b.cells[r][c].IsEphemeral() {
			b.cells[r][c] = Locked(color)
		}
	}
}

// rowFull reports whether every cell of the row is locked.
func (b *Board) rowFull(r int) bool {
	for _, cell := range b.cells[r] {
		if !cell.IsLocked() {
			return false
		}
	}
	return true
}

// ClearFullRows removes every fully locked row and returns how many were
// removed. Rows are checked once each, top to bottom; removing row r shifts
// rows [0, r) down by one and inserts an empty row at 0. Rows below r are
// untouched by the shift, so a single pass collapses any number of rows.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for r := 0; r < b.rows; r++ {
		if !b.rowFull(r) {
			continue
		}
		removed := b.cells[r]
		copy(b.cells[1:r+1], b.cells[:r])
		for c := range removed {
			removed[c] = Empty()
		}
		b.cells[0] = removed
		cleared++
	}
	return cleared
}

// ResetAll empties every cell.
func (b *Board) ResetAll() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = Empty()
		}
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	out := NewBoard(b.rows, b.cols)
	for r := range b.cells {
		copy(out.cells[r], b.cells[r])
	}
	return out
}

// Equal reports whether two boards hold the same cells.
func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// String dumps the grid: '.' empty, '*' ephemeral, '#' locked.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))
	for r := range b.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range b.cells[r] {
			sb.WriteRune(cell.Rune())
		}
	}
	return sb.String()
}
