package engine

import "github.com/vovakirdan/blockfall/internal/core"

// CellKind tags the contents of a board cell.
type CellKind uint8

const (
	CellEmpty     CellKind = iota
	CellEphemeral          // covered by the falling, not yet locked piece
	CellLocked             // permanently occupied by a settled piece
)

// String returns a human-readable name for the kind.
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "Empty"
	case CellEphemeral:
		return "Ephemeral"
	case CellLocked:
		return "Locked"
	default:
		return "Unknown"
	}
}

// CellState is the content of one grid position.
// The zero value is an empty cell.
type CellState struct {
	kind  CellKind
	color core.Color
}

// Empty returns an empty cell state.
func Empty() CellState { return CellState{} }

// Ephemeral returns a cell covered by the active piece.
func Ephemeral() CellState { return CellState{kind: CellEphemeral} }

// Locked returns a permanently occupied cell carrying the settling piece's color.
func Locked(c core.Color) CellState { return CellState{kind: CellLocked, color: c} }

// Kind returns the cell tag.
func (c CellState) Kind() CellKind { return c.kind }

func (c CellState) IsEmpty() bool     { return c.kind == CellEmpty }
func (c CellState) IsEphemeral() bool { return c.kind == CellEphemeral }
func (c CellState) IsLocked() bool    { return c.kind == CellLocked }

// Color returns the locked color. Only meaningful for Locked cells;
// ephemeral cells take the current piece's color at render time.
func (c CellState) Color() core.Color { return c.color }

// Rune returns the single-character form used by Board.String.
func (c CellState) Rune() rune {
	switch c.kind {
	case CellEphemeral:
		return '*'
	case CellLocked:
		return '#'
	default:
		return '.'
	}
}
