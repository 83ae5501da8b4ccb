package engine

import (
	"fmt"
	"strings"
)

// Offset is a cell position relative to a frame's top-left corner.
type Offset struct {
	Row, Col int
}

// Frame is an immutable occupancy mask: one rotation of a shape.
type Frame struct {
	width  int
	height int
	cells  []Offset // occupied cells, row-major
}

// ParseFrame builds a frame from row strings where '1' marks an occupied
// cell and '0' (or '.') an empty one. Rows may be ragged; the frame is as
// wide as its longest row.
func ParseFrame(rows ...string) (Frame, error) {
	if len(rows) == 0 {
		return Frame{}, fmt.Errorf("%w: frame has no rows", ErrInvalidConfig)
	}

	f := Frame{height: len(rows)}
	for r, row := range rows {
		if len(row) > f.width {
			f.width = len(row)
		}
		for c, ch := range row {
			switch ch {
			case '1':
				f.cells = append(f.cells, Offset{Row: r, Col: c})
			case '0', '.':
			default:
				return Frame{}, fmt.Errorf("%w: frame row %q has invalid cell %q", ErrInvalidConfig, row, ch)
			}
		}
	}

	if len(f.cells) == 0 {
		return Frame{}, fmt.Errorf("%w: frame %q has no occupied cells", ErrInvalidConfig, strings.Join(rows, "/"))
	}
	return f, nil
}

// MustParseFrame is ParseFrame for static tables. Panics on malformed input.
func MustParseFrame(rows ...string) Frame {
	f, err := ParseFrame(rows...)
	if err != nil {
		panic(err)
	}
	return f
}

// Width returns the mask width in cells.
func (f Frame) Width() int { return f.width }

// Height returns the mask height in cells.
func (f Frame) Height() int { return f.height }

// Cells returns the occupied offsets. The returned slice must not be modified.
func (f Frame) Cells() []Offset { return f.cells }

// Occupied reports whether the mask cell at (row, col) is set.
func (f Frame) Occupied(row, col int) bool {
	for _, o := range f.cells {
		if o.Row == row && o.Col == col {
			return true
		}
	}
	return false
}

// String renders the mask as '/'-separated rows of '1' and '0'.
func (f Frame) String() string {
	rows := make([]string, f.height)
	for r := range f.height {
		var sb strings.Builder
		for c := range f.width {
			if f.Occupied(r, c) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		rows[r] = sb.String()
	}
	return strings.Join(rows, "/")
}
