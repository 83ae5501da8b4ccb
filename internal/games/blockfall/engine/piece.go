package engine

import "github.com/vovakirdan/blockfall/internal/core"

// Position is the board coordinate of a frame's top-left corner.
// Row grows downward from the spawn side.
type Position struct {
	Row, Col int
}

// Piece is a live instance of a shape. Only the engine mutates it, and only
// after the board has accepted the candidate placement.
type Piece struct {
	shape *Shape
	pos   Position
	frame int
}

func newPiece(shape *Shape, pos Position) *Piece {
	return &Piece{shape: shape, pos: pos}
}

// Shape returns the owning shape.
func (p *Piece) Shape() *Shape { return p.shape }

// Position returns the current top-left board position.
func (p *Piece) Position() Position { return p.pos }

// FrameIndex returns the active rotation index.
func (p *Piece) FrameIndex() int { return p.frame }

// Color returns the value stamped into the board when the piece settles.
func (p *Piece) Color() core.Color { return p.shape.color }

// CurrentFrame returns the active rotation mask.
func (p *Piece) CurrentFrame() Frame { return p.shape.frames[p.frame] }

// AdvanceFrame returns the next rotation index, wrapping to 0 at the end of
// the cycle. It does not mutate the piece.
func (p *Piece) AdvanceFrame() int {
	next := p.frame + 1
	if next >= len(p.shape.frames) {
		next = 0
	}
	return next
}

// TranslatedBy returns the candidate position shifted by (dRow, dCol).
func (p *Piece) TranslatedBy(dRow, dCol int) Position {
	return Position{Row: p.pos.Row + dRow, Col: p.pos.Col + dCol}
}

// commit applies an accepted placement.
func (p *Piece) commit(pos Position, frame int) {
	p.pos = pos
	p.frame = frame
}
