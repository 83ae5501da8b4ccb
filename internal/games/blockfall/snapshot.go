package blockfall

import "github.com/vovakirdan/blockfall/internal/games/blockfall/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	State     engine.State
	Score     int
	LastScore int
	Lines     int
	Pieces    int
	Piece     engine.PieceView
	HasPiece  bool
	DropTicks int
	Paused    bool
	Board     string // rows of '.', '*' and '#'
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	stats := g.eng.Stats()
	piece, ok := g.eng.Piece()

	return Snapshot{
		Tick:      g.tick,
		State:     g.eng.State(),
		Score:     g.eng.Score(),
		LastScore: g.eng.LastScore(),
		Lines:     stats.LinesCleared,
		Pieces:    stats.PiecesLocked,
		Piece:     piece,
		HasPiece:  ok,
		DropTicks: g.DropTicks(),
		Paused:    g.paused,
		Board:     g.eng.Board().String(),
	}
}
