// Package engine is the falling-block simulation: shape catalog, pieces,
// board and the game state machine. It is pure and synchronous; it performs
// no I/O and never blocks. Rendering, input, gravity timing and score
// persistence belong to the caller.
package engine

import (
	"fmt"
	"sync"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Default board geometry and scoring.
const (
	DefaultRows         = 20
	DefaultCols         = 10
	DefaultScorePerLock = 10
)

// State is the game state machine position.
type State int

const (
	StateAwaitingStart State = iota
	StateActive
	StateInactive // reserved, never entered by the current rules
	StateOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateAwaitingStart:
		return "AwaitingStart"
	case StateActive:
		return "Active"
	case StateInactive:
		return "Inactive"
	case StateOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Motion is a discrete move request.
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionDown
	MotionRotate
)

// String returns a human-readable name for the motion.
func (m Motion) String() string {
	switch m {
	case MotionLeft:
		return "Left"
	case MotionRight:
		return "Right"
	case MotionDown:
		return "Down"
	case MotionRotate:
		return "Rotate"
	default:
		return "Unknown"
	}
}

// Outcome describes what a motion did.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // engine not active, nothing changed
	OutcomeMoved                   // piece moved or rotated
	OutcomeRejected                // lateral move or rotation disallowed
	OutcomeLocked                  // piece settled, next piece spawned
	OutcomeGameOver                // piece settled, next piece had no room
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeMoved:
		return "Moved"
	case OutcomeRejected:
		return "Rejected"
	case OutcomeLocked:
		return "Locked"
	case OutcomeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Result is returned by ApplyMotion.
type Result struct {
	Outcome      Outcome
	LinesCleared int
	Score        int // score after the motion
}

// Config sizes the board and scoring.
type Config struct {
	Rows         int
	Cols         int
	ScorePerLock int
	Seed         int64 // seeds the default piece picker
}

// DefaultConfig returns the standard 20x10 board.
func DefaultConfig() Config {
	return Config{
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		ScorePerLock: DefaultScorePerLock,
	}
}

// Option customizes an Engine.
type Option func(*Engine)

// WithCatalog replaces the classic tetromino catalog.
func WithCatalog(c *Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// WithHighScores sets the score-persistence collaborator.
func WithHighScores(k HighScoreKeeper) Option {
	return func(e *Engine) { e.highScores = k }
}

// WithPicker replaces the seeded random piece picker.
func WithPicker(p Picker) Option {
	return func(e *Engine) { e.picker = p }
}

// Stats summarizes the current (or last finished) session.
type Stats struct {
	PiecesLocked int
	LinesCleared int
	ByShape      map[ShapeID]int // pieces locked per shape
}

// PieceView is a read-only copy of the active piece.
type PieceView struct {
	ShapeID    ShapeID
	ShapeName  string
	Position   Position
	FrameIndex int
	Color      core.Color
}

// Engine owns one session's board, active piece and score. All methods are
// safe for concurrent use; each call runs as one indivisible step.
type Engine struct {
	mu sync.Mutex

	cfg        Config
	catalog    *Catalog
	picker     Picker
	highScores HighScoreKeeper

	board *Board
	piece *Piece // nil when no piece is in play
	state State

	score      int
	lastScore  int
	locked     int
	lines      int
	lockCounts *intmap.Map[ShapeID, int]
}

// New creates an engine in the AwaitingStart state.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, cfg.Rows, cfg.Cols)
	}
	if cfg.ScorePerLock < 0 {
		return nil, fmt.Errorf("%w: score per lock %d", ErrInvalidConfig, cfg.ScorePerLock)
	}

	e := &Engine{
		cfg:        cfg,
		catalog:    ClassicCatalog(),
		highScores: NopHighScores{},
		state:      StateAwaitingStart,
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.catalog.Validate(cfg.Rows, cfg.Cols); err != nil {
		return nil, err
	}
	if e.picker == nil {
		e.picker = NewRandomPicker(cfg.Seed, e.catalog.Len())
	}
	if e.highScores == nil {
		e.highScores = NopHighScores{}
	}

	e.board = NewBoard(cfg.Rows, cfg.Cols)
	e.lockCounts = intmap.New[ShapeID, int](e.catalog.Len())
	return e, nil
}

// Start begins play from AwaitingStart or Over. Starting from Over first
// clears the previous session. It is a no-op while Active.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case StateActive:
		return
	case StateOver, StateInactive:
		e.resetSession()
	}
	e.state = StateActive
	e.spawn()
}

// Restart clears score and board and spawns a fresh piece, from any state.
func (e *Engine) Restart() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resetSession()
	e.state = StateActive
	e.spawn()
}

// ApplyMotion resolves one motion request. Outside the Active state it is a
// no-op reported as OutcomeIgnored.
func (e *Engine) ApplyMotion(m Motion) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateActive || e.piece == nil {
		return Result{Outcome: OutcomeIgnored, Score: e.score}
	}

	// The board never holds the piece's old footprint while testing the new one.
	e.board.ClearEphemeral()

	pos, frame := e.piece.pos, e.piece.frame
	switch m {
	case MotionLeft:
		pos = e.piece.TranslatedBy(0, -1)
	case MotionRight:
		pos = e.piece.TranslatedBy(0, 1)
	case MotionDown:
		pos = e.piece.TranslatedBy(1, 0)
	case MotionRotate:
		frame = e.piece.AdvanceFrame()
	default:
		e.board.StampEphemeral(e.piece.CurrentFrame(), e.piece.pos)
		return Result{Outcome: OutcomeIgnored, Score: e.score}
	}

	candidate := e.catalog.MustFrame(e.piece.shape.id, frame)
	if e.board.CanPlace(candidate, pos) {
		e.piece.commit(pos, frame)
		e.board.StampEphemeral(candidate, pos)
		return Result{Outcome: OutcomeMoved, Score: e.score}
	}

	e.board.StampEphemeral(e.piece.CurrentFrame(), e.piece.pos)
	if m != MotionDown {
		return Result{Outcome: OutcomeRejected, Score: e.score}
	}
	return e.settle()
}

// settle locks the active piece, scores, clears rows and spawns the next piece.
func (e *Engine) settle() Result {
	p := e.piece
	e.board.Lock(p.CurrentFrame(), p.pos, p.Color())

	e.locked++
	n, _ := e.lockCounts.Get(p.shape.id)
	e.lockCounts.Put(p.shape.id, n+1)

	e.score += e.cfg.ScorePerLock
	if e.score > e.highScores.HighScore() {
		e.highScores.SaveHighScore(e.score)
	}

	lines := e.board.ClearFullRows()
	e.lines += lines

	e.piece = nil
	if !e.spawn() {
		return Result{Outcome: OutcomeGameOver, LinesCleared: lines, Score: e.score}
	}
	return Result{Outcome: OutcomeLocked, LinesCleared: lines, Score: e.score}
}

// spawn places a new piece at its shape's spawn column, row 0, frame 0.
// When the spawn cells are taken the game ends and spawn returns false.
func (e *Engine) spawn() bool {
	id := e.picker.Next()
	shape, err := e.catalog.Shape(id)
	if err != nil {
		panic(err)
	}
	col, _ := e.catalog.SpawnColumn(id, e.cfg.Cols)

	p := newPiece(shape, Position{Row: 0, Col: col})
	if !e.board.CanPlace(p.CurrentFrame(), p.pos) {
		e.gameOver()
		return false
	}
	e.piece = p
	e.board.StampEphemeral(p.CurrentFrame(), p.pos)
	return true
}

func (e *Engine) gameOver() {
	e.lastScore = e.score
	e.score = 0
	e.board.ResetAll()
	e.piece = nil
	e.state = StateOver
}

func (e *Engine) resetSession() {
	e.score = 0
	e.locked = 0
	e.lines = 0
	e.lockCounts.Clear()
	e.board.ResetAll()
	e.piece = nil
}

// State returns the current state machine position.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) IsAwaitingStart() bool { return e.State() == StateAwaitingStart }
func (e *Engine) IsActive() bool        { return e.State() == StateActive }
func (e *Engine) IsInactive() bool      { return e.State() == StateInactive }
func (e *Engine) IsOver() bool          { return e.State() == StateOver }

// CellState returns the board cell at (row, col).
func (e *Engine) CellState(row, col int) (CellState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.CellState(row, col)
}

// Score returns the running score. It reads 0 once the game is over.
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}

// LastScore returns the score the most recent session ended with.
func (e *Engine) LastScore() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastScore
}

// Stats returns counters for the current or last finished session.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Stats{
		PiecesLocked: e.locked,
		LinesCleared: e.lines,
		ByShape:      make(map[ShapeID]int, e.catalog.Len()),
	}
	for id := range ShapeID(e.catalog.Len()) {
		if n, ok := e.lockCounts.Get(id); ok {
			s.ByShape[id] = n
		}
	}
	return s
}

// PieceColor returns the active piece's color, used to paint ephemeral cells.
func (e *Engine) PieceColor() (core.Color, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.piece == nil {
		return core.ColorDefault, false
	}
	return e.piece.Color(), true
}

// Piece returns a copy of the active piece.
func (e *Engine) Piece() (PieceView, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.piece == nil {
		return PieceView{}, false
	}
	return PieceView{
		ShapeID:    e.piece.shape.id,
		ShapeName:  e.piece.shape.name,
		Position:   e.piece.pos,
		FrameIndex: e.piece.frame,
		Color:      e.piece.Color(),
	}, true
}

// Board returns a snapshot copy of the grid.
func (e *Engine) Board() *Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board.Clone()
}

// Rows returns the board height.
func (e *Engine) Rows() int { return e.cfg.Rows }

// Cols returns the board width.
func (e *Engine) Cols() int { return e.cfg.Cols }

// Catalog returns the shape catalog in use.
func (e *Engine) Catalog() *Catalog { return e.catalog }
