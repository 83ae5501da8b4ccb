package engine

import "errors"

// Contract violations. None of these are game conditions: a correct caller
// never sees them.
var (
	ErrOutOfBounds   = errors.New("engine: cell out of bounds")
	ErrInvalidFrame  = errors.New("engine: invalid frame index")
	ErrUnknownShape  = errors.New("engine: unknown shape")
	ErrInvalidConfig = errors.New("engine: invalid config")
)
