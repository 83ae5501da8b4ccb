package blockfall

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// ErrBadInterval is returned by NewAutoDropper for non-positive intervals.
var ErrBadInterval = errors.New("blockfall: drop interval must be positive")

// Mover accepts motion requests. *engine.Engine satisfies it.
type Mover interface {
	ApplyMotion(m engine.Motion) engine.Result
}

// AutoDropper applies gravity to an engine on a wall-clock timer. It is the
// headless counterpart of the tick-counting gravity in Game.Step.
type AutoDropper struct {
	target   Mover
	interval time.Duration
	onResult func(engine.Result)
}

// NewAutoDropper creates a dropper that sends MotionDown every interval.
func NewAutoDropper(target Mover, interval time.Duration) (*AutoDropper, error) {
	if interval <= 0 {
		return nil, ErrBadInterval
	}
	return &AutoDropper{target: target, interval: interval}, nil
}

// OnResult registers a callback invoked with every drop result, from the
// Run goroutine.
func (a *AutoDropper) OnResult(f func(engine.Result)) {
	a.onResult = f
}

// Run drops until ctx is done or a drop ends the game. It returns nil on
// game over and ctx.Err() on cancellation.
func (a *AutoDropper) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			res := a.target.ApplyMotion(engine.MotionDown)
			if a.onResult != nil {
				a.onResult(res)
			}
			if res.Outcome == engine.OutcomeGameOver {
				return nil
			}
		}
	}
}
