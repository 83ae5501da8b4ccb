package storage

import (
	"sync"

	"github.com/charmbracelet/log"
)

// HighScoreKeeper persists one game's best score. It caches the stored value
// so HighScore never touches the database. Save failures are logged and
// otherwise ignored; play continues with the cached value.
type HighScoreKeeper struct {
	store  *Store
	gameID string
	logger *log.Logger

	mu   sync.Mutex
	best int
}

// NewHighScoreKeeper loads the current best for gameID. A nil logger uses
// the package default logger.
func NewHighScoreKeeper(store *Store, gameID string, logger *log.Logger) *HighScoreKeeper {
	if logger == nil {
		logger = log.Default()
	}
	k := &HighScoreKeeper{store: store, gameID: gameID, logger: logger}

	best, err := store.HighScore(gameID)
	if err != nil {
		logger.Warn("cannot load high score", "game", gameID, "err", err)
	}
	k.best = best
	return k
}

// HighScore returns the cached best score.
func (k *HighScoreKeeper) HighScore() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.best
}

// SaveHighScore records score if it beats the cached best.
func (k *HighScoreKeeper) SaveHighScore(score int) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if score <= k.best {
		return
	}
	k.best = score
	if _, err := k.store.SetHighScore(k.gameID, score); err != nil {
		k.logger.Warn("cannot save high score", "game", k.gameID, "score", score, "err", err)
		return
	}
	k.logger.Debug("new high score", "game", k.gameID, "score", score)
}
