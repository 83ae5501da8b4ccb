package engine

// HighScoreKeeper is the score-persistence collaborator. The engine queries
// it on every lock and saves whenever the running score exceeds it.
type HighScoreKeeper interface {
	HighScore() int
	SaveHighScore(score int)
}

// NopHighScores keeps nothing; every score is a new high of zero.
type NopHighScores struct{}

func (NopHighScores) HighScore() int    { return 0 }
func (NopHighScores) SaveHighScore(int) {}

// MemoryHighScores holds the best score for the lifetime of the process.
// Not safe for use by more than one engine at a time.
type MemoryHighScores struct {
	Best  int
	Saves int
}

func (m *MemoryHighScores) HighScore() int { return m.Best }

func (m *MemoryHighScores) SaveHighScore(score int) {
	m.Best = score
	m.Saves++
}
