package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use it to lay out the well and to seed the piece picker.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic piece order
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TicksFor converts a duration in milliseconds to whole ticks, never less than one.
func (c RuntimeConfig) TicksFor(ms int) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return max(1, ms*rate/1000)
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score     int  // Current score
	LastScore int  // Score the previous session ended with
	HighScore int  // Best score known to the game
	Lines     int  // Rows cleared this session
	Pieces    int  // Pieces locked this session
	Waiting   bool // Whether the game waits for the player to start
	GameOver  bool // Whether the session has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
