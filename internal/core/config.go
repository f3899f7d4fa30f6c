package core

// RuntimeConfig contains terminal-facing settings for the frontend.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the externally visible state of a match after a tick.
type GameState struct {
	Tick   int    // Simulation ticks since the match started
	Health [2]int // Health per side, indexed by Side
	Ended  bool   // Whether a ship has been destroyed
	Winner Side   // Valid only when Ended is true
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Hits  int // Hit events applied during this tick
	Shots int // Bullets spawned during this tick
}
