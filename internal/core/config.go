package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level (1-based)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Success  bool // Outcome once GameOver is set
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}

// RunResult summarizes a finished run for persistence.
type RunResult struct {
	Score     int
	Level     int // Levels completed
	Destroyed int // Anomalies destroyed in the final level
	Energy    int
	Success   bool
}
