package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to the surface size and for deterministic
// simulation.
type RuntimeConfig struct {
	ScreenW  int   // Surface width in pixels
	ScreenH  int   // Surface height in pixels
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic bomb placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  160,
		ScreenH:  96,
		TickRate: 30,
		Seed:     0, // 0 means use current time in the platform layer
	}
}

// GameState communicates game status to the platform after each tick.
type GameState struct {
	GameOver bool // Whether the game has reached Won or Lost
	Won      bool // Valid only when GameOver is true
	Ticks    int  // Simulation ticks elapsed since the board was created
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
