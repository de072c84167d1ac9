package core

// RuntimeConfig contains configuration passed to a game at initialization.
// Games use this to lay out the board and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Stored high score at the time of the call
	GameOver  bool // Whether the game has ended
	Started   bool // Whether Start has been pressed at least once
}

// Event is a one-shot occurrence during a tick that front ends may react to
// (sound effects, notifications).
type Event int

const (
	EventNone Event = iota
	EventAppleEaten
	EventGameOver
)

// String returns the wire name of the event.
func (e Event) String() string {
	switch e {
	case EventAppleEaten:
		return "apple"
	case EventGameOver:
		return "gameover"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
	// Err reports a failed high-score write. The tick itself always completes.
	Err error
}
