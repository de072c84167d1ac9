package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StateIdle     GameStateType = "idle"
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and
// for front ends that serialise the board.
type Snapshot struct {
	Tick     uint64
	Score    int
	Body     []Cell // Head first
	HeadX    int
	HeadY    int
	Dir      Direction
	AppleX   int
	AppleY   int
	DelayMS  int64 // 0 while the clock is stopped
	Started  bool
	GameOver bool
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case !g.started:
		state = StateIdle
	}

	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Body:     g.Body(),
		HeadX:    headX,
		HeadY:    headY,
		Dir:      g.direction,
		AppleX:   g.apple.X,
		AppleY:   g.apple.Y,
		DelayMS:  g.delay.Milliseconds(),
		Started:  g.started,
		GameOver: g.gameOver,
		State:    state,
	}
}
