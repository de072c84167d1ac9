// Package snake implements the snake game: a snake moves across a fixed grid
// on a timer, grows by eating apples and ends on hitting a wall or itself.
// The package holds pure game logic and renders into a core.Screen; front
// ends own input, timing and display.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/purple-snake/internal/config"
	"github.com/vovakirdan/purple-snake/internal/core"
)

// Game owns the complete state of one snake game.
type Game struct {
	cfg   config.SnakeConfig
	store HighScoreStore
	rng   *rand.Rand
	tick  uint64

	// Snake state
	snake     []Cell // Head at index 0
	direction Direction
	apple     Cell

	// Clock interval requested by the game; 0 = no timer
	delay time.Duration

	score    int
	gameOver bool
	started  bool

	// Layout
	screenW  int
	screenH  int
	board    core.Rect // Board including its border, in screen cells
	panel    core.Rect
	tooSmall bool
}

// New creates a game with the given configuration and high-score store.
// Call Reset before use.
func New(cfg config.SnakeConfig, store HighScoreStore) *Game {
	return &Game{
		cfg:   cfg,
		store: store,
	}
}

// Reset puts the game into its idle state: initial snake and apple on the
// board, clock stopped, waiting for Start. The RNG is reseeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.snake = g.initialBody()
	g.apple = cellFrom(g.cfg.Start.Apple)
	g.direction = directionFrom(g.cfg.Start.IdleDirection)
	g.delay = 0
	g.score = 0
	g.gameOver = false
	g.started = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Start begins a new game. Every field is reassigned, so Start is valid at
// any time: before the first game, mid-game and after game over.
func (g *Game) Start() {
	g.snake = g.initialBody()
	g.apple = cellFrom(g.cfg.Start.Apple)
	g.direction = directionFrom(g.cfg.Start.Direction)
	g.delay = g.cfg.Timing.TickDelay()
	g.score = 0
	g.gameOver = false
	g.started = true
}

func (g *Game) initialBody() []Cell {
	body := make([]Cell, len(g.cfg.Start.Body))
	for i, p := range g.cfg.Start.Body {
		body[i] = cellFrom(p)
	}
	return body
}

// SetDirection changes the direction used by the next tick.
// The last call before a tick wins; there is no reversal guard.
func (g *Game) SetDirection(d Direction) {
	g.direction = d
}

// HandleAction applies a platform action and reports whether it changed game
// state. Actions other than the four directions and Start are ignored.
func (g *Game) HandleAction(a core.Action) bool {
	switch a {
	case core.ActionLeft:
		g.SetDirection(DirLeft)
	case core.ActionRight:
		g.SetDirection(DirRight)
	case core.ActionUp:
		g.SetDirection(DirUp)
	case core.ActionDown:
		g.SetDirection(DirDown)
	case core.ActionStart:
		g.Start()
	default:
		return false
	}
	return true
}

// Delay returns the interval at which the front end should call Step.
// 0 means the clock must be stopped.
func (g *Game) Delay() time.Duration {
	return g.delay
}

// Running reports whether ticks advance the game.
func (g *Game) Running() bool {
	return g.started && !g.gameOver
}

// Step advances the game by one clock tick. It does nothing while the game
// is idle or over.
func (g *Game) Step() core.StepResult {
	if !g.Running() {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	var result core.StepResult

	newHead := g.snake[0].Add(g.direction)

	// Speculative growth: new head in front of the whole old body.
	grown := make([]Cell, 0, len(g.snake)+1)
	grown = append(grown, newHead)
	grown = append(grown, g.snake...)

	// The high score is saved before the apple check, so an apple eaten on
	// the colliding tick counts for the score but not for the stored best.
	if g.collides(newHead) {
		g.delay = 0
		g.gameOver = true
		result.Err = g.saveHighScore()
		result.Events = append(result.Events, core.EventGameOver)
	}

	if newHead == g.apple {
		g.apple = g.randomCell()
		g.score++
		result.Events = append(result.Events, core.EventAppleEaten)
		g.snake = grown
	} else {
		g.snake = grown[:len(grown)-1]
	}

	result.State = g.State()
	return result
}

// collides reports whether head leaves the canvas or lands on the body as it
// was before this tick (tail included).
func (g *Game) collides(head Cell) bool {
	cv := g.cfg.Canvas
	if head.X < 0 || head.Y < 0 || head.X*cv.Scale >= cv.Width || head.Y*cv.Scale >= cv.Height {
		return true
	}
	for _, seg := range g.snake {
		if seg == head {
			return true
		}
	}
	return false
}

// randomCell picks a uniformly random grid cell. It may be on the snake.
func (g *Game) randomCell() Cell {
	return Cell{
		X: g.rng.Intn(g.cfg.Canvas.GridW()),
		Y: g.rng.Intn(g.cfg.Canvas.GridH()),
	}
}

// saveHighScore raises the stored high score to the current score. The
// store compares and writes in one step, so concurrent games cannot lower it.
func (g *Game) saveHighScore() error {
	if g.store == nil {
		return nil
	}
	if err := g.store.RaiseHighScore(g.score); err != nil {
		return fmt.Errorf("snake: save high score: %w", err)
	}
	return nil
}

// HighScore reads the stored high score. Read failures count as 0.
func (g *Game) HighScore() int {
	if g.store == nil {
		return 0
	}
	high, err := g.store.HighScore()
	if err != nil || high < 0 {
		return 0
	}
	return high
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.HighScore(),
		GameOver:  g.gameOver,
		Started:   g.started,
	}
}

// Body returns a copy of the snake, head first.
func (g *Game) Body() []Cell {
	body := make([]Cell, len(g.snake))
	copy(body, g.snake)
	return body
}

// Apple returns the apple position.
func (g *Game) Apple() Cell {
	return g.apple
}

// Direction returns the direction the next tick will use.
func (g *Game) Direction() Direction {
	return g.direction
}

// Score returns the score of the current game.
func (g *Game) Score() int {
	return g.score
}

// Config returns the game configuration.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Delay: %v\n", g.tick, g.score, g.delay))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s\n", len(g.snake), g.direction))
	if len(g.snake) > 0 {
		b.WriteString(fmt.Sprintf("Head: (%d, %d), Apple: (%d, %d)\n", g.snake[0].X, g.snake[0].Y, g.apple.X, g.apple.Y))
	}
	b.WriteString(fmt.Sprintf("Started: %v, GameOver: %v\n", g.started, g.gameOver))
	return b.String()
}
