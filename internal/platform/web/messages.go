package web

import (
	"github.com/vovakirdan/purple-snake/internal/config"
	"github.com/vovakirdan/purple-snake/internal/core"
	"github.com/vovakirdan/purple-snake/internal/games/snake"
)

// Message types sent by the server.
const (
	TypeConfig = "config"
	TypeState  = "state"
)

// ServerMessage is one frame pushed to the browser.
type ServerMessage struct {
	Type   string         `json:"type"`
	Config *ConfigPayload `json:"config,omitempty"`
	State  *StatePayload  `json:"state,omitempty"`
}

// ClientMessage is one frame sent by the browser.
type ClientMessage struct {
	Action string `json:"action"`
}

// Point is a grid cell on the wire.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ConfigPayload describes the board once per connection.
type ConfigPayload struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Scale       int    `json:"scale"`
	GridW       int    `json:"gridW"`
	GridH       int    `json:"gridH"`
	TickDelayMS int    `json:"tickDelayMs"`
	SnakeColor  string `json:"snakeColor"`
	AppleColor  string `json:"appleColor"`
}

// StatePayload is the full game state after a change.
type StatePayload struct {
	Snake     []Point  `json:"snake"`
	Apple     Point    `json:"apple"`
	Score     int      `json:"score"`
	HighScore int      `json:"highScore"`
	GameOver  bool     `json:"gameOver"`
	Started   bool     `json:"started"`
	Events    []string `json:"events,omitempty"`
}

func newConfigPayload(cfg config.SnakeConfig) *ConfigPayload {
	return &ConfigPayload{
		Width:       cfg.Canvas.Width,
		Height:      cfg.Canvas.Height,
		Scale:       cfg.Canvas.Scale,
		GridW:       cfg.Canvas.GridW(),
		GridH:       cfg.Canvas.GridH(),
		TickDelayMS: cfg.Timing.TickDelayMS,
		SnakeColor:  cfg.Colors.Snake,
		AppleColor:  cfg.Colors.Apple,
	}
}

func newStatePayload(g *snake.Game, events []core.Event) *StatePayload {
	body := g.Body()
	pts := make([]Point, len(body))
	for i, c := range body {
		pts[i] = Point{X: c.X, Y: c.Y}
	}

	st := g.State()
	p := &StatePayload{
		Snake:     pts,
		Apple:     Point{X: g.Apple().X, Y: g.Apple().Y},
		Score:     st.Score,
		HighScore: st.HighScore,
		GameOver:  st.GameOver,
		Started:   st.Started,
	}
	for _, ev := range events {
		p.Events = append(p.Events, ev.String())
	}
	return p
}
