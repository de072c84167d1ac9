package web

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/purple-snake/internal/clock"
	"github.com/vovakirdan/purple-snake/internal/config"
	"github.com/vovakirdan/purple-snake/internal/core"
	"github.com/vovakirdan/purple-snake/internal/games/snake"
)

const writeWait = 5 * time.Second

// session drives one game over one websocket. The run goroutine owns the
// game, the clock and all writes.
type session struct {
	conn   *websocket.Conn
	cfg    config.SnakeConfig
	game   *snake.Game
	clock  *clock.Clock
	logger *log.Logger
}

func newSession(conn *websocket.Conn, cfg config.SnakeConfig, store snake.HighScoreStore, logger *log.Logger) *session {
	game := snake.New(cfg, store)
	game.Reset(core.RuntimeConfig{Seed: time.Now().UnixNano()})

	return &session{
		conn:   conn,
		cfg:    cfg,
		game:   game,
		clock:  clock.New(),
		logger: logger,
	}
}

// run serves the session until ctx ends, the client disconnects or a write
// fails.
func (s *session) run(ctx context.Context) {
	defer s.clock.Stop()

	done := make(chan struct{})
	defer close(done)
	actions := make(chan core.Action)
	go s.readLoop(actions, done)

	if err := s.write(ServerMessage{Type: TypeConfig, Config: newConfigPayload(s.cfg)}); err != nil {
		return
	}
	if err := s.writeState(nil); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case a, ok := <-actions:
			if !ok {
				return
			}
			if !s.game.HandleAction(a) {
				continue
			}
			s.clock.SetDelay(s.game.Delay())
			if err := s.writeState(nil); err != nil {
				return
			}

		case <-s.clock.C():
			result := s.game.Step()
			if result.Err != nil {
				s.logger.Warn("could not save high score", "error", result.Err)
			}
			s.clock.SetDelay(s.game.Delay())
			if err := s.writeState(result.Events); err != nil {
				return
			}
		}
	}
}

// readLoop decodes client frames into actions. It closes actions when the
// connection fails.
func (s *session) readLoop(actions chan<- core.Action, done <-chan struct{}) {
	defer close(actions)
	for {
		var msg ClientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("read error", "error", err)
			}
			return
		}

		a := core.ParseAction(msg.Action)
		if a == core.ActionNone || a == core.ActionQuit {
			continue
		}
		select {
		case actions <- a:
		case <-done:
			return
		}
	}
}

func (s *session) writeState(events []core.Event) error {
	return s.write(ServerMessage{Type: TypeState, State: newStatePayload(s.game, events)})
}

func (s *session) write(msg ServerMessage) error {
	//nolint:errcheck // A failed deadline surfaces as a write error
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(msg); err != nil {
		s.logger.Debug("write error", "error", err)
		return err
	}
	return nil
}
