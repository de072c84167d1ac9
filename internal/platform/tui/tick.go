// Package tui runs the snake game in a terminal through Bubble Tea, locally
// or once per SSH session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is one firing of the game clock. gen identifies the tick chain
// that produced it.
type tickMsg struct {
	gen int
}

// gameClock keeps at most one live tea.Tick chain. Every delay change starts
// a new generation; ticks from older generations are dropped on arrival.
type gameClock struct {
	gen   int
	delay time.Duration
}

// sync follows the game's requested delay. It returns the command that
// starts the new chain, or nil when nothing changed or the clock stopped.
func (c gameClock) sync(delay time.Duration) (gameClock, tea.Cmd) {
	if delay == c.delay {
		return c, nil
	}
	c.gen++
	c.delay = delay
	return c, c.schedule()
}

// schedule returns the next tick of the current chain.
func (c gameClock) schedule() tea.Cmd {
	if c.delay <= 0 {
		return nil
	}
	gen := c.gen
	return tea.Tick(c.delay, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// current reports whether msg belongs to the live chain.
func (c gameClock) current(msg tickMsg) bool {
	return c.delay > 0 && msg.gen == c.gen
}
