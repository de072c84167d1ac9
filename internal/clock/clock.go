// Package clock provides the repeating game timer used by front ends that own
// their own event loop.
package clock

import (
	"sync"
	"time"
)

// Clock is a cancellable repeating timer. A positive delay runs a ticker; a
// zero delay means no timer. Changing the delay always replaces the running
// ticker, so at most one is active.
//
// Clock does not call back into the game. The owner selects on C() in the
// same loop that handles input, which keeps the update step and rendering on
// one goroutine.
type Clock struct {
	mu     sync.Mutex
	delay  time.Duration
	ticker *time.Ticker
}

// New returns a stopped clock.
func New() *Clock {
	return &Clock{}
}

// SetDelay (re)starts the clock with the given interval. A delay <= 0 stops
// it. Setting the current delay again is a no-op and keeps the phase of the
// running ticker.
func (c *Clock) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if d == c.delay {
		return
	}
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.delay = d
	if d > 0 {
		c.ticker = time.NewTicker(d)
	}
}

// Stop stops the clock. Stopping a stopped clock does nothing.
func (c *Clock) Stop() {
	c.SetDelay(0)
}

// Delay returns the current interval; 0 when stopped.
func (c *Clock) Delay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delay
}

// Running reports whether a ticker is active.
func (c *Clock) Running() bool {
	return c.Delay() > 0
}

// C returns the channel ticks are delivered on, or nil when stopped. A nil
// channel never becomes ready in a select statement.
//
// The channel belongs to the ticker active at call time; call C again after
// every SetDelay.
func (c *Clock) C() <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ticker == nil {
		return nil
	}
	return c.ticker.C
}
