// Package config provides YAML-based game configuration loading for the
// snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Timing  TimingConfig  `yaml:"timing"`
	Start   StartConfig   `yaml:"start"`
	Storage StorageConfig `yaml:"storage"`
	Sound   SoundConfig   `yaml:"sound"`
	Colors  ColorConfig   `yaml:"colors"`
}

// CanvasConfig defines the logical drawing surface. The playable grid is
// Width/Scale by Height/Scale cells.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"` // Logical units per grid cell
}

// GridW returns the number of grid columns.
func (c CanvasConfig) GridW() int {
	return c.Width / c.Scale
}

// GridH returns the number of grid rows.
func (c CanvasConfig) GridH() int {
	return c.Height / c.Scale
}

// TimingConfig defines the game clock.
type TimingConfig struct {
	TickDelayMS int `yaml:"tick_delay_ms"` // Interval between update steps
}

// TickDelay returns the clock interval as a duration.
func (t TimingConfig) TickDelay() time.Duration {
	return time.Duration(t.TickDelayMS) * time.Millisecond
}

// Point is a grid coordinate in config files.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// StartConfig defines the state every new game begins with.
type StartConfig struct {
	Body          []Point `yaml:"body"`           // Head first
	Apple         Point   `yaml:"apple"`          // First apple position
	Direction     Point   `yaml:"direction"`      // Direction set by Start
	IdleDirection Point   `yaml:"idle_direction"` // Direction before the first Start
}

// StorageConfig defines where the high score lives.
type StorageConfig struct {
	Key string `yaml:"key"` // Key of the high score in the key-value store
}

// SoundConfig toggles local sound effects.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ColorConfig holds hex colors shared by the terminal and browser renderers.
type ColorConfig struct {
	Snake string `yaml:"snake"`
	Apple string `yaml:"apple"`
}

// Validate reports the first problem that would make the game unplayable.
func (c SnakeConfig) Validate() error {
	cv := c.Canvas
	if cv.Width <= 0 || cv.Height <= 0 || cv.Scale <= 0 {
		return fmt.Errorf("config: canvas %dx%d with scale %d must be positive", cv.Width, cv.Height, cv.Scale)
	}
	if cv.Width%cv.Scale != 0 || cv.Height%cv.Scale != 0 {
		return fmt.Errorf("config: canvas %dx%d is not a multiple of scale %d", cv.Width, cv.Height, cv.Scale)
	}
	if c.Timing.TickDelayMS <= 0 {
		return fmt.Errorf("config: tick_delay_ms must be positive, got %d", c.Timing.TickDelayMS)
	}
	if len(c.Start.Body) == 0 {
		return errors.New("config: start body must have at least one cell")
	}
	for i, p := range c.Start.Body {
		if !c.inGrid(p) {
			return fmt.Errorf("config: start body cell %d (%d,%d) is outside the grid", i, p.X, p.Y)
		}
	}
	if !c.inGrid(c.Start.Apple) {
		return fmt.Errorf("config: start apple (%d,%d) is outside the grid", c.Start.Apple.X, c.Start.Apple.Y)
	}
	if !isUnit(c.Start.Direction) {
		return fmt.Errorf("config: start direction (%d,%d) is not a unit vector", c.Start.Direction.X, c.Start.Direction.Y)
	}
	if !isUnit(c.Start.IdleDirection) {
		return fmt.Errorf("config: idle direction (%d,%d) is not a unit vector", c.Start.IdleDirection.X, c.Start.IdleDirection.Y)
	}
	if c.Storage.Key == "" {
		return errors.New("config: storage key must not be empty")
	}
	return nil
}

func (c SnakeConfig) inGrid(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < c.Canvas.GridW() && p.Y < c.Canvas.GridH()
}

// isUnit reports whether p is one of the four axis-aligned unit vectors.
func isUnit(p Point) bool {
	return (p.X == 0) != (p.Y == 0) && p.X >= -1 && p.X <= 1 && p.Y >= -1 && p.Y <= 1
}
