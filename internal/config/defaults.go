package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Canvas: CanvasConfig{
			Width:  1000,
			Height: 1000,
			Scale:  50,
		},
		Timing: TimingConfig{
			TickDelayMS: 100,
		},
		Start: StartConfig{
			Body:          []Point{{X: 4, Y: 10}, {X: 4, Y: 10}},
			Apple:         Point{X: 14, Y: 10},
			Direction:     Point{X: 1, Y: 0},
			IdleDirection: Point{X: 0, Y: -1},
		},
		Storage: StorageConfig{
			Key: "snakeScore",
		},
		Sound: SoundConfig{
			Enabled: true,
		},
		Colors: ColorConfig{
			Snake: "#862ADB",
			Apple: "#E0245E",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
