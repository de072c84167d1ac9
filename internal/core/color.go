package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorWhite
	ColorBrightMagenta
	ColorBrightWhite
	ColorGray
	ColorSnake // Snake body, configurable
	ColorApple // Apple, configurable
)
