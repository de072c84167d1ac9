package snake

import "github.com/vovakirdan/purple-snake/internal/config"

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Direction is a unit movement vector.
type Direction struct {
	DX, DY int
}

// The four movement directions. Y grows downwards.
var (
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// HighScoreStore persists the best score across games.
// Implementations must treat a missing value as 0. RaiseHighScore stores
// score only when it beats the stored value, atomically with respect to
// other callers.
type HighScoreStore interface {
	HighScore() (int, error)
	RaiseHighScore(score int) error
}

func cellFrom(p config.Point) Cell {
	return Cell{X: p.X, Y: p.Y}
}

func directionFrom(p config.Point) Direction {
	return Direction{DX: p.X, DY: p.Y}
}
