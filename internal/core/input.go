package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow
	ActionRight        // Right arrow
	ActionUp           // Up arrow
	ActionDown         // Down arrow
	ActionStart        // Enter, Space, Start button - (re)start the game
	ActionQuit         // Q, Ctrl+C - exit program/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction maps a lower-case wire name ("left", "start", ...) to an action.
// Unknown names map to ActionNone.
func ParseAction(name string) Action {
	switch name {
	case "left":
		return ActionLeft
	case "right":
		return ActionRight
	case "up":
		return ActionUp
	case "down":
		return ActionDown
	case "start":
		return ActionStart
	case "quit":
		return ActionQuit
	default:
		return ActionNone
	}
}
