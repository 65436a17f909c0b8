package core

// Action is a semantic input, abstracted from physical key presses.
// One key press produces at most one action, and each action is handled to
// completion before the next one is read.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionRight
	ActionDown
	ActionLeft
	ActionNewGame    // R/N - start over
	ActionHelp       // ? - toggle full key help
	ActionScreenshot // Ctrl+S - dump the screen to a file
	ActionQuit       // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionNewGame:
		return "NewGame"
	case ActionHelp:
		return "Help"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action slides the board.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionLeft
}
