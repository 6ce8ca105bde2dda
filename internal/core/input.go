package core

// Action is a semantic input, decoupled from physical keys and mouse buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // h, Left arrow - move tube cursor left
	ActionRight          // l, Right arrow - move tube cursor right
	ActionPour           // Enter, Space - pour from the cursor tube
	ActionSelect         // 1-9, mouse click - pour from a specific tube
	ActionPause          // p, Esc - pause or resume
	ActionNext           // n - skip to the next level
	ActionRestart        // r - start the run over
	ActionQuit           // q, Ctrl+C - exit
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
	case ActionPour:
		return "Pour"
	case ActionSelect:
		return "Select"
	case ActionPause:
		return "Pause"
	case ActionNext:
		return "Next"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is one discrete user event. Index is the tube for ActionSelect.
type Input struct {
	Action Action
	Index  int
}

// Press returns an input for an action without an index.
func Press(a Action) Input {
	return Input{Action: a}
}

// SelectTube returns an input choosing tube i directly.
func SelectTube(i int) Input {
	return Input{Action: ActionSelect, Index: i}
}
