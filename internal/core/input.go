package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys, mouse wheel events and the controller's proposals
// into actions; the game never sees raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // k, w, Up arrow, 8 - head up (absolute mode)
	ActionDown             // j, s, Down arrow, 2, 5 - head down (absolute mode)
	ActionLeft             // h, a, Left arrow, 4 - head left (absolute mode)
	ActionRight            // l, d, Right arrow, 6 - head right (absolute mode)
	ActionTurnLeft         // wheel down - quarter turn counter-clockwise (relative mode)
	ActionTurnRight        // wheel up - quarter turn clockwise (relative mode)
	ActionPause            // Space, P - pause/unpause
	ActionAutoplay         // Tab - toggle the steering controller
	ActionQuit             // Q, Ctrl+C - leave immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionPause:
		return "Pause"
	case ActionAutoplay:
		return "Autoplay"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Steers reports whether the action changes the snake's heading.
// Steering actions also unpause the game.
func (a Action) Steers() bool {
	return a >= ActionUp && a <= ActionTurnRight
}

// Heading resolves a steering action to an absolute direction given the
// current heading. The second result is false for non-steering actions.
func (a Action) Heading(current Direction) (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	case ActionTurnLeft:
		return current.TurnLeft(), true
	case ActionTurnRight:
		return current.TurnRight(), true
	default:
		return current, false
	}
}
