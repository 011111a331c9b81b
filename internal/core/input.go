package core

// Action represents a semantic input intent, abstracted from physical keys.
// The platform maps keys to actions; the simulation never sees raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, Up - jump over the next obstacle
	ActionStart             // Enter, R - start or restart a run
	ActionScreenshot        // Ctrl+S - save the current frame
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
