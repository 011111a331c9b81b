package engine

import "github.com/vovakirdan/tui-dino/internal/world"

// Event is something that can move the character between states.
type Event int

const (
	EventJumpRequested Event = iota
	EventApexReached
	EventLanded
	EventCollided
	EventStarted
)

// String returns the event name.
func (ev Event) String() string {
	switch ev {
	case EventJumpRequested:
		return "jump-requested"
	case EventApexReached:
		return "apex-reached"
	case EventLanded:
		return "landed"
	case EventCollided:
		return "collided"
	case EventStarted:
		return "started"
	default:
		return "unknown"
	}
}

// Transition returns the character state after ev. Events that do not apply
// to the current state leave it unchanged.
//
//	Running  --jump-->    Jumping
//	Jumping  --apex-->    Falling
//	Falling  --landed-->  Running
//	any      --collided-> Crashed
//	any      --started->  Running
func Transition(state world.CharacterState, ev Event) world.CharacterState {
	switch ev {
	case EventStarted:
		return world.Running
	case EventCollided:
		return world.Crashed
	}

	switch {
	case state == world.Running && ev == EventJumpRequested:
		return world.Jumping
	case state == world.Jumping && ev == EventApexReached:
		return world.Falling
	case state == world.Falling && ev == EventLanded:
		return world.Running
	}
	return state
}

// StepVertical applies one tick of vertical motion. A character that reaches
// its apex starts falling in the same tick. Running and Crashed characters
// do not move.
func StepVertical(c *world.Character, groundY float64) {
	floor := groundY - CharacterHeight

	if c.State == world.Jumping {
		if c.Top >= floor-JumpHeight {
			c.Top -= JumpSpeed
		} else {
			c.State = Transition(c.State, EventApexReached)
		}
	}

	if c.State == world.Falling {
		if c.Top <= floor {
			c.Top += FallSpeed
		} else {
			c.Top = floor
			c.State = Transition(c.State, EventLanded)
		}
	}
}
