// Package world holds the runner's canonical simulation state.
// It is plain data: the engine mutates it, renderers never see it directly.
package world

// GroundPercent is the share of the canvas height, in percent, above the
// ground line.
const GroundPercent = 55

// Slot counts for the fixed pools of obstacles and decorations.
const (
	ObstacleSlots   = 2
	DecorationSlots = 4
)

// CanvasSize is the rendering surface in world units (pixels).
type CanvasSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GroundY returns the vertical coordinate of the running surface.
// Multiplying before dividing keeps whole-number heights exact
// (700 gives 385, where 700*0.55 does not).
func (c CanvasSize) GroundY() float64 {
	return c.Height * GroundPercent / 100
}

// CharacterState drives both the character's physics and its sprite.
type CharacterState int

const (
	Running CharacterState = iota
	Jumping
	Falling
	Crashed
)

// String returns the state name.
func (s CharacterState) String() string {
	switch s {
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	case Crashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Character is the runner. Left is fixed after reset; the world scrolls.
type Character struct {
	Left  float64
	Top   float64
	State CharacterState
}

// ObstacleType selects one of the obstacle sprites.
type ObstacleType int

const (
	Cake ObstacleType = iota
	Donut
	Sundae

	// ObstacleTypeCount is the size of the obstacle palette.
	ObstacleTypeCount = 3
)

// String returns the obstacle type name.
func (t ObstacleType) String() string {
	switch t {
	case Cake:
		return "cake"
	case Donut:
		return "donut"
	case Sundae:
		return "sundae"
	default:
		return "unknown"
	}
}

// Obstacle is a collidable item the character must jump over.
type Obstacle struct {
	Left float64
	Top  float64
	Type ObstacleType
}

// DecorationType selects one of the cloud sprites.
type DecorationType int

const (
	CloudOne DecorationType = iota
	CloudTwo
	CloudThree

	// DecorationTypeCount is the size of the cloud palette.
	DecorationTypeCount = 3
)

// String returns the decoration type name.
func (t DecorationType) String() string {
	switch t {
	case CloudOne:
		return "cloud-one"
	case CloudTwo:
		return "cloud-two"
	case CloudThree:
		return "cloud-three"
	default:
		return "unknown"
	}
}

// Decoration is a non-colliding background cloud or bird.
// Birds flap using a two-frame animation instead of a static sprite.
type Decoration struct {
	Left   float64
	Top    float64
	Type   DecorationType
	Speed  float64
	IsBird bool
}

// State is the aggregate world. One instance exists per engine.
type State struct {
	Ticks       int64
	Size        CanvasSize
	Character   Character
	Obstacles   [ObstacleSlots]Obstacle
	Decorations [DecorationSlots]Decoration
	IsPlaying   bool
	Score       int
}

// New returns a degenerate world. It becomes meaningful after the first resize.
func New() *State {
	return &State{
		Character: Character{State: Running},
		Obstacles: [ObstacleSlots]Obstacle{
			{Type: Cake},
			{Type: Donut},
		},
		Decorations: [DecorationSlots]Decoration{
			{IsBird: false},
			{IsBird: true},
			{IsBird: true},
			{IsBird: false},
		},
	}
}

// GroundY returns the ground line for the current canvas.
func (s *State) GroundY() float64 {
	return s.Size.GroundY()
}

// MarshalText encodes the state by name for YAML and JSON output.
func (s CharacterState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MarshalText encodes the obstacle type by name.
func (t ObstacleType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// MarshalText encodes the decoration type by name.
func (t DecorationType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
