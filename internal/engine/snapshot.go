package engine

import "github.com/vovakirdan/tui-dino/internal/world"

// AvatarState selects the character's sprite.
type AvatarState int

const (
	AvatarWaiting AvatarState = iota
	AvatarRunning
	AvatarJumping
	AvatarCrashed
)

// String returns the avatar state name.
func (a AvatarState) String() string {
	switch a {
	case AvatarWaiting:
		return "waiting"
	case AvatarRunning:
		return "running"
	case AvatarJumping:
		return "jumping"
	case AvatarCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the avatar state by name.
func (a AvatarState) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// CharacterView is the render-ready character.
type CharacterView struct {
	Left   float64              `yaml:"left"`
	Top    float64              `yaml:"top"`
	State  world.CharacterState `yaml:"state"`
	Avatar AvatarState          `yaml:"avatar"`
}

// ObstacleView is a render-ready obstacle.
type ObstacleView struct {
	Left float64            `yaml:"left"`
	Top  float64            `yaml:"top"`
	Type world.ObstacleType `yaml:"type"`
}

// DecorationView is a render-ready cloud or bird.
type DecorationView struct {
	Left   float64              `yaml:"left"`
	Top    float64              `yaml:"top"`
	Type   world.DecorationType `yaml:"type"`
	IsBird bool                 `yaml:"is_bird"`
}

// Snapshot is an immutable projection of the world for renderers.
// Arrays are copied by value, so a Snapshot shares nothing with the engine.
type Snapshot struct {
	Tick        int64                                 `yaml:"tick"`
	Size        world.CanvasSize                      `yaml:"size"`
	GroundY     float64                               `yaml:"ground_y"`
	IsPlaying   bool                                  `yaml:"is_playing"`
	Score       int                                   `yaml:"score"`
	LiveScore   int                                   `yaml:"live_score"`
	MaxScore    int                                   `yaml:"max_score"`
	Character   CharacterView                         `yaml:"character"`
	Obstacles   [world.ObstacleSlots]ObstacleView     `yaml:"obstacles"`
	Decorations [world.DecorationSlots]DecorationView `yaml:"decorations"`
}

// FromWorld builds a snapshot from w. maxScore comes from the session
// tracker, which is not part of the world.
func FromWorld(w *world.State, maxScore int) Snapshot {
	snap := Snapshot{
		Tick:      w.Ticks,
		Size:      w.Size,
		GroundY:   w.GroundY(),
		IsPlaying: w.IsPlaying,
		Score:     w.Score,
		LiveScore: w.Score,
		MaxScore:  maxScore,
		Character: CharacterView{
			Left:   w.Character.Left,
			Top:    w.Character.Top,
			State:  w.Character.State,
			Avatar: avatarFor(w.Character.State, w.IsPlaying),
		},
	}
	if w.IsPlaying {
		snap.LiveScore = scoreForTicks(w.Ticks)
	}

	for i, o := range w.Obstacles {
		snap.Obstacles[i] = ObstacleView{Left: o.Left, Top: o.Top, Type: o.Type}
	}
	for i, d := range w.Decorations {
		snap.Decorations[i] = DecorationView{Left: d.Left, Top: d.Top, Type: d.Type, IsBird: d.IsBird}
	}
	return snap
}

// avatarFor maps the physics state to a sprite state. Jumping and falling
// share a sprite; an idle runner before a game waits.
func avatarFor(state world.CharacterState, playing bool) AvatarState {
	switch state {
	case world.Crashed:
		return AvatarCrashed
	case world.Jumping, world.Falling:
		return AvatarJumping
	}
	if !playing {
		return AvatarWaiting
	}
	return AvatarRunning
}
