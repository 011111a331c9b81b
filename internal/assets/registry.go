package assets

import (
	"github.com/vovakirdan/tui-dino/internal/engine"
	"github.com/vovakirdan/tui-dino/internal/world"
)

// Registry holds every image a renderer needs, keyed by the snapshot's
// discrete visual states.
type Registry[T any] struct {
	avatars   map[engine.AvatarState]Image[T]
	obstacles [world.ObstacleTypeCount]Image[T]
	clouds    [world.DecorationTypeCount]Image[T]
	bird      Image[T]
}

// Set lists the images used to build a Registry.
type Set[T any] struct {
	Waiting   Image[T]
	Running   Image[T]
	Jumping   Image[T]
	Crashed   Image[T]
	Obstacles [world.ObstacleTypeCount]Image[T]
	Clouds    [world.DecorationTypeCount]Image[T]
	Bird      Image[T]
}

// NewRegistry builds a registry from s.
func NewRegistry[T any](s Set[T]) *Registry[T] {
	return &Registry[T]{
		avatars: map[engine.AvatarState]Image[T]{
			engine.AvatarWaiting: s.Waiting,
			engine.AvatarRunning: s.Running,
			engine.AvatarJumping: s.Jumping,
			engine.AvatarCrashed: s.Crashed,
		},
		obstacles: s.Obstacles,
		clouds:    s.Clouds,
		bird:      s.Bird,
	}
}

// Avatar returns the character frame for the given tick.
func (r *Registry[T]) Avatar(state engine.AvatarState, tick int64) T {
	img, ok := r.avatars[state]
	if !ok {
		img = r.avatars[engine.AvatarRunning]
	}
	return frameOf[T](img, tick)
}

// Obstacle returns the frame for an obstacle type.
func (r *Registry[T]) Obstacle(t world.ObstacleType, tick int64) T {
	if t < 0 || int(t) >= len(r.obstacles) {
		t = world.Cake
	}
	return frameOf[T](r.obstacles[t], tick)
}

// Decoration returns the frame for a cloud or bird.
func (r *Registry[T]) Decoration(d engine.DecorationView, tick int64) T {
	if d.IsBird {
		return frameOf[T](r.bird, tick)
	}
	t := d.Type
	if t < 0 || int(t) >= len(r.clouds) {
		t = world.CloudOne
	}
	return frameOf[T](r.clouds[t], tick)
}

func frameOf[T any](img Image[T], tick int64) T {
	if img == nil {
		var zero T
		return zero
	}
	return SelectFrame[T](img, tick)
}
