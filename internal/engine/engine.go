// Package engine implements the runner's fixed-tick simulation.
//
// The engine owns the world state and is the only thing that mutates it.
// Input (Resize, RequestJump, RequestStart) and Tick are serialised by a
// single mutex; Snapshot reads the last published snapshot without locking,
// so a renderer never blocks the tick driver and never sees a torn world.
package engine

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/world"
)

// Engine advances the world one tick at a time.
type Engine struct {
	mu       sync.Mutex
	world    *world.State
	rng      *rand.Rand
	scores   ScoreTracker
	sized    bool // set by the first Resize
	observer func(Snapshot)

	snap atomic.Pointer[Snapshot]
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the engine's random source for reproducible runs.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source directly.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithObserver registers fn to be called with every published snapshot.
// fn runs on the goroutine that caused the publish, after the engine lock
// is released, so it may call back into the engine.
func WithObserver(fn func(Snapshot)) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// New creates an engine holding a degenerate world. Ticks are ignored until
// the first Resize.
func New(opts ...Option) *Engine {
	e := &Engine{
		world: world.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.publishLocked()
	return e
}

// Resize adopts a new canvas size and resets the world. Repeating the
// current size is a no-op. Degenerate sizes yield a degenerate world.
func (e *Engine) Resize(width, height float64) {
	e.mu.Lock()
	size := world.CanvasSize{Width: width, Height: height}
	if e.sized && e.world.Size == size {
		e.mu.Unlock()
		return
	}
	e.sized = true
	e.world.Size = size
	e.reset()
	snap := e.publishLocked()
	e.mu.Unlock()

	e.notify(snap)
}

// RequestJump starts a jump if the character is running. Jumps while
// airborne or crashed are ignored.
func (e *Engine) RequestJump() {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := &e.world.Character
	c.State = Transition(c.State, EventJumpRequested)
}

// RequestStart begins a new run, restarting one in progress or after a crash.
func (e *Engine) RequestStart() {
	e.mu.Lock()
	e.world.IsPlaying = true
	e.reset()
	snap := e.publishLocked()
	e.mu.Unlock()

	e.notify(snap)
}

// Tick advances the simulation by exactly one FramePeriod.
func (e *Engine) Tick() {
	e.mu.Lock()
	if !e.sized {
		e.mu.Unlock()
		return
	}

	w := e.world
	w.Ticks++

	// Decorations scroll even while no game is running.
	for i := range w.Decorations {
		d := &w.Decorations[i]
		if d.Left < -DecorationWidth {
			e.respawnDecoration(d)
		} else {
			d.Left -= d.Speed
		}
	}

	if e.collided() {
		if w.IsPlaying {
			w.Score = scoreForTicks(w.Ticks)
			e.scores.Record(w.Score)
		}
		w.IsPlaying = false
		w.Character.State = Transition(w.Character.State, EventCollided)
	}

	StepVertical(&w.Character, w.GroundY())

	if w.IsPlaying {
		for i := range w.Obstacles {
			o := &w.Obstacles[i]
			o.Left -= ObstacleSpeed
			if o.Left < -ObstacleWidth {
				o.Left = w.Size.Width + e.obstacleOffset()
				o.Type = e.obstacleType()
			}
		}
	}

	snap := e.publishLocked()
	e.mu.Unlock()

	e.notify(snap)
}

// Snapshot returns the state as of the last completed tick or reset.
func (e *Engine) Snapshot() Snapshot {
	return *e.snap.Load()
}

// MaxScore returns the best score of the session.
func (e *Engine) MaxScore() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scores.Max()
}

// Run ticks the engine every FramePeriod until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(FramePeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			e.Tick()
		}
	}
}

// reset repositions everything for a fresh run. IsPlaying and Score belong
// to the caller and are left alone.
func (e *Engine) reset() {
	w := e.world
	groundY := w.GroundY()

	w.Ticks = 0
	w.Character.State = Transition(w.Character.State, EventStarted)
	w.Character.Left = CharacterWidth * 1.5
	w.Character.Top = groundY - CharacterHeight

	w.Obstacles[0].Left = w.Size.Width
	w.Obstacles[0].Top = groundY - ObstacleHeight
	w.Obstacles[1].Left = w.Size.Width + e.obstacleOffset()
	w.Obstacles[1].Top = groundY - ObstacleHeight

	for i := range w.Decorations {
		e.respawnDecoration(&w.Decorations[i])
	}
}

// collided reports whether the character overlaps either obstacle.
func (e *Engine) collided() bool {
	w := e.world
	character := core.NewRectF(w.Character.Left, w.Character.Top, CharacterWidth, CharacterHeight)
	for _, o := range w.Obstacles {
		if character.Intersects(core.NewRectF(o.Left, o.Top, ObstacleWidth, ObstacleHeight)) {
			return true
		}
	}
	return false
}

// publishLocked stores a fresh snapshot. Callers hold e.mu (or own e
// exclusively during construction).
func (e *Engine) publishLocked() Snapshot {
	snap := FromWorld(e.world, e.scores.Max())
	e.snap.Store(&snap)
	return snap
}

func (e *Engine) notify(snap Snapshot) {
	if e.observer != nil {
		e.observer(snap)
	}
}
