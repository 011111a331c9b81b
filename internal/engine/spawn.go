package engine

import "github.com/vovakirdan/tui-dino/internal/world"

// obstacleOffset returns how far past the right edge an obstacle respawns.
func (e *Engine) obstacleOffset() float64 {
	return float64(randRange(e, ObstacleOffsetMin, ObstacleOffsetMax))
}

func (e *Engine) obstacleType() world.ObstacleType {
	return world.ObstacleType(e.rng.Intn(world.ObstacleTypeCount))
}

// respawnDecoration gives d a fresh type, position and speed off the right edge.
func (e *Engine) respawnDecoration(d *world.Decoration) {
	d.Type = world.DecorationType(e.rng.Intn(world.DecorationTypeCount))
	d.Left = e.world.Size.Width + float64(randRange(e, DecorationOffsetMin, DecorationOffsetMax))
	d.Top = float64(randRange(e, 0, int(e.world.GroundY()-DecorationTopMargin)))
	d.Speed = float64(randRange(e, DecorationSpeedMin, DecorationSpeedMax+1))
}

// randRange returns a uniform integer in [lo, hi). An empty or inverted
// range collapses to lo; small canvases make the decoration band negative.
func randRange(e *Engine, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + e.rng.Intn(hi-lo)
}
