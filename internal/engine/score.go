package engine

// ScoreTracker keeps the best score of the session. It lives outside the
// world state so resets never clear it.
type ScoreTracker struct {
	max int
}

// Record folds score into the running maximum and returns the new maximum.
func (t *ScoreTracker) Record(score int) int {
	if score > t.max {
		t.max = score
	}
	return t.max
}

// Max returns the best score seen so far.
func (t *ScoreTracker) Max() int {
	return t.max
}

// scoreForTicks converts elapsed ticks into points.
func scoreForTicks(ticks int64) int {
	return int(ticks / TicksPerPoint)
}
