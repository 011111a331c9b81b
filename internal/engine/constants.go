package engine

import "time"

// FramePeriod is the fixed simulation step (24 ticks per second).
const FramePeriod = time.Second / 24

// Character motion and size, in world units.
const (
	CharacterWidth  = 48.0
	CharacterHeight = 48.0
	JumpSpeed       = 30.0
	FallSpeed       = 10.0
	JumpHeight      = CharacterHeight * 2.7
)

// Obstacle size, speed and respawn distance.
const (
	ObstacleWidth     = 22.0
	ObstacleHeight    = 48.0
	ObstacleSpeed     = 8.0
	ObstacleOffsetMin = 600
	ObstacleOffsetMax = 1000 // exclusive
)

// Decoration size, respawn distance and speed range.
const (
	DecorationWidth     = 64.0
	DecorationOffsetMin = 0
	DecorationOffsetMax = 600 // exclusive
	DecorationSpeedMin  = 2
	DecorationSpeedMax  = 8 // inclusive
	DecorationTopMargin = 100.0
)

// TicksPerPoint converts elapsed ticks into score.
const TicksPerPoint = 12
