package constants

import "time"

// Game Loop Timing Constants
const (
	// TickRate is the target simulation rate in ticks per second
	TickRate = 60

	// GameUpdateInterval is the target period of one simulation tick
	GameUpdateInterval = time.Second / TickRate

	// FrameUpdateInterval is the rendering frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TimeEpsilon absorbs float accumulation error when comparing summed tick deltas (seconds)
	TimeEpsilon = 1e-9
)

// Viewport is the fixed logical play area in world units
const (
	ViewportWidth  = 600.0
	ViewportHeight = 600.0
)

// Phase timing
const (
	// RestartDelay is the minimum time in GAME_OVER before CONFIRM returns to TITLE
	RestartDelay = 3000 * time.Millisecond
)

// Title screen animation
const (
	// TitleExitAcceleration is the horizontal acceleration of the exiting title fighter (units/s²)
	TitleExitAcceleration = 200.0

	// TitleExitMargin is how far past the right edge the title fighter travels before play starts
	TitleExitMargin = 50.0

	// TitleBobAmplitude is the per-tick vertical bob offset factor
	TitleBobAmplitude = 0.5

	// TitleBobPeriodMs divides wall-clock milliseconds for the bob phase
	TitleBobPeriodMs = 500.0

	// TitleFighterYOffset places the title fighter below screen center
	TitleFighterYOffset = 50.0
)
