package components

import (
	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/vmath"
)

// BossState is the boss movement/attack state
type BossState int

const (
	BossNormal      BossState = iota // Hover at rest x, track random target y
	BossMovingLeft                   // Sweep to the left edge
	BossWaiting                      // Hold at the left edge
	BossMovingRight                  // Return to rest x
)

// String returns the state name for logs and the status overlay
func (s BossState) String() string {
	switch s {
	case BossNormal:
		return "NORMAL"
	case BossMovingLeft:
		return "MOVING_LEFT"
	case BossWaiting:
		return "WAITING"
	case BossMovingRight:
		return "MOVING_RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Boss is the end-of-wave enemy
type Boss struct {
	X, Y          float64
	TargetY       float64
	Speed         float64
	Width, Height float64
	Hits          int
	State         BossState
	StateTime     float64 // Time spent in the current state (seconds)
}

// NewBoss creates a boss at (x, y) targeting its current y
func NewBoss(x, y float64) Boss {
	return Boss{
		X:       x,
		Y:       y,
		TargetY: y,
		Speed:   constants.BossSpeed,
		Width:   constants.BossWidth,
		Height:  constants.BossHeight,
		State:   BossNormal,
	}
}

// Bounds returns the boss box
func (b *Boss) Bounds() vmath.Rect {
	return vmath.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Muzzle returns the spawn point of aimed shots (left-center)
func (b *Boss) Muzzle() (float64, float64) {
	return b.X, b.Y + b.Height/2
}

// RestX returns the resting x inside a viewport of the given width
func (b *Boss) RestX(viewportWidth float64) float64 {
	return viewportWidth - b.Width - constants.BossRestMargin
}

// Hit registers one impact and reports whether the boss is defeated
func (b *Boss) Hit() bool {
	b.Hits++
	return b.Defeated()
}

// Defeated reports whether accumulated hits reached the defeat threshold
func (b *Boss) Defeated() bool {
	return b.Hits >= constants.BossDefeatHits
}

// Advance runs one step of the boss state machine inside a viewport
func (b *Boss) Advance(dt, viewportWidth, viewportHeight float64, rng vmath.Rand) {
	b.StateTime += dt

	switch b.State {
	case BossNormal:
		b.advanceNormal(dt, viewportWidth, viewportHeight, rng)
	case BossMovingLeft:
		b.advanceMovingLeft(dt)
	case BossWaiting:
		b.advanceWaiting()
	case BossMovingRight:
		b.advanceMovingRight(dt, viewportWidth)
	}
}

func (b *Boss) enter(s BossState) {
	b.State = s
	b.StateTime = 0
}

func (b *Boss) advanceNormal(dt, viewportWidth, viewportHeight float64, rng vmath.Rand) {
	dy := b.Y - b.TargetY
	if dy < 0 {
		dy = -dy
	}
	if dy < constants.BossTargetTolerance {
		span := int(viewportHeight - b.Height - 2*constants.BossTargetMargin)
		b.TargetY = float64(rng.Intn(span)) + constants.BossTargetMargin
	}

	b.Y = vmath.Approach(b.Y, b.TargetY, b.Speed*dt)

	if rng.Float64() < constants.BossRetreatChance {
		b.enter(BossMovingLeft)
	}

	// Ease in from the spawn point
	if b.X > b.RestX(viewportWidth) {
		b.X -= b.Speed * dt
	}
}

func (b *Boss) advanceMovingLeft(dt float64) {
	b.X -= b.Speed * dt
	if b.X <= 0 {
		b.enter(BossWaiting)
	}
}

func (b *Boss) advanceWaiting() {
	if b.StateTime >= constants.BossWaitDuration-constants.TimeEpsilon {
		b.enter(BossMovingRight)
	}
}

func (b *Boss) advanceMovingRight(dt, viewportWidth float64) {
	b.X += b.Speed * dt
	if rest := b.RestX(viewportWidth); b.X >= rest {
		b.X = rest
		b.enter(BossNormal)
	}
}
