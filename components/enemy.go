package components

import (
	"math"

	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/vmath"
)

// Enemy is a wave craft drifting left on a sine path
type Enemy struct {
	X, Y          float64
	BaseY         float64
	Time          float64 // Local time since spawn (seconds)
	Speed         float64
	Width, Height float64
}

// NewEnemy creates an enemy whose path oscillates around y
func NewEnemy(x, y float64) Enemy {
	return Enemy{
		X:      x,
		Y:      y,
		BaseY:  y,
		Speed:  constants.EnemySpeed,
		Width:  constants.EnemyWidth,
		Height: constants.EnemyHeight,
	}
}

// Advance moves left and recomputes the wave offset from local time
func (e *Enemy) Advance(dt float64) {
	e.Time += dt
	e.X -= e.Speed * dt
	e.Y = e.BaseY + math.Sin(e.Time*constants.EnemyWaveFrequency)*constants.EnemyWaveAmplitude
}

// Bounds returns the enemy's box
func (e *Enemy) Bounds() vmath.Rect {
	return vmath.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Offscreen reports whether the enemy fully left past the left edge
func (e *Enemy) Offscreen() bool {
	return e.X < -e.Width
}

// Muzzle returns the spawn point of an enemy shot
func (e *Enemy) Muzzle() (float64, float64) {
	return e.X + e.Width, e.Y + e.Height/2
}
