package components

import (
	"time"

	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/vmath"
)

// Fighter is the player craft
type Fighter struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	LastShot      time.Time // Zero until the first accepted shot
}

// NewFighter creates a fighter with its top-left corner at (x, y)
func NewFighter(x, y float64) Fighter {
	return Fighter{
		X:      x,
		Y:      y,
		Width:  constants.FighterWidth,
		Height: constants.FighterHeight,
		Speed:  constants.FighterSpeed,
	}
}

// Bounds returns the fighter's box
func (f *Fighter) Bounds() vmath.Rect {
	return vmath.Rect{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height}
}

// Center returns the fighter's midpoint
func (f *Fighter) Center() (float64, float64) {
	return f.X + f.Width/2, f.Y + f.Height/2
}

// Advance moves the fighter along intent (dx, dy ∈ {-1,0,1})
// Diagonal intent is normalized so diagonal speed equals axial speed
func (f *Fighter) Advance(dx, dy int, dt float64) {
	if dx == 0 && dy == 0 {
		return
	}
	nx, ny := vmath.Normalize2D(float64(dx), float64(dy))
	f.X += nx * f.Speed * dt
	f.Y += ny * f.Speed * dt
}

// Clamp keeps the fighter fully inside a width x height viewport
func (f *Fighter) Clamp(width, height float64) {
	f.X = vmath.Clamp(f.X, 0, width-f.Width)
	f.Y = vmath.Clamp(f.Y, 0, height-f.Height)
}

// CanShoot reports whether the shot cooldown has elapsed at now
func (f *Fighter) CanShoot(now time.Time) bool {
	return f.LastShot.IsZero() || now.Sub(f.LastShot) >= constants.FighterShotCooldown
}

// Muzzle returns the spawn point of a new bullet (right-center)
func (f *Fighter) Muzzle() (float64, float64) {
	return f.X + f.Width, f.Y + f.Height/2
}
