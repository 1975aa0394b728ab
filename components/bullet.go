package components

import "github.com/lixenwraith/junie-fighter/constants"

// Bullet is a player projectile travelling right
type Bullet struct {
	X, Y   float64
	Radius float64
	VX     float64
}

// NewBullet creates a player bullet centered at (x, y)
func NewBullet(x, y float64) Bullet {
	return Bullet{
		X:      x,
		Y:      y,
		Radius: constants.BulletRadius,
		VX:     constants.BulletVelocityX,
	}
}

// Advance integrates position
func (b *Bullet) Advance(dt float64) {
	b.X += b.VX * dt
}

// Offscreen reports whether the bullet left past the right edge
func (b *Bullet) Offscreen(width float64) bool {
	return b.X > width
}

// EnemyBullet is a hostile projectile, straight or aimed
type EnemyBullet struct {
	X, Y   float64
	Radius float64
	VX, VY float64
}

// NewEnemyBullet creates a straight-left enemy shot
func NewEnemyBullet(x, y float64) EnemyBullet {
	return EnemyBullet{
		X:      x,
		Y:      y,
		Radius: constants.EnemyBulletRadius,
		VX:     -constants.EnemyBulletSpeed,
	}
}

// NewAimedEnemyBullet creates a shot along (dirX, dirY) scaled by speed
// The direction is expected normalized; a zero direction yields a stationary bullet
func NewAimedEnemyBullet(x, y, dirX, dirY, speed float64) EnemyBullet {
	return EnemyBullet{
		X:      x,
		Y:      y,
		Radius: constants.EnemyBulletRadius,
		VX:     dirX * speed,
		VY:     dirY * speed,
	}
}

// Advance integrates position
func (b *EnemyBullet) Advance(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// Offscreen reports whether the bullet is outside the viewport by more than its radius
func (b *EnemyBullet) Offscreen(width, height float64) bool {
	return b.X < -b.Radius || b.X > width+b.Radius ||
		b.Y < -b.Radius || b.Y > height+b.Radius
}
