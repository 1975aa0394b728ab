package systems

import (
	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/engine"
)

// EnemyBulletSystem moves enemy and boss shots and drops those outside the viewport
type EnemyBulletSystem struct{}

// NewEnemyBulletSystem creates the hostile projectile system
func NewEnemyBulletSystem() engine.System {
	return &EnemyBulletSystem{}
}

// Priority returns the run order slot (lower runs first)
func (s *EnemyBulletSystem) Priority() int {
	return constants.PriorityEnemyBullet
}

// Update advances every enemy shot and compacts out those past the viewport margin
func (s *EnemyBulletSystem) Update(w *engine.World, dt float64) {
	live := w.EnemyBullets[:0]
	for _, b := range w.EnemyBullets {
		b.Advance(dt)
		if b.Offscreen(w.Width, w.Height) {
			continue
		}
		live = append(live, b)
	}
	w.EnemyBullets = live
}
