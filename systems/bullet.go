package systems

import (
	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/engine"
)

// BulletSystem moves player bullets and drops those past the right edge
type BulletSystem struct{}

// NewBulletSystem creates the player bullet system
func NewBulletSystem() engine.System {
	return &BulletSystem{}
}

// Priority returns the run order slot (lower runs first)
func (s *BulletSystem) Priority() int {
	return constants.PriorityBullet
}

// Update advances every bullet and compacts out those past the right edge in place
func (s *BulletSystem) Update(w *engine.World, dt float64) {
	live := w.Bullets[:0]
	for _, b := range w.Bullets {
		b.Advance(dt)
		if b.Offscreen(w.Width) {
			continue
		}
		live = append(live, b)
	}
	w.Bullets = live
}
