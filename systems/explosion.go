package systems

import (
	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/engine"
)

// ExplosionSystem animates explosions and removes finished ones
type ExplosionSystem struct{}

// NewExplosionSystem creates the explosion animation system
func NewExplosionSystem() engine.System {
	return &ExplosionSystem{}
}

// Priority returns the run order slot (lower runs first)
func (s *ExplosionSystem) Priority() int {
	return constants.PriorityExplosion
}

// Update steps explosion animations during PLAYING
func (s *ExplosionSystem) Update(w *engine.World, dt float64) {
	AdvanceExplosions(w, dt)
}

// AdvanceExplosions is also called directly during GAME_OVER
func AdvanceExplosions(w *engine.World, dt float64) {
	live := w.Explosions[:0]
	for _, e := range w.Explosions {
		e.Advance(dt)
		if e.Finished() {
			continue
		}
		live = append(live, e)
	}
	w.Explosions = live
}
