package systems

import (
	"github.com/lixenwraith/junie-fighter/components"
	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/engine"
)

// EnemySystem spawns the opening wave, moves enemies and rolls their shots
type EnemySystem struct{}

// NewEnemySystem creates the enemy wave system
func NewEnemySystem() engine.System {
	return &EnemySystem{}
}

// Priority returns the run order slot (lower runs first)
func (s *EnemySystem) Priority() int {
	return constants.PriorityEnemy
}

// Update rolls a spawn, then moves each enemy, culls it past the left edge or rolls its shot
func (s *EnemySystem) Update(w *engine.World, dt float64) {
	t := w.PlayElapsedMs()
	s.spawn(w, t)

	live := w.Enemies[:0]
	for _, e := range w.Enemies {
		e.Advance(dt)
		if e.Offscreen() {
			continue
		}
		if t > constants.EnemyFireStartMs && w.Rand.Float64() < constants.EnemyFireChance {
			x, y := e.Muzzle()
			w.EnemyBullets = append(w.EnemyBullets, components.NewEnemyBullet(x, y))
		}
		live = append(live, e)
	}
	w.Enemies = live
}

// spawn rolls at most one new enemy under the ramping cap min(5, 1 + t/2000)
func (s *EnemySystem) spawn(w *engine.World, t int64) {
	if t >= constants.EnemySpawnWindowMs || len(w.Enemies) >= constants.MaxEnemies {
		return
	}
	if w.Rand.Float64() >= constants.EnemySpawnChance {
		return
	}
	if len(w.Enemies) >= SpawnCap(t) {
		return
	}

	span := int(w.Height - 2*constants.EnemySpawnMarginY)
	y := constants.EnemySpawnMarginY + float64(w.Rand.Intn(span))
	w.Enemies = append(w.Enemies, components.NewEnemy(w.Width+constants.EnemySpawnOffsetX, y))
}

// SpawnCap returns the live enemy cap at t milliseconds into the round
func SpawnCap(t int64) int {
	return int(min(constants.MaxEnemies, 1+t/constants.EnemyRampIntervalMs))
}
