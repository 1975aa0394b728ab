package game

import (
	"slices"

	"github.com/lixenwraith/junie-fighter/components"
	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/engine"
)

// Snapshot is a deep copy of the world after a completed tick
// Owned by the caller; mutating it never affects the simulation
type Snapshot struct {
	Phase         engine.Phase
	Score         int
	Frame         int64
	Width, Height float64

	Fighter components.Fighter
	Title   TitleFighter

	Bullets      []components.Bullet
	Enemies      []components.Enemy
	EnemyBullets []components.EnemyBullet
	Explosions   []components.Explosion

	Boss        components.Boss
	BossPresent bool

	PlayElapsedMs int64 // Zero outside PLAYING
	RestartInMs   int64 // Time left before CONFIRM restarts, zero when allowed or not in GAME_OVER
}

// Snapshot copies the last completed tick under the read lock
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w := g.world
	s := Snapshot{
		Phase:        w.Phase,
		Score:        w.Score,
		Frame:        w.Frame,
		Width:        w.Width,
		Height:       w.Height,
		Fighter:      w.Fighter,
		Title:        g.title,
		Bullets:      slices.Clone(w.Bullets),
		Enemies:      slices.Clone(w.Enemies),
		EnemyBullets: slices.Clone(w.EnemyBullets),
		Explosions:   slices.Clone(w.Explosions),
	}
	if w.Boss != nil {
		s.Boss = *w.Boss
		s.BossPresent = true
	}

	switch w.Phase {
	case engine.PhasePlaying:
		s.PlayElapsedMs = w.PlayElapsedMs()
	case engine.PhaseGameOver:
		s.RestartInMs = max(0, (constants.RestartDelay - w.Now.Sub(w.GameOverAt)).Milliseconds())
	}
	return s
}
