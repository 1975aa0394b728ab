package systems

import (
	"github.com/lixenwraith/junie-fighter/components"
	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/engine"
	"github.com/lixenwraith/junie-fighter/vmath"
)

// BossSystem spawns the boss once the wave is cleared, runs its state machine and aimed fire
type BossSystem struct{}

// NewBossSystem creates the boss system
func NewBossSystem() engine.System {
	return &BossSystem{}
}

// Priority returns the run order slot (lower runs first)
func (s *BossSystem) Priority() int {
	return constants.PriorityBoss
}

// Update spawns the boss when due, steps its state machine and rolls an aimed shot
func (s *BossSystem) Update(w *engine.World, dt float64) {
	if w.Boss == nil && len(w.Enemies) == 0 && w.PlayElapsedMs() > constants.BossSpawnAfterMs {
		b := components.NewBoss(w.Width+constants.BossSpawnOffsetX, w.Height/2)
		w.Boss = &b
		w.Logger.Debug().Int64("play_ms", w.PlayElapsedMs()).Msg("boss spawned")
	}
	if w.Boss == nil {
		return
	}

	prev := w.Boss.State
	w.Boss.Advance(dt, w.Width, w.Height, w.Rand)
	if w.Boss.State != prev {
		w.Logger.Trace().Str("from", prev.String()).Str("to", w.Boss.State.String()).Msg("boss state")
	}

	if w.Rand.Float64() < constants.BossFireChance && len(w.EnemyBullets) < constants.MaxBossEnemyBullets {
		w.EnemyBullets = append(w.EnemyBullets, aimedShot(w))
	}
}

// aimedShot builds a bullet from the boss muzzle toward the jittered fighter center
func aimedShot(w *engine.World) components.EnemyBullet {
	fx, fy := w.Fighter.Center()
	tx := fx + float64(w.Rand.Intn(2*constants.BossAimJitter)-constants.BossAimJitter)
	ty := fy + float64(w.Rand.Intn(2*constants.BossAimJitter)-constants.BossAimJitter)

	mx, my := w.Boss.Muzzle()
	dx, dy := vmath.Normalize2D(tx-mx, ty-my)
	return components.NewAimedEnemyBullet(mx, my, dx, dy, constants.AimedBulletSpeed)
}
