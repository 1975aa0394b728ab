package systems

import (
	"github.com/lixenwraith/junie-fighter/components"
	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/engine"
	"github.com/lixenwraith/junie-fighter/events"
	"github.com/lixenwraith/junie-fighter/vmath"
)

// CollisionSystem resolves all hits once per tick after every entity moved
// Fighter deaths are checked first and end the pass; player bullets resolve after
type CollisionSystem struct{}

// NewCollisionSystem creates the collision system
func NewCollisionSystem() engine.System {
	return &CollisionSystem{}
}

// Priority returns the run order slot (lower runs first)
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update ends the round on a fighter hit, otherwise resolves player bullets against enemies and the boss
func (s *CollisionSystem) Update(w *engine.World, dt float64) {
	if reason, hit := fighterHit(w); hit {
		w.EndRound(reason)
		return
	}
	s.resolveBullets(w)
}

// fighterHit tests enemy bullets, then enemies, then the boss against the fighter center
func fighterHit(w *engine.World) (events.GameOverReason, bool) {
	fx, fy := w.Fighter.Center()

	for _, b := range w.EnemyBullets {
		if vmath.Distance(fx, fy, b.X, b.Y) < b.Radius {
			return events.ReasonBulletContact, true
		}
	}

	for i := range w.Enemies {
		ex, ey := w.Enemies[i].Bounds().Center()
		if vmath.Distance(fx, fy, ex, ey) < constants.ContactDistance {
			return events.ReasonEnemyContact, true
		}
	}

	if w.Boss != nil {
		bx, by := w.Boss.Bounds().Center()
		if vmath.Distance(fx, fy, bx, by) < constants.ContactDistance {
			return events.ReasonBossContact, true
		}
	}

	return "", false
}

// resolveBullets consumes each bullet on the first enemy it hits, else on the boss
func (s *CollisionSystem) resolveBullets(w *engine.World) {
	live := w.Bullets[:0]
	for i, b := range w.Bullets {
		if s.hitEnemy(w, b) {
			continue
		}

		if w.Boss != nil && vmath.CircleHitsRect(b.X, b.Y, b.Radius, w.Boss.Bounds()) {
			if w.Boss.Hit() {
				// Remaining bullets are moot once the round ends
				w.Bullets = append(live, w.Bullets[i+1:]...)
				s.defeatBoss(w)
				return
			}
			w.Emit(events.EventBossHit, &events.BossHitPayload{Hits: w.Boss.Hits})
			continue
		}

		live = append(live, b)
	}
	w.Bullets = live
}

// hitEnemy destroys the first enemy containing the bullet and reports whether one was found
func (s *CollisionSystem) hitEnemy(w *engine.World, b components.Bullet) bool {
	for j := range w.Enemies {
		e := w.Enemies[j]
		box := e.Bounds()
		if !vmath.CircleHitsRect(b.X, b.Y, b.Radius, box) {
			continue
		}

		w.Enemies = append(w.Enemies[:j], w.Enemies[j+1:]...)
		w.Explosions = append(w.Explosions, components.NewExplosion(e.X, e.Y, e.Width, e.Height, false))
		w.Score += constants.EnemyKillScore

		cx, cy := box.Center()
		w.Emit(events.EventEnemyHit, &events.HitPayload{X: cx, Y: cy, Score: w.Score})
		return true
	}
	return false
}

func (s *CollisionSystem) defeatBoss(w *engine.World) {
	b := w.Boss
	w.Boss = nil
	w.Explosions = append(w.Explosions, components.NewExplosion(b.X, b.Y, b.Width, b.Height, true))
	w.Score += constants.BossDefeatScore

	cx, cy := b.Bounds().Center()
	w.Emit(events.EventBossDefeated, &events.HitPayload{X: cx, Y: cy, Score: w.Score})
	w.Logger.Info().Int("score", w.Score).Int64("play_ms", w.PlayElapsedMs()).Msg("boss defeated")

	w.EndRound(events.ReasonBossDefeated)
}
