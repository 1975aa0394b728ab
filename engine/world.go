package engine

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/junie-fighter/components"
	"github.com/lixenwraith/junie-fighter/events"
	"github.com/lixenwraith/junie-fighter/vmath"
)

// World is the simulation context passed to every system
// Not safe for concurrent use; the owner serializes access
type World struct {
	Width, Height float64

	Phase Phase
	Score int
	Frame int64     // Tick counter
	Now   time.Time // Clock sample taken at the start of the tick

	Fighter      components.Fighter
	Bullets      []components.Bullet
	Enemies      []components.Enemy
	EnemyBullets []components.EnemyBullet
	Boss         *components.Boss // nil when absent
	Explosions   []components.Explosion

	PlayStart  time.Time
	GameOverAt time.Time

	Intent Intent
	Rand   vmath.Rand
	Events *events.EventQueue
	Logger zerolog.Logger

	systems []System
}

// NewWorld creates an empty world in TITLE
func NewWorld(width, height float64, rng vmath.Rand, logger zerolog.Logger) *World {
	w := &World{
		Width:  width,
		Height: height,
		Phase:  PhaseTitle,
		Rand:   rng,
		Events: events.NewEventQueue(),
		Logger: logger,
	}
	w.ResetFighter()
	return w
}

// AddSystem registers a system, keeping priority order
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// UpdateSystems runs systems in priority order
// Stops early once a system ends the round, so nothing advances past game over
func (w *World) UpdateSystems(dt float64) {
	for _, s := range w.systems {
		s.Update(w, dt)
		if w.Phase != PhasePlaying {
			return
		}
	}
}

// PlayElapsedMs returns milliseconds since the PLAYING start timestamp
func (w *World) PlayElapsedMs() int64 {
	return w.Now.Sub(w.PlayStart).Milliseconds()
}

// Emit queues an event stamped with the current tick
func (w *World) Emit(t events.EventType, payload any) {
	w.Events.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     w.Frame,
		Timestamp: w.Now,
	})
}

// SetPhase switches phase and emits EventPhaseChanged, no-op when unchanged
func (w *World) SetPhase(p Phase) {
	if w.Phase == p {
		return
	}
	from := w.Phase
	w.Phase = p
	w.Emit(events.EventPhaseChanged, &events.PhaseChangedPayload{From: from.String(), To: p.String()})
	w.Logger.Debug().Str("from", from.String()).Str("to", p.String()).Int64("frame", w.Frame).Msg("phase changed")
}

// ResetFighter places a fresh fighter at the round spawn point
func (w *World) ResetFighter() {
	w.Fighter = components.NewFighter(w.Width/4, w.Height/2)
}

// ClearEntities removes every entity including the boss
func (w *World) ClearEntities() {
	w.Bullets = w.Bullets[:0]
	w.Enemies = w.Enemies[:0]
	w.EnemyBullets = w.EnemyBullets[:0]
	w.Explosions = w.Explosions[:0]
	w.Boss = nil
}

// StartRound resets the fighter and collections and enters PLAYING
func (w *World) StartRound() {
	w.ResetFighter()
	w.ClearEntities()
	w.PlayStart = w.Now
	w.SetPhase(PhasePlaying)
}

// EndRound enters GAME_OVER, clearing hazards and keeping score and explosions
func (w *World) EndRound(reason events.GameOverReason) {
	w.Enemies = w.Enemies[:0]
	w.EnemyBullets = w.EnemyBullets[:0]
	w.Boss = nil
	w.GameOverAt = w.Now

	w.SetPhase(PhaseGameOver)
	w.Emit(events.EventGameOver, &events.GameOverPayload{Score: w.Score, Reason: reason})
	w.Logger.Info().Int("score", w.Score).Str("reason", string(reason)).Int64("play_ms", w.PlayElapsedMs()).Msg("game over")
}
