// Package game owns the phase state machine and the tick entry point
package game

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/engine"
	"github.com/lixenwraith/junie-fighter/events"
	"github.com/lixenwraith/junie-fighter/status"
	"github.com/lixenwraith/junie-fighter/systems"
	"github.com/lixenwraith/junie-fighter/vmath"
)

// ErrInvalidViewport is returned when the viewport cannot hold the boss target range
var ErrInvalidViewport = errors.New("invalid viewport")

// Options configures a Game; zero fields take defaults
type Options struct {
	Width, Height float64             // Default: constants viewport
	Clock         engine.TimeProvider // Default: monotonic clock
	Rand          vmath.Rand          // Default: FastRand seeded from the clock
	Logger        *zerolog.Logger     // Default: discard
	Status        *status.Registry    // Default: private registry
}

// Game runs the simulation behind a lock
// AdvanceTick is driven by one goroutine; SubmitAction, Snapshot and DrainEvents are safe from any
type Game struct {
	mu     sync.RWMutex
	world  *engine.World
	title  TitleFighter
	clock  engine.TimeProvider
	input  engine.InputState
	status *status.Registry

	// Cached metric pointers
	statEnemies      *atomic.Int64
	statBullets      *atomic.Int64
	statEnemyBullets *atomic.Int64
	statExplosions   *atomic.Int64
	statScore        *atomic.Int64
	statPhase        *status.AtomicString
	statBoss         *status.AtomicString
	statBossPresent  *atomic.Bool
}

// New validates the viewport and builds a game in TITLE
func New(opts Options) (*Game, error) {
	width, height := opts.Width, opts.Height
	if width == 0 && height == 0 {
		width, height = constants.ViewportWidth, constants.ViewportHeight
	}
	if width <= 0 || height-constants.BossHeight-2*constants.BossTargetMargin <= 0 {
		return nil, fmt.Errorf("%w: %.0fx%.0f cannot fit boss height %.0f with margin %.0f",
			ErrInvalidViewport, width, height, constants.BossHeight, constants.BossTargetMargin)
	}

	clock := opts.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	rng := opts.Rand
	if rng == nil {
		rng = vmath.NewFastRand(uint64(clock.Now().UnixNano()))
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}

	w := engine.NewWorld(width, height, rng, logger.With().Str("component", "game").Logger())
	w.Now = clock.Now()
	w.AddSystem(systems.NewFighterSystem())
	w.AddSystem(systems.NewBulletSystem())
	w.AddSystem(systems.NewEnemySystem())
	w.AddSystem(systems.NewBossSystem())
	w.AddSystem(systems.NewEnemyBulletSystem())
	w.AddSystem(systems.NewExplosionSystem())
	w.AddSystem(systems.NewCollisionSystem())

	g := &Game{
		world:            w,
		title:            newTitleFighter(width, height),
		clock:            clock,
		status:           reg,
		statEnemies:      reg.Ints.Get("world.enemies"),
		statBullets:      reg.Ints.Get("world.bullets"),
		statEnemyBullets: reg.Ints.Get("world.enemy_bullets"),
		statExplosions:   reg.Ints.Get("world.explosions"),
		statScore:        reg.Ints.Get("game.score"),
		statPhase:        reg.Strings.Get("game.phase"),
		statBoss:         reg.Strings.Get("boss.state"),
		statBossPresent:  reg.Bools.Get("boss.present"),
	}
	g.publishMetrics()
	return g, nil
}

// Status returns the metric registry the game writes to
func (g *Game) Status() *status.Registry {
	return g.status
}

// Phase returns the phase after the last completed tick
func (g *Game) Phase() engine.Phase {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.world.Phase
}

// SubmitAction records input for the next tick
// Directions are held state; CONFIRM and FIRE act only on press
func (g *Game) SubmitAction(a engine.Action, pressed bool) {
	g.input.Submit(a, pressed)
}

// DrainEvents returns and clears the notifications produced since the last call
func (g *Game) DrainEvents() []events.GameEvent {
	return g.world.Events.Consume()
}

// AdvanceTick runs one simulation step of dt seconds
func (g *Game) AdvanceTick(dt float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.world
	w.Frame++
	w.Now = g.clock.Now()

	held, edges := g.input.Drain()
	w.Intent = engine.Intent{DX: held.DX, DY: held.DY}
	transitioned := g.applyEdges(edges)

	switch w.Phase {
	case engine.PhaseTitle:
		if g.title.advance(dt, w.Now, w.Width) && !transitioned {
			w.StartRound()
		}
	case engine.PhasePlaying:
		w.UpdateSystems(dt)
	case engine.PhaseGameOver:
		systems.AdvanceExplosions(w, dt)
	}

	g.publishMetrics()
}

// applyEdges reacts to queued presses in arrival order
// Once one of them changes phase the rest of the tick's presses are dropped
func (g *Game) applyEdges(edges []engine.Action) bool {
	w := g.world
	for _, a := range edges {
		switch a {
		case engine.ActionFire:
			if w.Phase == engine.PhasePlaying {
				w.Intent.Fire = true
			}

		case engine.ActionConfirm:
			switch w.Phase {
			case engine.PhaseTitle:
				if g.title.start() {
					w.Emit(events.EventConfirm, nil)
					w.Logger.Debug().Int64("frame", w.Frame).Msg("title exit started")
				}
			case engine.PhaseGameOver:
				if w.Now.Sub(w.GameOverAt) >= constants.RestartDelay {
					w.Emit(events.EventConfirm, nil)
					g.returnToTitle()
					return true
				}
			}
		}
	}
	return false
}

// returnToTitle resets score, entities, fighter, held input and title animation
func (g *Game) returnToTitle() {
	w := g.world
	w.Score = 0
	w.ClearEntities()
	w.ResetFighter()
	g.input.Reset()
	g.title = newTitleFighter(w.Width, w.Height)
	w.SetPhase(engine.PhaseTitle)
}

func (g *Game) publishMetrics() {
	w := g.world
	g.statEnemies.Store(int64(len(w.Enemies)))
	g.statBullets.Store(int64(len(w.Bullets)))
	g.statEnemyBullets.Store(int64(len(w.EnemyBullets)))
	g.statExplosions.Store(int64(len(w.Explosions)))
	g.statScore.Store(int64(w.Score))
	g.statPhase.Store(w.Phase.String())
	g.statBossPresent.Store(w.Boss != nil)
	if w.Boss != nil {
		g.statBoss.Store(w.Boss.State.String())
	} else {
		g.statBoss.Store("-")
	}
}
