package systems

import (
	"github.com/lixenwraith/junie-fighter/components"
	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/engine"
	"github.com/lixenwraith/junie-fighter/events"
)

// FighterSystem applies the tick intent to the player craft
// Fire is handled before movement so the shot leaves from where the key was pressed
type FighterSystem struct{}

// NewFighterSystem creates the player craft system
func NewFighterSystem() engine.System {
	return &FighterSystem{}
}

// Priority returns the run order slot (lower runs first)
func (s *FighterSystem) Priority() int {
	return constants.PriorityFighter
}

// Update fires if the intent asks and the cooldown and cap allow, then moves and clamps
func (s *FighterSystem) Update(w *engine.World, dt float64) {
	f := &w.Fighter

	if w.Intent.Fire && f.CanShoot(w.Now) && len(w.Bullets) < constants.MaxPlayerBullets {
		x, y := f.Muzzle()
		w.Bullets = append(w.Bullets, components.NewBullet(x, y))
		f.LastShot = w.Now
		w.Emit(events.EventPlayerShot, &events.ShotPayload{X: x, Y: y})
	}

	f.Advance(w.Intent.DX, w.Intent.DY, dt)
	f.Clamp(w.Width, w.Height)
}
