// Package input translates terminal key events into game actions
package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/junie-fighter/engine"
)

// DefaultHoldWindow is how long a direction stays pressed after its last key event
const DefaultHoldWindow = 150 * time.Millisecond

// Target receives actions and exposes the phase that decides Space semantics
// Satisfied by *game.Game
type Target interface {
	SubmitAction(a engine.Action, pressed bool)
	Phase() engine.Phase
}

// Mapper emulates held directions on top of terminal key events
// Terminals report presses and auto-repeat but never releases, so a direction
// counts as held until no event for it arrived within the hold window
type Mapper struct {
	mu         sync.Mutex
	table      *KeyTable
	target     Target
	clock      engine.TimeProvider
	holdWindow time.Duration
	held       map[engine.Action]time.Time // Last event time per held direction
}

// NewMapper creates a mapper; nil table takes the defaults, non-positive window takes DefaultHoldWindow
func NewMapper(target Target, clock engine.TimeProvider, holdWindow time.Duration, table *KeyTable) *Mapper {
	if table == nil {
		table = DefaultKeyTable()
	}
	if holdWindow <= 0 {
		holdWindow = DefaultHoldWindow
	}
	return &Mapper{
		table:      table,
		target:     target,
		clock:      clock,
		holdWindow: holdWindow,
		held:       make(map[engine.Action]time.Time),
	}
}

// HandleEvent processes one terminal event and returns the front-end intent, if any
func (m *Mapper) HandleEvent(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return IntentResize
	case *tcell.EventKey:
		return m.handleKey(ev)
	}
	return IntentNone
}

func (m *Mapper) handleKey(ev *tcell.EventKey) IntentType {
	entry, ok := m.table.Lookup(ev)
	if !ok {
		return IntentNone
	}

	switch entry.Behavior {
	case BehaviorDirection:
		m.press(entry.Action)
	case BehaviorConfirm:
		m.target.SubmitAction(entry.Action, true)
	case BehaviorFire:
		if m.target.Phase() == engine.PhasePlaying {
			m.target.SubmitAction(engine.ActionFire, true)
		} else {
			m.target.SubmitAction(engine.ActionConfirm, true)
		}
	case BehaviorSystem:
		return entry.Intent
	}
	return IntentNone
}

func (m *Mapper) press(a engine.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Terminals repeat only the latest key, so the opposite direction is released immediately
	if opp, ok := opposite(a); ok {
		if _, held := m.held[opp]; held {
			delete(m.held, opp)
			m.target.SubmitAction(opp, false)
		}
	}

	if _, held := m.held[a]; !held {
		m.target.SubmitAction(a, true)
	}
	m.held[a] = m.clock.Now()
}

// Expire releases directions whose last event is older than the hold window
// Called once per frame by the front-end loop
func (m *Mapper) Expire() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	for a, last := range m.held {
		if now.Sub(last) >= m.holdWindow {
			delete(m.held, a)
			m.target.SubmitAction(a, false)
		}
	}
}

// ReleaseAll drops every held direction, e.g. on focus loss or shutdown
func (m *Mapper) ReleaseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for a := range m.held {
		delete(m.held, a)
		m.target.SubmitAction(a, false)
	}
}

// Held reports whether a direction is currently held
func (m *Mapper) Held(a engine.Action) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.held[a]
	return ok
}

func opposite(a engine.Action) (engine.Action, bool) {
	switch a {
	case engine.ActionMoveUp:
		return engine.ActionMoveDown, true
	case engine.ActionMoveDown:
		return engine.ActionMoveUp, true
	case engine.ActionMoveLeft:
		return engine.ActionMoveRight, true
	case engine.ActionMoveRight:
		return engine.ActionMoveLeft, true
	}
	return 0, false
}
