package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/junie-fighter/engine"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone      KeyBehavior = iota
	BehaviorDirection             // Held movement, released after the hold window
	BehaviorConfirm               // Edge CONFIRM in every phase
	BehaviorFire                  // FIRE while playing, CONFIRM otherwise
	BehaviorSystem                // Front-end intent, never reaches the game
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior KeyBehavior
	Action   engine.Action
	Intent   IntentType
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

func direction(a engine.Action) KeyEntry {
	return KeyEntry{Behavior: BehaviorDirection, Action: a}
}

func system(i IntentType) KeyEntry {
	return KeyEntry{Behavior: BehaviorSystem, Intent: i}
}

// DefaultKeyTable returns the default key bindings
// Arrows, WASD and hjkl all steer; Space fires
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     direction(engine.ActionMoveUp),
			tcell.KeyDown:   direction(engine.ActionMoveDown),
			tcell.KeyLeft:   direction(engine.ActionMoveLeft),
			tcell.KeyRight:  direction(engine.ActionMoveRight),
			tcell.KeyEnter:  {Behavior: BehaviorConfirm, Action: engine.ActionConfirm},
			tcell.KeyEscape: system(IntentQuit),
			tcell.KeyCtrlC:  system(IntentQuit),
			tcell.KeyCtrlQ:  system(IntentQuit),
			tcell.KeyTab:    system(IntentToggleStats),
		},

		Runes: map[rune]KeyEntry{
			// Basic motions
			'w': direction(engine.ActionMoveUp),
			's': direction(engine.ActionMoveDown),
			'a': direction(engine.ActionMoveLeft),
			'd': direction(engine.ActionMoveRight),
			'k': direction(engine.ActionMoveUp),
			'j': direction(engine.ActionMoveDown),
			'h': direction(engine.ActionMoveLeft),
			'l': direction(engine.ActionMoveRight),

			' ': {Behavior: BehaviorFire, Action: engine.ActionFire},
			'q': system(IntentQuit),
			'm': system(IntentToggleMute),
		},
	}
}

// Lookup resolves a key event to its entry
// Runes are matched case-insensitively so Shift does not drop input
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if e, ok := kt.Runes[r]; ok {
			return e, true
		}
		if r >= 'A' && r <= 'Z' {
			e, ok := kt.Runes[r+'a'-'A']
			return e, ok
		}
		return KeyEntry{}, false
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}

// Merge applies overrides on top of the table; override entries win
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for k, v := range override.SpecialKeys {
		kt.SpecialKeys[k] = v
	}
	for r, v := range override.Runes {
		kt.Runes[r] = v
	}
}
