package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/junie-fighter/engine"
)

// Names for keys that can't be bare single-char config values
var specialKeyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
}

var runeAliases = map[string]rune{
	"space": ' ',
}

// Binding names as written in config files
var bindingEntries = map[string]KeyEntry{
	"up":      direction(engine.ActionMoveUp),
	"down":    direction(engine.ActionMoveDown),
	"left":    direction(engine.ActionMoveLeft),
	"right":   direction(engine.ActionMoveRight),
	"fire":    {Behavior: BehaviorFire, Action: engine.ActionFire},
	"confirm": {Behavior: BehaviorConfirm, Action: engine.ActionConfirm},
	"quit":    system(IntentQuit),
	"stats":   system(IntentToggleStats),
	"mute":    system(IntentToggleMute),
}

// LoadKeyBindings converts an action -> keys map into a sparse override KeyTable
// Only bindings present in the map are populated
// Returns error on unknown action names or invalid key names
func LoadKeyBindings(bindings map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry),
		Runes:       make(map[rune]KeyEntry),
	}

	for action, keys := range bindings {
		entry, ok := bindingEntries[strings.ToLower(action)]
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q", action)
		}
		for _, key := range keys {
			if err := kt.bind(key, entry); err != nil {
				return nil, fmt.Errorf("keymap: action %q: %w", action, err)
			}
		}
	}
	return kt, nil
}

func (kt *KeyTable) bind(key string, entry KeyEntry) error {
	name := strings.ToLower(strings.TrimSpace(key))
	if k, ok := specialKeyNames[name]; ok {
		kt.SpecialKeys[k] = entry
		return nil
	}
	if r, ok := runeAliases[name]; ok {
		kt.Runes[r] = entry
		return nil
	}
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		kt.Runes[r] = entry
		return nil
	}
	return fmt.Errorf("invalid key name %q", key)
}
