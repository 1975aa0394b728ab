package input

// IntentType discriminates what the front-end should do after a key
// Gameplay actions go straight to the sink and report IntentNone
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C
	IntentToggleStats // Tab
	IntentToggleMute  // m
	IntentResize      // Terminal resize event
)

func (t IntentType) String() string {
	switch t {
	case IntentNone:
		return "none"
	case IntentQuit:
		return "quit"
	case IntentToggleStats:
		return "toggle_stats"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentResize:
		return "resize"
	default:
		return "unknown"
	}
}
