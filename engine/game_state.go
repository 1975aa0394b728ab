package engine

// Phase is the top-level game mode gating which systems run
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name for logs, events and the overlay
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "TITLE"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}
