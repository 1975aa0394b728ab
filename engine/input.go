package engine

import "sync"

// Action is an abstract player input
type Action int

const (
	ActionMoveUp Action = iota
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionConfirm
	ActionFire
)

func (a Action) String() string {
	switch a {
	case ActionMoveUp:
		return "MOVE_UP"
	case ActionMoveDown:
		return "MOVE_DOWN"
	case ActionMoveLeft:
		return "MOVE_LEFT"
	case ActionMoveRight:
		return "MOVE_RIGHT"
	case ActionConfirm:
		return "CONFIRM"
	case ActionFire:
		return "FIRE"
	default:
		return "UNKNOWN"
	}
}

// IsEdge reports whether the action triggers on press rather than being held
func (a Action) IsEdge() bool {
	return a == ActionConfirm || a == ActionFire
}

// Intent is the per-tick player input, computed once before systems run
type Intent struct {
	DX, DY int // Each in {-1, 0, 1}
	Fire   bool
}

// InputState accumulates actions between ticks
// Submit is called from the input goroutine, Drain from the tick
type InputState struct {
	mu                    sync.Mutex
	up, down, left, right bool
	pending               []Action
}

// Submit records a held direction change or queues an edge action
// Edge actions with pressed == false are ignored
func (s *InputState) Submit(a Action, pressed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.IsEdge() {
		if pressed {
			s.pending = append(s.pending, a)
		}
		return
	}

	switch a {
	case ActionMoveUp:
		s.up = pressed
	case ActionMoveDown:
		s.down = pressed
	case ActionMoveLeft:
		s.left = pressed
	case ActionMoveRight:
		s.right = pressed
	}
}

// Drain returns the held-direction intent and the queued edge actions in arrival order
func (s *InputState) Drain() (Intent, []Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var in Intent
	if s.left {
		in.DX--
	}
	if s.right {
		in.DX++
	}
	if s.up {
		in.DY--
	}
	if s.down {
		in.DY++
	}

	edges := s.pending
	s.pending = nil
	return in, edges
}

// Reset releases all held directions and drops queued edges
func (s *InputState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.up, s.down, s.left, s.right = false, false, false, false
	s.pending = nil
}
