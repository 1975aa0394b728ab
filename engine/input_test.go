package engine

import "testing"

// TestInputIntentAxes verifies opposing held directions cancel per axis
func TestInputIntentAxes(t *testing.T) {
	var s InputState
	s.Submit(ActionMoveLeft, true)
	s.Submit(ActionMoveRight, true)
	s.Submit(ActionMoveDown, true)

	in, edges := s.Drain()
	if in.DX != 0 || in.DY != 1 {
		t.Errorf("Expected (0,1), got (%d,%d)", in.DX, in.DY)
	}
	if len(edges) != 0 {
		t.Errorf("Expected no edges, got %v", edges)
	}

	s.Submit(ActionMoveLeft, false)
	in, _ = s.Drain()
	if in.DX != 1 {
		t.Errorf("Expected DX 1 after releasing left, got %d", in.DX)
	}
}

// TestInputEdgesQueuedOnPress verifies only presses queue, in order, and drain clears them
func TestInputEdgesQueuedOnPress(t *testing.T) {
	var s InputState
	s.Submit(ActionFire, true)
	s.Submit(ActionFire, false)
	s.Submit(ActionConfirm, true)

	_, edges := s.Drain()
	if len(edges) != 2 || edges[0] != ActionFire || edges[1] != ActionConfirm {
		t.Fatalf("Unexpected edges %v", edges)
	}
	if _, again := s.Drain(); len(again) != 0 {
		t.Errorf("Expected edges cleared, got %v", again)
	}
}

// TestInputHeldSurvivesDrain verifies directions persist across ticks until released
func TestInputHeldSurvivesDrain(t *testing.T) {
	var s InputState
	s.Submit(ActionMoveUp, true)
	s.Drain()

	in, _ := s.Drain()
	if in.DY != -1 {
		t.Errorf("Expected held up on second drain, got %d", in.DY)
	}

	s.Reset()
	in, _ = s.Drain()
	if in != (Intent{}) {
		t.Errorf("Expected zero intent after reset, got %+v", in)
	}
}

func TestActionIsEdge(t *testing.T) {
	if !ActionConfirm.IsEdge() || !ActionFire.IsEdge() {
		t.Error("CONFIRM and FIRE are edge actions")
	}
	if ActionMoveUp.IsEdge() {
		t.Error("MOVE_UP is a held action")
	}
}
