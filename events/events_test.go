package events

import (
	"sync"
	"testing"

	"github.com/lixenwraith/junie-fighter/constants"
)

// TestQueueFIFO verifies events come out in push order
func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventPlayerShot, Frame: 1})
	q.Push(GameEvent{Type: EventEnemyHit, Frame: 2})

	if q.Len() != 2 {
		t.Fatalf("Expected 2 pending, got %d", q.Len())
	}
	got := q.Consume()
	if len(got) != 2 || got[0].Type != EventPlayerShot || got[1].Type != EventEnemyHit {
		t.Fatalf("Unexpected order: %+v", got)
	}
	if q.Consume() != nil {
		t.Error("Expected nil after drain")
	}
}

// TestQueueOverflowKeepsNewest verifies overflow drops the oldest events
func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := constants.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Frame: int64(i)})
	}

	got := q.Consume()
	if len(got) != constants.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", constants.EventQueueSize, len(got))
	}
	if got[0].Frame != 10 {
		t.Errorf("Expected oldest kept frame 10, got %d", got[0].Frame)
	}
	if got[len(got)-1].Frame != int64(total-1) {
		t.Errorf("Expected newest frame %d, got %d", total-1, got[len(got)-1].Frame)
	}
}

// TestQueueRefillsAfterWrappedDrain verifies a drained ring starts clean after wrapping
func TestQueueRefillsAfterWrappedDrain(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < constants.EventQueueSize+3; i++ {
		q.Push(GameEvent{Frame: int64(i)})
	}
	q.Consume()

	q.Push(GameEvent{Frame: 500})
	q.Push(GameEvent{Frame: 501})
	got := q.Consume()
	if len(got) != 2 || got[0].Frame != 500 || got[1].Frame != 501 {
		t.Errorf("Unexpected events after refill: %+v", got)
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
}

// TestQueueConcurrentPush verifies nothing is lost under parallel producers
func TestQueueConcurrentPush(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 32; i++ {
				q.Push(GameEvent{Type: EventBossHit})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != 128 {
		t.Errorf("Expected 128 events, got %d", got)
	}
}

type recordingHandler struct {
	types []EventType
	seen  []EventType
}

func (h *recordingHandler) HandleEvent(ev GameEvent) { h.seen = append(h.seen, ev.Type) }
func (h *recordingHandler) EventTypes() []EventType  { return h.types }

// TestRouterDispatchFiltersByType verifies handlers only see subscribed types
func TestRouterDispatchFiltersByType(t *testing.T) {
	r := NewRouter()
	shots := &recordingHandler{types: []EventType{EventPlayerShot}}
	all := &recordingHandler{types: []EventType{EventPlayerShot, EventGameOver}}
	r.Register(shots)
	r.Register(all)

	r.Dispatch([]GameEvent{
		{Type: EventGameOver},
		{Type: EventPlayerShot},
		{Type: EventConfirm},
	})

	if len(shots.seen) != 1 || shots.seen[0] != EventPlayerShot {
		t.Errorf("Shot handler saw %v", shots.seen)
	}
	if len(all.seen) != 2 || all.seen[0] != EventGameOver {
		t.Errorf("Multi handler saw %v", all.seen)
	}
	if r.HandlerCount(EventConfirm) != 0 {
		t.Error("Expected no confirm handlers")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventBossDefeated.String() != "BossDefeated" {
		t.Errorf("Got %q", EventBossDefeated.String())
	}
	if EventType(99).String() != "Unknown" {
		t.Errorf("Got %q", EventType(99).String())
	}
}
