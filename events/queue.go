package events

import (
	"sync"

	"github.com/lixenwraith/junie-fighter/constants"
)

// EventQueue is a fixed ring of game events between the tick and the frame loop
// The tick pushes under the game lock; the frame loop drains everything once per frame
// A full ring overwrites its oldest entry
type EventQueue struct {
	mu    sync.Mutex
	ring  [constants.EventQueueSize]GameEvent
	first int // Index of the oldest pending event
	count int
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, evicting the oldest when full
func (q *EventQueue) Push(event GameEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.ring[(q.first+q.count)&constants.EventBufferMask] = event
	if q.count == constants.EventQueueSize {
		q.first = (q.first + 1) & constants.EventBufferMask
		return
	}
	q.count++
}

// Consume hands every pending event to the caller in push order and empties the ring
// Returns nil when nothing is pending so an idle frame allocates nothing
func (q *EventQueue) Consume() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return nil
	}

	out := make([]GameEvent, q.count)
	tail := copy(out, q.ring[q.first:min(q.first+q.count, constants.EventQueueSize)])
	copy(out[tail:], q.ring[:q.count-tail])

	q.first, q.count = 0, 0
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}
