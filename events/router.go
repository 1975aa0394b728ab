package events

//go:generate go tool mockgen -destination=./mocks/handler_mock.go -package=mocks . Handler

// Handler consumes routed events
// Frontend subsystems (audio, logging) implement this
type Handler interface {
	// HandleEvent processes one event, called synchronously during Dispatch
	HandleEvent(event GameEvent)

	// EventTypes returns the types this handler subscribes to
	EventTypes() []EventType
}

// Router fans drained events out to registered handlers
// Dispatch is single-threaded; handlers run in registration order
type Router struct {
	handlers map[EventType][]Handler
}

func NewRouter() *Router {
	return &Router{handlers: make(map[EventType][]Handler)}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Dispatch routes a batch in FIFO order
func (r *Router) Dispatch(batch []GameEvent) {
	for _, ev := range batch {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

// HandlerCount returns the number of handlers registered for a type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
