package sim

type EventType int

const (
	EventLaunched EventType = iota
	EventLanded
	EventLost
	EventTurnReady
	EventRosterExhausted
)

func (t EventType) String() string {
	switch t {
	case EventLaunched:
		return "launched"
	case EventLanded:
		return "landed"
	case EventLost:
		return "lost"
	case EventTurnReady:
		return "turn-ready"
	case EventRosterExhausted:
		return "roster-exhausted"
	}
	return "unknown"
}

type Event struct {
	Type  EventType
	Index int // roster index of the bird concerned
	X, Y  float32
	Speed float32 // impact or launch speed, for audio gain
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventLaunched; t <= EventRosterExhausted; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
