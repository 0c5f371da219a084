package events

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Listener processes events
type Listener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus fans events out to listeners in priority order. It implements
// Observer; a failing listener is logged and never reaches the emitter.
type Bus struct {
	listeners map[EventType][]Listener
	any       []Listener
	logger    *zap.Logger
	mu        sync.RWMutex
}

// NewBus creates a new event bus. A nil logger discards listener failures.
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		listeners: make(map[EventType][]Listener),
		logger:    logger,
	}
}

// Subscribe adds a listener for one event type
func (b *Bus) Subscribe(eventType EventType, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)
	sortByPriority(b.listeners[eventType])
}

// SubscribeAll adds a listener for every event type
func (b *Bus) SubscribeAll(listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.any = append(b.any, listener)
	sortByPriority(b.any)
}

// Unsubscribe removes a listener from one event type
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = without(b.listeners[eventType], listenerID)
}

// UnsubscribeAll removes a listener registered with SubscribeAll
func (b *Bus) UnsubscribeAll(listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.any = without(b.any, listenerID)
}

// Observe implements Observer
func (b *Bus) Observe(event Event) {
	b.mu.RLock()
	listeners := make([]Listener, 0, len(b.listeners[event.Type])+len(b.any))
	listeners = append(listeners, b.listeners[event.Type]...)
	listeners = append(listeners, b.any...)
	b.mu.RUnlock()

	sortByPriority(listeners)

	for _, listener := range listeners {
		if err := listener.HandleEvent(event); err != nil {
			b.logger.Warn("event listener failed",
				zap.String("listener", listener.ID()),
				zap.String("event", string(event.Type)),
				zap.Error(err),
			)
		}
	}
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]Listener)
	b.any = nil
}

func sortByPriority(listeners []Listener) {
	sort.SliceStable(listeners, func(i, j int) bool {
		return listeners[i].Priority() < listeners[j].Priority()
	})
}

func without(listeners []Listener, id string) []Listener {
	kept := listeners[:0]
	for _, l := range listeners {
		if l.ID() != id {
			kept = append(kept, l)
		}
	}
	return kept
}
