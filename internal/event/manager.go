// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/gridmap/internal/logger"
)

// Handler defines the function signature for event subscribers.
// It returns true if the event was consumed (reserved for future use).
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.Debugf("Event Manager: Handler subscribed to type %v", eventType)
}

// Dispatch sends an event to all registered handlers for its type.
// Handlers run synchronously on the calling goroutine.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	event := Event{
		Type: eventType,
		Data: data,
	}

	m.mu.RLock()
	handlers, exists := m.handlers[eventType]
	m.mu.RUnlock()

	if !exists || len(handlers) == 0 {
		return
	}

	// Copy so a handler subscribing during dispatch can't mutate the slice
	// out from under the loop.
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)

	for _, handler := range handlersCopy {
		handler(event)
	}
}
