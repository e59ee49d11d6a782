// Package notification implements the listener fan-out fired after a
// successful charge.
package notification

import (
	"log"
	"sync"
)

// Listener receives payment events. Implementations must not rely on
// being called from any particular goroutine.
type Listener interface {
	Notify(event string)
}

// Hub maintains a set of listeners and publishes events to them in
// registration order. A failing listener never affects the publisher or
// the remaining listeners.
type Hub struct {
	mu        sync.Mutex
	listeners []Listener
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers a listener. Subscribing the same listener twice is
// a no-op; delivery order follows first registration.
func (h *Hub) Subscribe(l Listener) {
	if l == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, existing := range h.listeners {
		if existing == l {
			return
		}
	}
	h.listeners = append(h.listeners, l)
}

// Unsubscribe removes a listener. Removing an unknown listener is a no-op.
func (h *Hub) Unsubscribe(l Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, existing := range h.listeners {
		if existing == l {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return
		}
	}
}

// Publish delivers event to every listener synchronously, in registration
// order. Fire and forget: no retries, and a panicking listener is
// recovered and logged so the payment path never sees the failure.
func (h *Hub) Publish(event string) {
	h.mu.Lock()
	listeners := make([]Listener, len(h.listeners))
	copy(listeners, h.listeners)
	h.mu.Unlock()

	for _, l := range listeners {
		h.deliver(l, event)
	}
}

func (h *Hub) deliver(l Listener, event string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("notification listener panicked: %v", r)
		}
	}()
	l.Notify(event)
}
