package broadcast

import "sync"

// Signal identifies a process-wide broadcast event
type Signal string

// SignalPromptTutorial asks any listening surface to offer the onboarding
// tutorial. Emitted once, after the very first shift is created.
const SignalPromptTutorial Signal = "prompt-tutorial"

// Hub is a process-wide signal dispatcher. Unrelated parts of the
// application subscribe to signals by name; publishers never learn who, if
// anyone, is listening.
type Hub struct {
	mu   sync.Mutex
	subs map[Signal][]func(Signal)
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[Signal][]func(Signal)),
	}
}

// Subscribe registers a handler for a signal. Handlers run synchronously in
// Publish order.
func (h *Hub) Subscribe(sig Signal, handler func(Signal)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[sig] = append(h.subs[sig], handler)
}

// Publish delivers a signal to all current subscribers. Fire-and-forget;
// there is no delivery result.
func (h *Hub) Publish(sig Signal) {
	h.mu.Lock()
	handlers := make([]func(Signal), len(h.subs[sig]))
	copy(handlers, h.subs[sig])
	h.mu.Unlock()

	for _, handler := range handlers {
		handler(sig)
	}
}
