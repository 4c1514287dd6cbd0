package notify

import "sync"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Category string

const (
	CategoryShifts     Category = "shifts"
	CategoryOnboarding Category = "onboarding"
	CategoryErrors     Category = "errors"
)

// Notification is a user-facing message queued for display
type Notification struct {
	Message  string
	Severity Severity
	Category Category
}

// Sink receives notifications. Enqueue is fire-and-forget; callers never
// await a result.
type Sink interface {
	Enqueue(n Notification)
}

// MemorySink queues notifications in memory until drained. Used by the CLI
// to show queued notifications after a submit.
type MemorySink struct {
	mu    sync.Mutex
	queue []Notification
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Enqueue appends a notification to the queue
func (s *MemorySink) Enqueue(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, n)
}

// Drain returns all queued notifications in order and clears the queue
func (s *MemorySink) Drain() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.queue
	s.queue = nil
	return out
}

// Pending returns a copy of the queue without clearing it
func (s *MemorySink) Pending() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.queue))
	copy(out, s.queue)
	return out
}
