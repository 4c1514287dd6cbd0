package schedule

import (
	"sync"
	"time"
)

// Scheduler runs deferred callbacks tied to an owner's lifetime. Stopping
// the scheduler cancels every pending task, so a torn-down owner can
// guarantee none of its callbacks fire afterwards.
type Scheduler struct {
	mu      sync.Mutex
	stopped bool
	nextID  int
	pending map[int]*Task
}

// Task is a single scheduled callback
type Task struct {
	id        int
	sched     *Scheduler
	timer     *time.Timer
	cancelled bool
	done      bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: make(map[int]*Task),
	}
}

// After schedules fn to run once after delay. The returned task can be
// cancelled individually; Stop cancels it along with everything else.
// Scheduling on a stopped scheduler returns an already-cancelled task and fn
// never runs.
func (s *Scheduler) After(delay time.Duration, fn func()) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := &Task{sched: s}
	if s.stopped {
		task.cancelled = true
		return task
	}

	s.nextID++
	task.id = s.nextID
	s.pending[task.id] = task

	task.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if task.cancelled || s.stopped {
			s.mu.Unlock()
			return
		}
		task.done = true
		delete(s.pending, task.id)
		s.mu.Unlock()

		fn()
	})

	return task
}

// Cancel prevents the task's callback from running. It reports whether the
// cancellation took effect (false if the callback already ran or was
// cancelled before).
func (t *Task) Cancel() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()

	if t.cancelled || t.done {
		return false
	}

	t.cancelled = true
	if t.timer != nil {
		t.timer.Stop()
	}
	delete(t.sched.pending, t.id)
	return true
}

// Stop cancels all pending tasks and rejects future scheduling. Callbacks
// that have not started by the time Stop acquires the lock will never run.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for id, task := range s.pending {
		task.cancelled = true
		if task.timer != nil {
			task.timer.Stop()
		}
		delete(s.pending, id)
	}
}

// PendingCount returns the number of tasks scheduled but not yet run
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
