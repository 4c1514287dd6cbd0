package reminders

import (
	"fmt"
	"sync"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/jakechorley/shiftdesk/pkg/core/model"
)

// PendingReminder is a reminder queued for a committed shift
type PendingReminder struct {
	ShiftID      string
	EmployeeName string
	RemindAt     time.Time
}

// Checker schedules reminders for committed shifts. CheckReminder is
// fire-and-forget: problems are logged, never returned, and never reach the
// submission workflow.
type Checker struct {
	logger *zap.Logger
	rule   string
	lead   time.Duration
	now    func() time.Time

	mu      sync.Mutex
	pending []PendingReminder
}

// NewChecker creates a reminder checker. rule is an optional RRULE string
// describing when reminder delivery runs; lead is how long before shift
// start the reminder should land.
func NewChecker(logger *zap.Logger, rule string, lead time.Duration) *Checker {
	return &Checker{
		logger: logger,
		rule:   rule,
		lead:   lead,
		now:    time.Now,
	}
}

// CheckReminder computes the reminder instant for the given shift and queues
// it. Invoked once per successful commit.
func (c *Checker) CheckReminder(shift model.Shift) {
	remindAt, err := c.reminderTime(shift)
	if err != nil {
		c.logger.Warn("Skipping reminder for shift",
			zap.String("shift_id", shift.ID),
			zap.Error(err))
		return
	}

	c.mu.Lock()
	// Re-checking an edited shift replaces its previous reminder
	for i := range c.pending {
		if c.pending[i].ShiftID == shift.ID {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			break
		}
	}
	c.pending = append(c.pending, PendingReminder{
		ShiftID:      shift.ID,
		EmployeeName: shift.EmployeeName,
		RemindAt:     remindAt,
	})
	c.mu.Unlock()

	c.logger.Info("Reminder scheduled",
		zap.String("shift_id", shift.ID),
		zap.String("employee", shift.EmployeeName),
		zap.Time("remind_at", remindAt))
}

// Pending returns a copy of the queued reminders
func (c *Checker) Pending() []PendingReminder {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]PendingReminder, len(c.pending))
	copy(out, c.pending)
	return out
}

// reminderTime resolves when the reminder for a shift should be delivered:
// the shift's start minus the lead time, pushed onto the configured delivery
// cadence when one is set
func (c *Checker) reminderTime(shift model.Shift) (time.Time, error) {
	start, err := time.Parse("2006-01-02 15:04", fmt.Sprintf("%s %s", shift.Date, shift.StartTime))
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable shift start: %w", err)
	}

	target := start.Add(-c.lead)

	if c.rule == "" {
		return target, nil
	}

	rule, err := rrule.StrToRRule(c.rule)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reminder rrule: %w", err)
	}
	rule.DTStart(c.now().Truncate(time.Minute))

	// Deliver on the first cadence slot at or before the target; if the
	// shift is too close for that, fall back to the raw target
	next := rule.After(c.now(), true)
	if next.IsZero() || next.After(target) {
		return target, nil
	}

	slot := next
	for !slot.IsZero() && !slot.After(target) {
		candidate := rule.After(slot, false)
		if candidate.IsZero() || candidate.After(target) {
			break
		}
		slot = candidate
	}
	return slot, nil
}
