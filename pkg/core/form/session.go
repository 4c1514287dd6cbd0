package form

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/shiftdesk/internal/config"
	"github.com/jakechorley/shiftdesk/pkg/broadcast"
	"github.com/jakechorley/shiftdesk/pkg/core/model"
	"github.com/jakechorley/shiftdesk/pkg/db"
	"github.com/jakechorley/shiftdesk/pkg/notify"
	"github.com/jakechorley/shiftdesk/pkg/roster"
	"github.com/jakechorley/shiftdesk/pkg/schedule"
	"github.com/jakechorley/shiftdesk/pkg/sounds"
)

// Mode distinguishes creating a new shift from editing an existing one
type Mode int

const (
	ModeAdd Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "add"
}

// ReminderChecker requests a downstream reminder-scheduling check for a
// committed shift. Fire-and-forget, invoked once per successful commit.
type ReminderChecker interface {
	CheckReminder(shift model.Shift)
}

// Broadcaster emits process-wide signals
type Broadcaster interface {
	Publish(sig broadcast.Signal)
}

// Deps holds the collaborators a form session works against
type Deps struct {
	Config    *config.Config
	Logger    *zap.Logger
	Roster    roster.Provider
	Store     db.ShiftStore
	Notifier  notify.Sink
	Cues      sounds.Player
	Reminders ReminderChecker
	Broadcast Broadcaster
}

// OpenOptions controls how a form session opens. A non-empty ShiftID opens
// in edit mode; if the record cannot be found the session falls back to
// creation semantics using Date. ClearSelection, when set, is called on
// close of an edit session so the surrounding application can drop its
// "currently selected record" reference.
type OpenOptions struct {
	Date           string
	ShiftID        string
	ClearSelection func()
}

// Session is one open run of the shift form: the draft being built, the
// step machine, the submission flags, and the deferred work scheduled on
// the session's behalf. Closing the session cancels any pending deferred
// callbacks, so a discarded session never mutates state or files
// notifications afterwards.
type Session struct {
	deps     Deps
	resolver *CascadeResolver
	sched    *schedule.Scheduler

	mu             sync.Mutex
	mode           Mode
	draft          model.Shift
	steps          StepMachine
	submitting     bool
	successShown   bool
	priority       bool
	outcome        *Outcome
	closed         bool
	clearSelection func()
}

// Open starts a form session. In add mode the draft is built from the
// configured default template and given a stable id immediately, before
// first save. In edit mode the draft is hydrated verbatim from the stored
// record, preserving its id.
func Open(deps Deps, opts OpenOptions) *Session {
	s := &Session{
		deps:  deps,
		sched: schedule.NewScheduler(),
		steps: NewStepMachine(),
		resolver: NewCascadeResolver(
			deps.Roster, deps.Cues, deps.Config.Sound.TickVolume, deps.Logger),
	}

	if opts.ShiftID != "" {
		if existing, found := deps.Store.GetShiftByID(opts.ShiftID); found {
			s.mode = ModeEdit
			s.draft = *existing
			s.priority = existing.Priority
			s.clearSelection = opts.ClearSelection
			deps.Logger.Info("Form opened in edit mode",
				zap.String("shift_id", existing.ID),
				zap.String("employee", existing.EmployeeName))
			return s
		}
		deps.Logger.Warn("Shift not found, falling back to creation mode",
			zap.String("shift_id", opts.ShiftID))
	}

	s.mode = ModeAdd
	s.draft = newDraft(deps.Config, opts.Date, deps.Logger)
	deps.Logger.Info("Form opened in add mode",
		zap.String("shift_id", s.draft.ID),
		zap.String("date", opts.Date))
	return s
}

// newDraft builds a fresh draft from the configured default template
func newDraft(cfg *config.Config, date string, logger *zap.Logger) model.Shift {
	draft := model.Shift{
		ID:        uuid.New().String(),
		Role:      model.Role(cfg.DefaultRole),
		Status:    model.Status(cfg.DefaultStatus),
		Date:      date,
		StartTime: cfg.DefaultStartTime,
		EndTime:   cfg.DefaultEndTime,
	}
	if color, ok := model.ColorForRole(draft.Role); ok {
		draft.Color = color
	}
	draft.TimeRange = FormatTimeRange(logger, draft.StartTime, draft.EndTime)
	return draft
}

// SetField applies a field change and its cascades to the draft. Changes
// are ignored while a submission is in flight or after close.
func (s *Session) SetField(field Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.submitting {
		return
	}
	s.draft = s.resolver.Apply(s.draft, field, value)
}

// NextStep advances to the timing step; a no-op when already there
func (s *Session) NextStep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.steps.Next()
}

// PreviousStep returns to the details step; a no-op when already there
func (s *Session) PreviousStep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.steps.Previous()
}

// Confirm handles an implicit commit keystroke. Off the terminal step it is
// reinterpreted as a step advance, never a submission attempt; on the
// terminal step it submits.
func (s *Session) Confirm() {
	s.Submit()
}

// TogglePriority flips the session's priority toggle
func (s *Session) TogglePriority() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.priority = !s.priority
}

// DismissValidation clears the active validation outcome
func (s *Session) DismissValidation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcome = nil
}

// AcknowledgeSuccess dismisses the success presentation and closes the
// form. A no-op unless the success presentation is showing.
func (s *Session) AcknowledgeSuccess() {
	s.mu.Lock()
	shown := s.successShown
	s.mu.Unlock()

	if shown {
		s.Close()
	}
}

// Close discards the session: the step resets, the flags and validation
// outcome clear, pending deferred callbacks are cancelled, and in edit mode
// the surrounding selection reference is cleared. The draft is not
// persisted anywhere.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.steps.Reset()
	s.submitting = false
	s.successShown = false
	s.outcome = nil
	s.draft = model.Shift{}

	wasEdit := s.mode == ModeEdit
	clearSelection := s.clearSelection
	s.mu.Unlock()

	s.sched.Stop()

	if wasEdit && clearSelection != nil {
		clearSelection()
	}

	s.deps.Logger.Info("Form closed")
}

// Mode returns whether the session is creating or editing
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Draft returns a copy of the current draft
func (s *Session) Draft() model.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Step returns the active form step
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps.Current()
}

// Submitting reports whether a validated submission is in flight
func (s *Session) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// SuccessShown reports whether the success presentation is showing
func (s *Session) SuccessShown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.successShown
}

// Priority returns the session's priority toggle
func (s *Session) Priority() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.priority
}

// ValidationOutcome returns the active validation outcome, if any
func (s *Session) ValidationOutcome() *Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.outcome == nil {
		return nil
	}
	outcome := *s.outcome
	return &outcome
}

// Closed reports whether the session has been discarded
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
