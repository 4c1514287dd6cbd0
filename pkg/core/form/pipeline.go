package form

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/shiftdesk/pkg/broadcast"
	"github.com/jakechorley/shiftdesk/pkg/core/model"
	"github.com/jakechorley/shiftdesk/pkg/notify"
	"github.com/jakechorley/shiftdesk/pkg/sounds"
)

// Submit runs a submission attempt. Off the terminal step it redirects to a
// step advance (the submit and advance affordances collapse into the same
// action until the form is terminal). On the terminal step it validates the
// draft, and on a valid outcome enters the submission pipeline: the draft
// is normalized, the simulated persistence latency elapses as a cancellable
// deferred task, and the commit plus its ordered side effects run when it
// fires. Validation failures surface on the session and never enter the
// pipeline.
func (s *Session) Submit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if !s.steps.AtTerminal() {
		s.steps.Next()
		s.deps.Logger.Debug("Submit before terminal step, advancing instead")
		return
	}

	// The submitting flag is the only re-entrancy gate
	if s.submitting {
		s.deps.Logger.Debug("Duplicate submit blocked, submission already in flight")
		return
	}

	outcome := ValidateDraft(s.draft, s.deps.Roster)
	if !outcome.Valid() {
		s.outcome = &outcome
		s.deps.Logger.Info("Draft failed validation",
			zap.String("kind", string(outcome.Kind)),
			zap.String("message", outcome.Message))
		return
	}
	s.outcome = nil

	s.submitting = true

	record, err := s.normalizeForPersist()
	if err != nil {
		s.failSubmissionLocked(err)
		return
	}

	s.deps.Logger.Info("Submitting shift",
		zap.String("shift_id", record.ID),
		zap.String("employee", record.EmployeeName),
		zap.String("mode", s.mode.String()))

	// Simulated persistence latency; cancelled if the form is torn down
	s.sched.After(s.deps.Config.PersistDelay(), func() {
		s.completeSubmission(record)
	})
}

// normalizeForPersist prepares the draft for the persistence boundary:
// incidental date whitespace is stripped, a creation without an id gets
// one (edits always keep theirs), the display range is recomputed so it
// cannot be stale, and a missing color falls back to the role's mapping.
func (s *Session) normalizeForPersist() (model.Shift, error) {
	record := s.draft
	record.Date = strings.TrimSpace(record.Date)

	if record.ID == "" {
		if s.mode == ModeEdit {
			return model.Shift{}, fmt.Errorf("edited shift has lost its id")
		}
		record.ID = uuid.New().String()
	}

	record.TimeRange = FormatTimeRange(s.deps.Logger, record.StartTime, record.EndTime)

	if record.Color == "" {
		color, ok := model.ColorForRole(record.Role)
		if !ok {
			return model.Shift{}, fmt.Errorf("no color mapping for role %q", record.Role)
		}
		record.Color = color
	}

	record.Priority = s.priority

	return record, nil
}

// completeSubmission commits the normalized record and runs the ordered
// side effects. Runs as a deferred callback after the simulated latency.
func (s *Session) completeSubmission(record model.Shift) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The scheduler cancels pending callbacks on close; this guards the
	// window where the callback was already in flight
	if s.closed {
		return
	}

	firstShift := s.mode == ModeAdd && s.deps.Store.IsEmpty()

	var err error
	if s.mode == ModeAdd {
		err = s.deps.Store.CreateShift(&record)
	} else {
		err = s.deps.Store.UpdateShift(&record)
	}
	if err != nil {
		s.failSubmissionLocked(err)
		return
	}

	s.draft = record

	s.deps.Cues.Play(sounds.CueComplete, s.deps.Config.Sound.FeedbackVolume)

	// Submitting clears immediately; the success presentation stays up
	// until the caller acknowledges it
	s.submitting = false
	s.successShown = true

	if s.deps.Config.NotificationsEnabledFor(notify.CategoryShifts) {
		verb := "created"
		if s.mode == ModeEdit {
			verb = "updated"
		}
		s.deps.Notifier.Enqueue(notify.Notification{
			Message:  fmt.Sprintf("Shift for %s on %s %s.", record.EmployeeName, record.Date, verb),
			Severity: notify.SeveritySuccess,
			Category: notify.CategoryShifts,
		})
	}

	if firstShift {
		// The nudge is scheduled independently so it neither blocks nor is
		// blocked by the success presentation
		s.sched.After(s.deps.Config.OnboardingNudgeDelay(), s.deliverOnboardingNudge)
	}

	// Reminder scheduling runs regardless of the notification policy
	s.deps.Reminders.CheckReminder(record)

	s.deps.Logger.Info("Shift committed",
		zap.String("shift_id", record.ID),
		zap.Bool("first_shift", firstShift))
}

// deliverOnboardingNudge files the one-time onboarding notification and
// broadcasts the tutorial prompt. Runs once, after the very first creation.
func (s *Session) deliverOnboardingNudge() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if s.deps.Config.NotificationsEnabledFor(notify.CategoryOnboarding) {
		s.deps.Notifier.Enqueue(notify.Notification{
			Message:  "Your first shift is on the schedule. Want a quick tour of the rest of the app?",
			Severity: notify.SeverityInfo,
			Category: notify.CategoryOnboarding,
		})
	}

	s.deps.Broadcast.Publish(broadcast.SignalPromptTutorial)

	s.deps.Logger.Info("Onboarding nudge delivered")
}

// failSubmissionLocked recovers from a normalization or commit failure:
// the submitting state resets, a generic failure notification goes out, and
// the error cue plays. The success presentation is never shown on this
// path. Callers must hold s.mu.
func (s *Session) failSubmissionLocked(err error) {
	s.submitting = false

	s.deps.Logger.Error("Shift submission failed", zap.Error(err))

	if s.deps.Config.NotificationsEnabledFor(notify.CategoryErrors) {
		s.deps.Notifier.Enqueue(notify.Notification{
			Message:  "Could not save the shift. Please try again.",
			Severity: notify.SeverityError,
			Category: notify.CategoryErrors,
		})
	}

	s.deps.Cues.Play(sounds.CueError, s.deps.Config.Sound.FeedbackVolume)
}
