package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/shiftdesk/pkg/core/model"
	"github.com/jakechorley/shiftdesk/pkg/notify"
	"github.com/jakechorley/shiftdesk/pkg/sounds"
)

func TestSubmit_FromDetailsStepAdvancesInsteadOfSubmitting(t *testing.T) {
	f := newFixture()
	s := f.open("2026-09-01")
	defer s.Close()

	// Empty employee name would fail validation, but validation must not
	// even run off the terminal step
	s.Submit()

	assert.Equal(t, StepTiming, s.Step())
	assert.Nil(t, s.ValidationOutcome())
	assert.False(t, s.Submitting())
	assert.True(t, f.store.IsEmpty())
}

func TestSubmit_ConfirmKeyOffTerminalStepAdvances(t *testing.T) {
	f := newFixture()
	s := f.open("2026-09-01")
	defer s.Close()

	s.Confirm()

	assert.Equal(t, StepTiming, s.Step())
	assert.True(t, f.store.IsEmpty())
}

func TestSubmit_UnknownEmployeeBlocksWithoutCommit(t *testing.T) {
	f := newFixture()
	s := f.open("2026-09-01")
	defer s.Close()

	s.SetField(FieldEmployeeName, "Nobody Home")
	s.NextStep()
	s.Submit()

	outcome := s.ValidationOutcome()
	require.NotNil(t, outcome)
	assert.Equal(t, OutcomeEmployeeNotFound, outcome.Kind)
	assert.False(t, s.Submitting())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, f.store.IsEmpty())
	assert.Empty(t, f.sink.Pending())
}

func TestSubmit_RoleMismatchBlocks(t *testing.T) {
	f := newFixture()
	s := f.open("2026-09-01")
	defer s.Close()

	s.SetField(FieldEmployeeName, "Alice Nguyen")
	s.SetField(FieldRole, string(model.RoleManager))
	s.NextStep()
	s.Submit()

	outcome := s.ValidationOutcome()
	require.NotNil(t, outcome)
	assert.Equal(t, OutcomeRoleMismatch, outcome.Kind)
	assert.Equal(t, notify.SeverityWarning, outcome.Severity)
	assert.True(t, f.store.IsEmpty())
}

func TestSubmit_SuccessPathCommitsAndRunsOrderedSideEffects(t *testing.T) {
	f := newFixture()
	s := f.open("2026-09-01")
	defer s.Close()

	fillValidDraft(s)
	s.TogglePriority()
	s.Submit()

	// The simulated latency keeps the commit out of the synchronous path
	assert.True(t, s.Submitting())
	assert.True(t, f.store.IsEmpty())

	require.Eventually(t, s.SuccessShown, time.Second, 2*time.Millisecond)
	assert.False(t, s.Submitting())

	shifts := f.store.ListShifts()
	require.Len(t, shifts, 1)
	record := shifts[0]
	assert.Equal(t, "Alice Nguyen", record.EmployeeName)
	assert.Equal(t, model.RoleServer, record.Role)
	assert.Equal(t, "9:00 AM - 5:00 PM", record.TimeRange)
	assert.True(t, record.Priority)
	assert.NotEmpty(t, record.Color)

	// Complete cue follows the field ticks
	played := f.cues.played()
	require.NotEmpty(t, played)
	assert.Equal(t, sounds.CueComplete, played[len(played)-1])

	// Success notification in the shifts category
	queued := f.sink.Pending()
	require.NotEmpty(t, queued)
	assert.Equal(t, notify.SeveritySuccess, queued[0].Severity)
	assert.Equal(t, notify.CategoryShifts, queued[0].Category)
	assert.Contains(t, queued[0].Message, "Alice Nguyen")

	// Reminder check runs once per successful commit
	require.Len(t, f.reminders.checked(), 1)
	assert.Equal(t, record.ID, f.reminders.checked()[0].ID)
}

func TestSubmit_NormalizationStripsDateWhitespaceAndKeepsRangeFresh(t *testing.T) {
	f := newFixture()
	s := f.open("  2026-09-01  ")
	defer s.Close()

	fillValidDraft(s)
	s.SetField(FieldStartTime, "13:30")
	s.Submit()

	require.Eventually(t, s.SuccessShown, time.Second, 2*time.Millisecond)

	shifts := f.store.ListShifts()
	require.Len(t, shifts, 1)
	assert.Equal(t, "2026-09-01", shifts[0].Date)
	assert.Equal(t, "1:30 PM - 5:00 PM", shifts[0].TimeRange)
}

func TestSubmit_DuplicateSubmitIsBlockedWhileInFlight(t *testing.T) {
	f := newFixture()
	s := f.open("2026-09-01")
	defer s.Close()

	fillValidDraft(s)
	s.Submit()
	s.Submit()
	s.Submit()

	require.Eventually(t, s.SuccessShown, time.Second, 2*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	assert.Len(t, f.store.ListShifts(), 1)
}

func TestSubmit_FirstShiftNudgeFiresExactlyOnce(t *testing.T) {
	f := newFixture()
	s := f.open("2026-09-01")
	defer s.Close()

	fillValidDraft(s)
	s.Submit()

	require.Eventually(t, func() bool {
		return f.signals.total() > 0
	}, time.Second, 2*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, f.signals.total())

	queued := f.sink.Pending()
	require.Len(t, queued, 2)
	assert.Equal(t, notify.CategoryShifts, queued[0].Category)
	assert.Equal(t, notify.CategoryOnboarding, queued[1].Category)
	assert.Equal(t, notify.SeverityInfo, queued[1].Severity)
}

func TestSubmit_NoNudgeWhenStoreAlreadyHasShifts(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.store.CreateShift(&model.Shift{ID: "existing"}))

	s := f.open("2026-09-01")
	defer s.Close()

	fillValidDraft(s)
	s.Submit()

	require.Eventually(t, s.SuccessShown, time.Second, 2*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	assert.Zero(t, f.signals.total())
	for _, n := range f.sink.Pending() {
		assert.NotEqual(t, notify.CategoryOnboarding, n.Category)
	}
}

func TestSubmit_NoNudgeOnEdit(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.store.CreateShift(&model.Shift{
		ID:           "shift-1",
		EmployeeName: "Alice Nguyen",
		Role:         model.RoleServer,
		Date:         "2026-09-01",
		StartTime:    "09:00",
		EndTime:      "17:00",
	}))

	s := Open(f.deps(), OpenOptions{ShiftID: "shift-1"})
	defer s.Close()

	s.NextStep()
	s.SetField(FieldEndTime, "18:00")
	s.Submit()

	require.Eventually(t, s.SuccessShown, time.Second, 2*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	assert.Zero(t, f.signals.total())

	// Edit preserved the original id
	record, found := f.store.GetShiftByID("shift-1")
	require.True(t, found)
	assert.Equal(t, "18:00", record.EndTime)
	assert.Equal(t, "9:00 AM - 6:00 PM", record.TimeRange)
}

func TestSubmit_CommitFailureRunsRecoveryPath(t *testing.T) {
	f := newFixture()
	f.store = &failingStore{ShiftStore: f.store}

	s := f.open("2026-09-01")
	defer s.Close()

	fillValidDraft(s)
	s.Submit()

	require.Eventually(t, func() bool {
		return !s.Submitting()
	}, time.Second, 2*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	// Success presentation never shows on the failure path
	assert.False(t, s.SuccessShown())

	queued := f.sink.Pending()
	require.Len(t, queued, 1)
	assert.Equal(t, notify.SeverityError, queued[0].Severity)
	assert.Equal(t, notify.CategoryErrors, queued[0].Category)
	// The raw cause stays in the log, not the message
	assert.NotContains(t, queued[0].Message, "storage unavailable")

	played := f.cues.played()
	require.NotEmpty(t, played)
	assert.Equal(t, sounds.CueError, played[len(played)-1])

	assert.Empty(t, f.reminders.checked())
	assert.Zero(t, f.signals.total())
}

func TestSubmit_FormRemainsUsableAfterFailure(t *testing.T) {
	f := newFixture()
	f.store = &failingStore{ShiftStore: f.store}

	s := f.open("2026-09-01")
	defer s.Close()

	fillValidDraft(s)
	s.Submit()
	require.Eventually(t, func() bool {
		return !s.Submitting()
	}, time.Second, 2*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	// No retry policy: the failure was reported once and the form accepts a
	// manual re-submit
	s.Submit()
	assert.True(t, s.Submitting())
	assert.False(t, s.SuccessShown())
}

func TestSubmit_CloseDuringLatencyCancelsCommit(t *testing.T) {
	f := newFixture()
	f.cfg.PersistDelayMs = 30

	s := f.open("2026-09-01")
	fillValidDraft(s)
	s.Submit()
	require.True(t, s.Submitting())

	s.Close()
	time.Sleep(100 * time.Millisecond)

	// The stale callback never committed or notified
	assert.True(t, f.store.IsEmpty())
	assert.Empty(t, f.sink.Pending())
	assert.False(t, s.SuccessShown())
}

func TestSubmit_CloseDuringNudgeDelayCancelsNudge(t *testing.T) {
	f := newFixture()
	f.cfg.OnboardingNudgeDelayMs = 50

	s := f.open("2026-09-01")
	fillValidDraft(s)
	s.Submit()

	require.Eventually(t, s.SuccessShown, time.Second, 2*time.Millisecond)
	s.Close()
	time.Sleep(120 * time.Millisecond)

	// A stale nudge would file an orphaned notification and signal
	assert.Zero(t, f.signals.total())
	for _, n := range f.sink.Pending() {
		assert.NotEqual(t, notify.CategoryOnboarding, n.Category)
	}
}

func TestSubmit_NotificationsDisabledSkipsQueueButNotCommit(t *testing.T) {
	f := newFixture()
	f.cfg.Notifications.Enabled = false

	s := f.open("2026-09-01")
	defer s.Close()

	fillValidDraft(s)
	s.Submit()

	require.Eventually(t, s.SuccessShown, time.Second, 2*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	assert.Len(t, f.store.ListShifts(), 1)
	assert.Empty(t, f.sink.Pending())

	// The reminder check and the tutorial broadcast are independent of the
	// notification policy
	assert.Len(t, f.reminders.checked(), 1)
	assert.Equal(t, 1, f.signals.total())
}

func TestSubmit_CategoryGatingFiltersPerCategory(t *testing.T) {
	f := newFixture()
	f.cfg.Notifications.Categories = map[string]bool{
		"shifts":     false,
		"onboarding": true,
	}

	s := f.open("2026-09-01")
	defer s.Close()

	fillValidDraft(s)
	s.Submit()

	require.Eventually(t, func() bool {
		return f.signals.total() > 0
	}, time.Second, 2*time.Millisecond)

	queued := f.sink.Pending()
	require.Len(t, queued, 1)
	assert.Equal(t, notify.CategoryOnboarding, queued[0].Category)
}
