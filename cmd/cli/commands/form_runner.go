package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jakechorley/shiftdesk/pkg/core/form"
)

// runForm drives a form session through its two steps on stdin and waits
// out the submission pipeline. It returns once the session is closed,
// whether by success acknowledgment or cancellation.
func runForm(app *AppContext, session *form.Session) error {
	reader := bufio.NewScanner(os.Stdin)

	for !session.Closed() {
		switch session.Step() {
		case form.StepDetails:
			if done, err := runDetailsStep(app, session, reader); done || err != nil {
				return err
			}
		case form.StepTiming:
			if done, err := runTimingStep(app, session, reader); done || err != nil {
				return err
			}
		}
	}

	return nil
}

// runDetailsStep collects the identity fields. Returns done=true when the
// user cancelled.
func runDetailsStep(app *AppContext, session *form.Session, reader *bufio.Scanner) (bool, error) {
	draft := session.Draft()
	fmt.Println("\nStep 1 of 2 - shift details (blank keeps the current value, 'q' cancels)")

	value, ok := promptLine(reader, fmt.Sprintf("Employee name [%s]: ", draft.EmployeeName))
	if !ok {
		session.Close()
		return true, nil
	}
	if value != "" {
		session.SetField(form.FieldEmployeeName, value)
	}

	draft = session.Draft()
	value, ok = promptLine(reader, fmt.Sprintf("Role (Manager/Server/Cook/Host) [%s]: ", draft.Role))
	if !ok {
		session.Close()
		return true, nil
	}
	if value != "" {
		session.SetField(form.FieldRole, value)
	}

	draft = session.Draft()
	value, ok = promptLine(reader, fmt.Sprintf("Status (Confirmed/Pending/Canceled) [%s]: ", draft.Status))
	if !ok {
		session.Close()
		return true, nil
	}
	if value != "" {
		session.SetField(form.FieldStatus, value)
	}

	value, ok = promptLine(reader, fmt.Sprintf("Priority shift? (y/n) [%v]: ", session.Priority()))
	if !ok {
		session.Close()
		return true, nil
	}
	if value == "y" && !session.Priority() || value == "n" && session.Priority() {
		session.TogglePriority()
	}

	session.NextStep()
	return false, nil
}

// runTimingStep collects the time range and submits
func runTimingStep(app *AppContext, session *form.Session, reader *bufio.Scanner) (bool, error) {
	draft := session.Draft()
	fmt.Printf("\nStep 2 of 2 - timing for %s (blank keeps the current value, 'b' goes back, 'q' cancels)\n", draft.Date)

	value, ok := promptLine(reader, fmt.Sprintf("Start time HH:MM [%s]: ", draft.StartTime))
	if !ok {
		session.Close()
		return true, nil
	}
	if value == "b" {
		session.PreviousStep()
		return false, nil
	}
	if value != "" {
		session.SetField(form.FieldStartTime, value)
	}

	draft = session.Draft()
	value, ok = promptLine(reader, fmt.Sprintf("End time HH:MM [%s]: ", draft.EndTime))
	if !ok {
		session.Close()
		return true, nil
	}
	if value == "b" {
		session.PreviousStep()
		return false, nil
	}
	if value != "" {
		session.SetField(form.FieldEndTime, value)
	}

	fmt.Printf("Shift: %s\n", session.Draft().TimeRange)
	session.Submit()

	if outcome := session.ValidationOutcome(); outcome != nil {
		fmt.Printf("\n%s: %s\n", strings.ToUpper(string(outcome.Severity)), outcome.Message)
		session.DismissValidation()
		session.PreviousStep()
		return false, nil
	}

	return waitForPipeline(app, session)
}

// waitForPipeline blocks until the submission pipeline settles, then
// acknowledges a success or reports a failure
func waitForPipeline(app *AppContext, session *form.Session) (bool, error) {
	fmt.Print("Saving")
	for session.Submitting() {
		fmt.Print(".")
		time.Sleep(50 * time.Millisecond)
	}
	fmt.Println()

	if !session.SuccessShown() {
		fmt.Println("The shift could not be saved.")
		flushNotifications(app)
		// Leave the form open so the user can re-submit
		return false, nil
	}

	fmt.Println("Shift saved!")

	// Give the delayed onboarding nudge a chance to land before the form
	// closes and cancels it
	time.Sleep(app.Cfg.OnboardingNudgeDelay() + 100*time.Millisecond)

	session.AcknowledgeSuccess()
	flushNotifications(app)
	return true, nil
}

// flushNotifications prints and clears the queued notifications
func flushNotifications(app *AppContext) {
	for _, n := range app.Notifier.Drain() {
		fmt.Printf("[%s] %s\n", n.Severity, n.Message)
	}
}

// promptLine reads one trimmed line; ok is false on EOF or 'q'
func promptLine(reader *bufio.Scanner, prompt string) (string, bool) {
	fmt.Print(prompt)
	if !reader.Scan() {
		return "", false
	}
	line := strings.TrimSpace(reader.Text())
	if line == "q" {
		return "", false
	}
	return line, true
}

// formDeps assembles the collaborator set a form session works against
func formDeps(app *AppContext) form.Deps {
	return form.Deps{
		Config:    app.Cfg,
		Logger:    app.Logger,
		Roster:    app.Roster,
		Store:     app.Store,
		Notifier:  app.Notifier,
		Cues:      app.Cues,
		Reminders: app.Reminders,
		Broadcast: app.Hub,
	}
}
