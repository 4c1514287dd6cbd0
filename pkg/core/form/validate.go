package form

import (
	"fmt"

	"github.com/jakechorley/shiftdesk/pkg/core/model"
	"github.com/jakechorley/shiftdesk/pkg/notify"
	"github.com/jakechorley/shiftdesk/pkg/roster"
)

// OutcomeKind tags a validation outcome
type OutcomeKind string

const (
	OutcomeValid            OutcomeKind = "valid"
	OutcomeEmployeeNotFound OutcomeKind = "employee-not-found"
	OutcomeRoleMismatch     OutcomeKind = "role-mismatch"
)

// Outcome is the result of cross-checking a completed draft against the
// roster. A non-valid outcome blocks submission regardless of severity; a
// role mismatch is presented as a warning but still has to be resolved.
type Outcome struct {
	Kind     OutcomeKind
	Severity notify.Severity
	Message  string
}

// Valid reports whether the outcome allows submission to proceed
func (o Outcome) Valid() bool {
	return o.Kind == OutcomeValid
}

// ValidateDraft cross-checks a completed draft against the roster. Employee
// existence is checked first and short-circuits, so an unknown employee is
// reported even when the role would also mismatch. Callers run this only at
// the terminal step, not per keystroke.
func ValidateDraft(draft model.Shift, provider roster.Provider) Outcome {
	emp, found := provider.FindEmployeeByName(draft.EmployeeName)
	if !found {
		return Outcome{
			Kind:     OutcomeEmployeeNotFound,
			Severity: notify.SeverityError,
			Message: fmt.Sprintf("%q is not on the roster. Register them as an employee before scheduling their shift.",
				draft.EmployeeName),
		}
	}

	if emp.Role != draft.Role {
		return Outcome{
			Kind:     OutcomeRoleMismatch,
			Severity: notify.SeverityWarning,
			Message: fmt.Sprintf("%s is rostered as a %s, not a %s. Change the role or pick a different employee.",
				draft.EmployeeName, emp.Role, draft.Role),
		}
	}

	return Outcome{Kind: OutcomeValid}
}
