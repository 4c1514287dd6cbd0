package form

// Step identifies one of the two form steps
type Step int

const (
	// StepDetails collects the identity fields: employee, role, status
	StepDetails Step = 1
	// StepTiming collects the time range and is the terminal,
	// submit-eligible step
	StepTiming Step = 2
)

// StepMachine tracks the active form step and governs transitions. Both
// transitions are no-ops outside their valid source state; there is no
// error case.
type StepMachine struct {
	current Step
}

func NewStepMachine() StepMachine {
	return StepMachine{current: StepDetails}
}

// Current returns the active step
func (m *StepMachine) Current() Step {
	return m.current
}

// Next advances from the details step to the timing step
func (m *StepMachine) Next() {
	if m.current == StepDetails {
		m.current = StepTiming
	}
}

// Previous returns from the timing step to the details step
func (m *StepMachine) Previous() {
	if m.current == StepTiming {
		m.current = StepDetails
	}
}

// AtTerminal reports whether the form has reached the submit-eligible step
func (m *StepMachine) AtTerminal() bool {
	return m.current == StepTiming
}

// Reset returns the machine to the initial step
func (m *StepMachine) Reset() {
	m.current = StepDetails
}
