package roster

import "github.com/jakechorley/shiftdesk/pkg/core/model"

// Provider defines read-only access to the employee roster
type Provider interface {
	FindEmployeeByName(name string) (*model.Employee, bool)
	ListEmployees() []model.Employee
}

// StaticRoster is a Provider backed by a fixed employee list, typically
// seeded from configuration
type StaticRoster struct {
	employees []model.Employee
	byName    map[string]int
}

// NewStaticRoster builds a roster from the given employees. Name is the
// unique matching key; later duplicates are ignored.
func NewStaticRoster(employees []model.Employee) *StaticRoster {
	r := &StaticRoster{
		employees: make([]model.Employee, 0, len(employees)),
		byName:    make(map[string]int, len(employees)),
	}
	for _, emp := range employees {
		if _, exists := r.byName[emp.Name]; exists {
			continue
		}
		r.byName[emp.Name] = len(r.employees)
		r.employees = append(r.employees, emp)
	}
	return r
}

// FindEmployeeByName looks up an employee by exact name match
func (r *StaticRoster) FindEmployeeByName(name string) (*model.Employee, bool) {
	idx, exists := r.byName[name]
	if !exists {
		return nil, false
	}
	emp := r.employees[idx]
	return &emp, true
}

// ListEmployees returns a copy of all rostered employees
func (r *StaticRoster) ListEmployees() []model.Employee {
	out := make([]model.Employee, len(r.employees))
	copy(out, r.employees)
	return out
}
