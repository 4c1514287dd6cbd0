package model

type Role string

const (
	RoleManager Role = "Manager"
	RoleServer  Role = "Server"
	RoleCook    Role = "Cook"
	RoleHost    Role = "Host"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleServer, RoleCook, RoleHost:
		return true
	}
	return false
}

// roleColors is the fixed role -> color token mapping used when a draft has
// no explicit color override
var roleColors = map[Role]string{
	RoleManager: "#8b5cf6",
	RoleServer:  "#3b82f6",
	RoleCook:    "#f59e0b",
	RoleHost:    "#10b981",
}

// ColorForRole returns the display color token assigned to a role.
// The second return is false for roles outside the fixed role set.
func ColorForRole(r Role) (string, bool) {
	color, ok := roleColors[r]
	return color, ok
}

type Status string

const (
	StatusConfirmed Status = "Confirmed"
	StatusPending   Status = "Pending"
	StatusCanceled  Status = "Canceled"
)

func (s Status) IsValid() bool {
	return s == StatusConfirmed || s == StatusPending || s == StatusCanceled
}

// Employee represents a rostered employee. The roster is read-only to the
// form workflow; Name is the unique key used for matching.
type Employee struct {
	ID    string
	Name  string
	Role  Role
	Color string
}

// Shift represents a shift record. A shift being created or edited in the
// form (the draft) is a Shift that has not yet been committed to the store.
type Shift struct {
	ID           string
	EmployeeName string
	Role         Role
	Status       Status
	Date         string // caller-supplied, may carry incidental whitespace
	StartTime    string // HH:MM, 24-hour
	EndTime      string // HH:MM, 24-hour
	TimeRange    string // derived "h:mm AM/PM - h:mm AM/PM" display form
	Color        string // derived from role unless explicitly overridden
	Priority     bool
}
