package db

import "github.com/jakechorley/shiftdesk/pkg/core/model"

// ShiftStore defines the interface for shift record operations.
// The submission pipeline simulates persistence latency itself, so
// implementations are synchronous from the workflow's perspective.
type ShiftStore interface {
	CreateShift(shift *model.Shift) error
	UpdateShift(shift *model.Shift) error
	GetShiftByID(id string) (*model.Shift, bool)
	IsEmpty() bool
	ListShifts() []model.Shift
}
