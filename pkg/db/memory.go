package db

import (
	"fmt"
	"sync"

	"github.com/jakechorley/shiftdesk/pkg/core/model"
)

// MemoryStore is an in-memory ShiftStore. Records are kept in insertion
// order so ListShifts is stable.
type MemoryStore struct {
	mu     sync.Mutex
	shifts []model.Shift
	byID   map[string]int
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]int),
	}
}

// CreateShift inserts a new shift record
func (s *MemoryStore) CreateShift(shift *model.Shift) error {
	if shift.ID == "" {
		return fmt.Errorf("cannot create shift without an id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[shift.ID]; exists {
		return fmt.Errorf("shift %s already exists", shift.ID)
	}

	s.byID[shift.ID] = len(s.shifts)
	s.shifts = append(s.shifts, *shift)
	return nil
}

// UpdateShift replaces an existing shift record matched by id
func (s *MemoryStore) UpdateShift(shift *model.Shift) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.byID[shift.ID]
	if !exists {
		return fmt.Errorf("shift %s not found", shift.ID)
	}

	s.shifts[idx] = *shift
	return nil
}

// GetShiftByID returns a copy of the shift with the given id
func (s *MemoryStore) GetShiftByID(id string) (*model.Shift, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.byID[id]
	if !exists {
		return nil, false
	}

	shift := s.shifts[idx]
	return &shift, true
}

// IsEmpty reports whether the store holds no shift records
func (s *MemoryStore) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shifts) == 0
}

// ListShifts returns a copy of all shift records in insertion order
func (s *MemoryStore) ListShifts() []model.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Shift, len(s.shifts))
	copy(out, s.shifts)
	return out
}
