package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/shiftdesk/pkg/core/model"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := NewMemoryStore()
	assert.True(t, store.IsEmpty())

	shift := &model.Shift{ID: "shift-1", EmployeeName: "Alice Nguyen", Role: model.RoleServer}
	require.NoError(t, store.CreateShift(shift))

	assert.False(t, store.IsEmpty())

	got, found := store.GetShiftByID("shift-1")
	require.True(t, found)
	assert.Equal(t, "Alice Nguyen", got.EmployeeName)
}

func TestMemoryStore_CreateRejectsDuplicateID(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.CreateShift(&model.Shift{ID: "shift-1"}))

	err := store.CreateShift(&model.Shift{ID: "shift-1"})
	assert.Error(t, err)
}

func TestMemoryStore_CreateRejectsEmptyID(t *testing.T) {
	store := NewMemoryStore()
	err := store.CreateShift(&model.Shift{})
	assert.Error(t, err)
}

func TestMemoryStore_Update(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.CreateShift(&model.Shift{ID: "shift-1", Role: model.RoleServer}))

	err := store.UpdateShift(&model.Shift{ID: "shift-1", Role: model.RoleManager})
	require.NoError(t, err)

	got, found := store.GetShiftByID("shift-1")
	require.True(t, found)
	assert.Equal(t, model.RoleManager, got.Role)
}

func TestMemoryStore_UpdateUnknownID(t *testing.T) {
	store := NewMemoryStore()
	err := store.UpdateShift(&model.Shift{ID: "missing"})
	assert.Error(t, err)
}

func TestMemoryStore_ListShiftsPreservesInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.CreateShift(&model.Shift{ID: "shift-1"}))
	require.NoError(t, store.CreateShift(&model.Shift{ID: "shift-2"}))
	require.NoError(t, store.CreateShift(&model.Shift{ID: "shift-3"}))

	shifts := store.ListShifts()
	require.Len(t, shifts, 3)
	assert.Equal(t, "shift-1", shifts[0].ID)
	assert.Equal(t, "shift-3", shifts[2].ID)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.CreateShift(&model.Shift{ID: "shift-1", Role: model.RoleServer}))

	got, _ := store.GetShiftByID("shift-1")
	got.Role = model.RoleCook

	again, _ := store.GetShiftByID("shift-1")
	assert.Equal(t, model.RoleServer, again.Role)
}
