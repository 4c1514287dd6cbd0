package form

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/jakechorley/shiftdesk/internal/config"
	"github.com/jakechorley/shiftdesk/pkg/broadcast"
	"github.com/jakechorley/shiftdesk/pkg/core/model"
	"github.com/jakechorley/shiftdesk/pkg/db"
	"github.com/jakechorley/shiftdesk/pkg/notify"
	"github.com/jakechorley/shiftdesk/pkg/roster"
	"github.com/jakechorley/shiftdesk/pkg/sounds"
)

// Shared test fixtures for the form package.

// recordingPlayer captures cue requests for assertions
type recordingPlayer struct {
	mu   sync.Mutex
	cues []sounds.Cue
}

func (p *recordingPlayer) Play(cue sounds.Cue, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cues = append(p.cues, cue)
}

func (p *recordingPlayer) played() []sounds.Cue {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]sounds.Cue, len(p.cues))
	copy(out, p.cues)
	return out
}

// recordingReminders captures reminder checks
type recordingReminders struct {
	mu     sync.Mutex
	shifts []model.Shift
}

func (r *recordingReminders) CheckReminder(shift model.Shift) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shifts = append(r.shifts, shift)
}

func (r *recordingReminders) checked() []model.Shift {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Shift, len(r.shifts))
	copy(out, r.shifts)
	return out
}

// failingStore wraps a store and fails every write
type failingStore struct {
	db.ShiftStore
}

func (f *failingStore) CreateShift(*model.Shift) error {
	return fmt.Errorf("storage unavailable")
}

func (f *failingStore) UpdateShift(*model.Shift) error {
	return fmt.Errorf("storage unavailable")
}

func testRoster() *roster.StaticRoster {
	return roster.NewStaticRoster([]model.Employee{
		{ID: "emp-1", Name: "Alice Nguyen", Role: model.RoleServer, Color: "#3b82f6"},
		{ID: "emp-2", Name: "Bob Okafor", Role: model.RoleManager, Color: "#8b5cf6"},
	})
}

// testFixture bundles a session's collaborators so tests can inspect them
type testFixture struct {
	cfg       *config.Config
	store     db.ShiftStore
	sink      *notify.MemorySink
	cues      *recordingPlayer
	reminders *recordingReminders
	hub       *broadcast.Hub
	signals   *signalCounter
}

type signalCounter struct {
	mu    sync.Mutex
	count int
}

func (c *signalCounter) bump() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
}

func (c *signalCounter) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// newFixture builds collaborators with short delays so pipeline tests run
// quickly
func newFixture() *testFixture {
	cfg := config.Default()
	cfg.PersistDelayMs = 10
	cfg.OnboardingNudgeDelayMs = 20

	f := &testFixture{
		cfg:       cfg,
		store:     db.NewMemoryStore(),
		sink:      notify.NewMemorySink(),
		cues:      &recordingPlayer{},
		reminders: &recordingReminders{},
		hub:       broadcast.NewHub(),
		signals:   &signalCounter{},
	}
	f.hub.Subscribe(broadcast.SignalPromptTutorial, func(broadcast.Signal) {
		f.signals.bump()
	})
	return f
}

func (f *testFixture) deps() Deps {
	return Deps{
		Config:    f.cfg,
		Logger:    zap.NewNop(),
		Roster:    testRoster(),
		Store:     f.store,
		Notifier:  f.sink,
		Cues:      f.cues,
		Reminders: f.reminders,
		Broadcast: f.hub,
	}
}

func (f *testFixture) open(date string) *Session {
	return Open(f.deps(), OpenOptions{Date: date})
}

// fillValidDraft walks a session to a submit-ready state on the terminal
// step
func fillValidDraft(s *Session) {
	s.SetField(FieldEmployeeName, "Alice Nguyen")
	s.NextStep()
	s.SetField(FieldStartTime, "09:00")
	s.SetField(FieldEndTime, "17:00")
}
