package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/shiftdesk/internal/config"
	"github.com/jakechorley/shiftdesk/pkg/broadcast"
	"github.com/jakechorley/shiftdesk/pkg/db"
	"github.com/jakechorley/shiftdesk/pkg/notify"
	"github.com/jakechorley/shiftdesk/pkg/reminders"
	"github.com/jakechorley/shiftdesk/pkg/roster"
	"github.com/jakechorley/shiftdesk/pkg/sounds"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg       *config.Config
	Store     db.ShiftStore
	Roster    roster.Provider
	Notifier  *notify.MemorySink
	Cues      sounds.Player
	Reminders *reminders.Checker
	Hub       *broadcast.Hub
	Logger    *zap.Logger
	Ctx       context.Context
}
