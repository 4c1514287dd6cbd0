package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shiftdesk/cmd/cli/commands"
	"github.com/jakechorley/shiftdesk/internal/config"
	"github.com/jakechorley/shiftdesk/pkg/broadcast"
	"github.com/jakechorley/shiftdesk/pkg/core/model"
	"github.com/jakechorley/shiftdesk/pkg/db"
	"github.com/jakechorley/shiftdesk/pkg/notify"
	"github.com/jakechorley/shiftdesk/pkg/reminders"
	"github.com/jakechorley/shiftdesk/pkg/roster"
	"github.com/jakechorley/shiftdesk/pkg/sounds"
	"github.com/jakechorley/shiftdesk/pkg/utils/logging"
)

func main() {
	app := &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "shiftdesk",
		Short: "ShiftDesk CLI - Manage employee shifts",
		Long:  `A CLI tool for creating and editing employee shifts through the two-step shift form.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.AddCommand(commands.AddShiftCmd(app))
	rootCmd.AddCommand(commands.EditShiftCmd(app))
	rootCmd.AddCommand(commands.ListShiftsCmd(app))
	rootCmd.AddCommand(commands.ListEmployeesCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger, config, roster, store, and the workflow
// collaborators
func initApp(app *commands.AppContext) error {
	logger, err := logging.InitLogger("cli")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	employees := cfg.RosterEmployees()
	if len(employees) == 0 {
		employees = demoRoster()
		logger.Info("No employees configured, using the demo roster")
	}

	hub := broadcast.NewHub()
	hub.Subscribe(broadcast.SignalPromptTutorial, func(broadcast.Signal) {
		fmt.Println("\nTip: run 'shiftdesk listShifts' to see your schedule, or 'shiftdesk listEmployees' for the roster.")
	})

	app.Cfg = cfg
	app.Store = db.NewMemoryStore()
	app.Roster = roster.NewStaticRoster(employees)
	app.Notifier = notify.NewMemorySink()
	app.Cues = sounds.NewLogPlayer(logger)
	app.Reminders = reminders.NewChecker(logger, cfg.Reminders.RRule, cfg.ReminderLead())
	app.Hub = hub
	app.Logger = logger
	app.Ctx = context.Background()

	logger.Info("App initialized", zap.Int("roster_size", len(employees)))
	return nil
}

// demoRoster seeds a small roster so the form is usable without a config
// file
func demoRoster() []model.Employee {
	seeds := []model.Employee{
		{ID: "emp-1", Name: "Alice Nguyen", Role: model.RoleServer},
		{ID: "emp-2", Name: "Bob Okafor", Role: model.RoleManager},
		{ID: "emp-3", Name: "Carmen Diaz", Role: model.RoleCook},
		{ID: "emp-4", Name: "Dev Patel", Role: model.RoleHost},
	}
	for i := range seeds {
		if color, ok := model.ColorForRole(seeds[i].Role); ok {
			seeds[i].Color = color
		}
	}
	return seeds
}
