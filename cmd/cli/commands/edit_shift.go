package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shiftdesk/pkg/core/form"
)

// EditShiftCmd creates the editShift command
func EditShiftCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "editShift <shift-id>",
		Short: "Edit an existing shift through the two-step form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID := args[0]

			session := form.Open(formDeps(app), form.OpenOptions{
				ShiftID: shiftID,
				Date:    time.Now().Format("2006-01-02"),
				ClearSelection: func() {
					app.Logger.Debug("Cleared selected shift", zap.String("shift_id", shiftID))
				},
			})

			if session.Mode() == form.ModeAdd {
				fmt.Printf("Shift %s was not found; creating a new shift instead.\n", shiftID)
			}

			return runForm(app, session)
		},
	}

	return cmd
}
