package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/shiftdesk/pkg/core/form"
)

// AddShiftCmd creates the addShift command
func AddShiftCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addShift",
		Short: "Create a new shift through the two-step form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			session := form.Open(formDeps(app), form.OpenOptions{Date: date})
			return runForm(app, session)
		},
	}

	cmd.Flags().String("date", "", "Target date for the shift (YYYY-MM-DD, default today)")

	return cmd
}
