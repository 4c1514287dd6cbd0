package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// ListShiftsCmd creates the listShifts command
func ListShiftsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listShifts",
		Short: "List all saved shifts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shifts := app.Store.ListShifts()
			if len(shifts) == 0 {
				fmt.Println("No shifts saved yet. Use addShift to create one.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"ID", "Employee", "Role", "Status", "Date", "Time", "Priority"})
			for _, s := range shifts {
				priority := ""
				if s.Priority {
					priority = "yes"
				}
				t.AppendRow(table.Row{s.ID, s.EmployeeName, s.Role, s.Status, s.Date, s.TimeRange, priority})
			}
			t.Render()

			for _, r := range app.Reminders.Pending() {
				fmt.Printf("Reminder for %s at %s\n", r.EmployeeName, r.RemindAt.Format("2006-01-02 15:04"))
			}

			return nil
		},
	}

	return cmd
}
