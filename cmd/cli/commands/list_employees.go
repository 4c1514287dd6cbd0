package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// ListEmployeesCmd creates the listEmployees command
func ListEmployeesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listEmployees",
		Short: "List the employee roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees := app.Roster.ListEmployees()
			if len(employees) == 0 {
				fmt.Println("The roster is empty. Add employees to the config file.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"ID", "Name", "Role", "Color"})
			for _, e := range employees {
				t.AppendRow(table.Row{e.ID, e.Name, e.Role, e.Color})
			}
			t.Render()

			return nil
		},
	}

	return cmd
}
