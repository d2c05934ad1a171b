package custody

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan/internal/custody/application/commands"
)

var (
	revertSchedule string
	revertDate     string
)

var revertCmd = &cobra.Command{
	Use:   "revert",
	Short: "Restore a date to its original assignment",
	Long: `Undo the adjustment on a single date, restoring the party the
rotation originally assigned.

Examples:
  pawplan custody revert --date 2024-03-05`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		scheduleID, err := parseScheduleID(revertSchedule)
		if err != nil {
			return err
		}
		date, err := parseDate(revertDate)
		if err != nil {
			return err
		}

		result, err := app.RevertDateHandler.Handle(cmd.Context(), commands.RevertDateCommand{
			ScheduleID: scheduleID,
			Date:       date,
		})
		if err != nil {
			return fmt.Errorf("failed to revert date: %w", err)
		}

		fmt.Printf("Restored %s to %s\n",
			result.Date.Format("2006-01-02"),
			app.PartyNames.DisplayName(result.AssignedTo),
		)
		return nil
	},
}

func init() {
	revertCmd.Flags().StringVar(&revertSchedule, "schedule", "", "schedule ID (defaults to the latest)")
	revertCmd.Flags().StringVarP(&revertDate, "date", "d", "", "date to restore (YYYY-MM-DD)")
	_ = revertCmd.MarkFlagRequired("date")
}
