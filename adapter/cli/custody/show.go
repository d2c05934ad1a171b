package custody

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan/internal/custody/application/queries"
)

var showSchedule string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the custody calendar",
	Long: `Display the custody calendar with per-day assignments.

Examples:
  pawplan custody show
  pawplan custody show --schedule 6b3c...`,
	Aliases: []string{"view"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		scheduleID, err := parseScheduleID(showSchedule)
		if err != nil {
			return err
		}

		schedule, err := app.GetScheduleHandler.Handle(cmd.Context(), queries.GetScheduleQuery{
			ScheduleID: scheduleID,
		})
		if err != nil {
			return fmt.Errorf("failed to get schedule: %w", err)
		}

		fmt.Printf("Custody schedule %s\n", schedule.ID)
		fmt.Printf("%s through %s, %d days\n",
			schedule.StartDate.Format("Monday, January 2, 2006"),
			schedule.StartDate.AddDate(0, 0, schedule.DayCount-1).Format("Monday, January 2, 2006"),
			schedule.DayCount,
		)
		fmt.Println(strings.Repeat("=", 60))

		for _, entry := range schedule.Entries {
			marker := "   "
			if entry.IsUnavailable {
				marker = "[!]"
			}

			line := fmt.Sprintf("%s %s  %s",
				marker,
				entry.Date.Format("Mon 2006-01-02"),
				app.PartyNames.DisplayName(entry.AssignedTo),
			)
			if entry.IsAdjusted {
				line += fmt.Sprintf("  (was %s)", app.PartyNames.DisplayName(entry.OriginalAssignedTo))
			}
			if entry.IsUnavailable {
				line += fmt.Sprintf("  unavailable: %s", app.PartyNames.DisplayName(entry.UnavailableBy))
			}
			fmt.Println(line)
		}

		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("Last updated: %s\n", schedule.LastUpdated.Format("2006-01-02 15:04"))
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showSchedule, "schedule", "", "schedule ID (defaults to the latest)")
}
