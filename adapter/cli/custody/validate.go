package custody

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan/internal/custody/application/queries"
)

var validateSchedule string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the calendar against the consecutive-day limit",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		scheduleID, err := parseScheduleID(validateSchedule)
		if err != nil {
			return err
		}

		result, err := app.ValidateScheduleHandler.Handle(cmd.Context(), queries.ValidateScheduleQuery{
			ScheduleID: scheduleID,
			Names:      app.PartyNames,
		})
		if err != nil {
			return fmt.Errorf("failed to validate schedule: %w", err)
		}

		for id, days := range result.MaxConsecutiveDays {
			fmt.Printf("%s: longest stretch %d day(s)\n", app.PartyNames.DisplayName(id), days)
		}

		if result.IsValid {
			fmt.Println("Schedule is valid.")
			return nil
		}

		fmt.Printf("Schedule has %d violation(s):\n", len(result.Violations))
		for _, violation := range result.Violations {
			fmt.Printf("  %s\n", violation)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSchedule, "schedule", "", "schedule ID (defaults to the latest)")
}
