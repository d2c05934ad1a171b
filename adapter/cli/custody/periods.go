package custody

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan/internal/custody/application/queries"
)

var (
	periodsSchedule string
	periodsRange    int
)

var periodsCmd = &cobra.Command{
	Use:   "periods",
	Short: "Show contiguous custody periods",
	Long: `Reduce the calendar to contiguous custody periods and count the
handoffs between them.

Examples:
  pawplan custody periods
  pawplan custody periods --range 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		scheduleID, err := parseScheduleID(periodsSchedule)
		if err != nil {
			return err
		}

		result, err := app.GetPeriodsHandler.Handle(cmd.Context(), queries.GetPeriodsQuery{
			ScheduleID: scheduleID,
			DayRange:   periodsRange,
		})
		if err != nil {
			return fmt.Errorf("failed to get periods: %w", err)
		}

		if len(result.Periods) == 0 {
			fmt.Println("No custody periods.")
			return nil
		}

		for _, period := range result.Periods {
			fmt.Printf("%s  %s to %s  (%d day(s))\n",
				app.PartyNames.DisplayName(period.PartyID),
				period.StartDate.Format("2006-01-02"),
				period.EndDate.Format("2006-01-02"),
				period.DayCount,
			)
		}
		fmt.Println(strings.Repeat("-", 48))
		fmt.Printf("%d period(s), %d handoff(s)\n", len(result.Periods), result.Transitions)
		return nil
	},
}

func init() {
	periodsCmd.Flags().StringVar(&periodsSchedule, "schedule", "", "schedule ID (defaults to the latest)")
	periodsCmd.Flags().IntVar(&periodsRange, "range", 0, "limit to the first N days (0 = all)")
}
