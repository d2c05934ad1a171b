package custody

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan/internal/custody/application/commands"
)

var (
	unavailableSchedule string
	unavailableParty    string
	unavailableDates    string
	unavailableReason   string
)

var unavailableCmd = &cobra.Command{
	Use:   "unavailable",
	Short: "Mark dates a party cannot take custody",
	Long: `Mark one or more dates as unavailable for a party. Any custody
conflicts are resolved by shifting handoffs, and the resulting
adjustment is reported.

Examples:
  pawplan custody unavailable --party a --dates 2024-03-05
  pawplan custody unavailable --party b --dates 2024-03-05,2024-03-06 --reason travel`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		scheduleID, err := parseScheduleID(unavailableSchedule)
		if err != nil {
			return err
		}
		party, err := resolveParty(app, unavailableParty)
		if err != nil {
			return err
		}
		dates, err := parseDateList(unavailableDates)
		if err != nil {
			return err
		}

		result, err := app.ApplyUnavailabilityHandler.Handle(cmd.Context(), commands.ApplyUnavailabilityCommand{
			ScheduleID: scheduleID,
			PartyID:    party,
			Dates:      dates,
			Reason:     unavailableReason,
		})
		if err != nil {
			return fmt.Errorf("failed to apply unavailability: %w", err)
		}

		adj := result.Adjustment
		if adj.IsEmpty() {
			fmt.Printf("Marked %d date(s) unavailable for %s. No custody conflicts.\n",
				len(dates), app.PartyNames.DisplayName(party))
			return nil
		}

		fmt.Printf("Resolved %d conflict(s) via %s\n", len(adj.ConflictDates), adj.Strategy)
		printed := make([]time.Time, 0, len(adj.ProposedAssignments))
		for date := range adj.ProposedAssignments {
			printed = append(printed, date)
		}
		sort.Slice(printed, func(i, j int) bool { return printed[i].Before(printed[j]) })
		for _, date := range printed {
			fmt.Printf("  %s: %s -> %s\n",
				date.Format("2006-01-02"),
				app.PartyNames.DisplayName(adj.OriginalAssignments[date]),
				app.PartyNames.DisplayName(adj.ProposedAssignments[date]),
			)
		}
		fmt.Printf("Handoffs changed: %d\n", adj.HandoffCount)

		for _, warning := range adj.Warnings {
			fmt.Printf("Warning: %s\n", warning)
		}
		return nil
	},
}

func init() {
	unavailableCmd.Flags().StringVar(&unavailableSchedule, "schedule", "", "schedule ID (defaults to the latest)")
	unavailableCmd.Flags().StringVarP(&unavailableParty, "party", "p", "", "party that is unavailable (a or b)")
	unavailableCmd.Flags().StringVarP(&unavailableDates, "dates", "d", "", "comma-separated dates (YYYY-MM-DD)")
	unavailableCmd.Flags().StringVarP(&unavailableReason, "reason", "r", "", "reason for the unavailability")
	_ = unavailableCmd.MarkFlagRequired("party")
	_ = unavailableCmd.MarkFlagRequired("dates")
}
