package custody

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan/internal/custody/application/commands"
)

var (
	initStart    string
	initDays     int
	initFirst    string
	initRotation int
	initMax      int
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a new custody schedule",
	Long: `Generate a rotating custody schedule between the two configured
parties.

Examples:
  pawplan custody init --days 14
  pawplan custody init --start 2024-03-01 --days 30 --first b
  pawplan custody init --days 14 --rotation 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}

		start := time.Now()
		if initStart != "" {
			start, err = parseDate(initStart)
			if err != nil {
				return err
			}
		}

		first, err := resolveParty(app, initFirst)
		if err != nil {
			return err
		}

		rotation, maxDays := rotationSettings(app, initRotation, initMax)

		result, err := app.GenerateScheduleHandler.Handle(cmd.Context(), commands.GenerateScheduleCommand{
			PartyA:             app.PartyA,
			PartyB:             app.PartyB,
			StartDate:          start,
			InitialParty:       first,
			NumberOfDays:       initDays,
			RotationDays:       rotation,
			MaxConsecutiveDays: maxDays,
		})
		if err != nil {
			return fmt.Errorf("failed to generate schedule: %w", err)
		}

		fmt.Printf("Created schedule %s covering %d days starting %s\n",
			result.ScheduleID,
			result.DayCount,
			start.Format("2006-01-02"),
		)
		fmt.Printf("First custody: %s\n", app.PartyNames.DisplayName(first))
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initStart, "start", "s", "", "start date (YYYY-MM-DD), defaults to today")
	initCmd.Flags().IntVarP(&initDays, "days", "n", 14, "number of days to schedule")
	initCmd.Flags().StringVarP(&initFirst, "first", "f", "a", "party with custody on day one (a or b)")
	initCmd.Flags().IntVar(&initRotation, "rotation", 0, "days per custody block (default 3)")
	initCmd.Flags().IntVar(&initMax, "max", 0, "maximum consecutive days per party (default 4)")
}
