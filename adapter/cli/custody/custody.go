package custody

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan/adapter/cli"
)

// Cmd is the custody command group
var Cmd = &cobra.Command{
	Use:   "custody",
	Short: "Manage the custody calendar",
	Long:  `Generate, inspect, and adjust the rotating custody calendar.`,
}

func init() {
	Cmd.AddCommand(initCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(unavailableCmd)
	Cmd.AddCommand(periodsCmd)
	Cmd.AddCommand(validateCmd)
	Cmd.AddCommand(revertCmd)
}

// resolveParty maps a --party flag value to a configured party ID. Accepts
// the shorthand "a"/"b", a configured display name, or a raw UUID.
func resolveParty(app *cli.App, value string) (uuid.UUID, error) {
	switch strings.ToLower(value) {
	case "a":
		return app.PartyA, nil
	case "b":
		return app.PartyB, nil
	}

	for id, name := range app.PartyNames {
		if strings.EqualFold(name, value) {
			return id, nil
		}
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("unknown party %q, use a, b, a configured name, or a UUID", value)
	}
	return id, nil
}

// rotationSettings merges the --rotation and --max flags with the
// environment-configured geometry. A zero flag defers to the configured
// value.
func rotationSettings(app *cli.App, rotation, maxDays int) (int, int) {
	if rotation == 0 {
		rotation = app.RotationDays
	}
	if maxDays == 0 {
		maxDays = app.MaxConsecutiveDays
	}
	return rotation, maxDays
}

// parseScheduleID parses an optional --schedule flag. Empty means the most
// recent schedule.
func parseScheduleID(value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid schedule ID: %w", err)
	}
	return id, nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD: %w", value, err)
	}
	return date, nil
}

func parseDateList(value string) ([]time.Time, error) {
	parts := strings.Split(value, ",")
	dates := make([]time.Time, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		date, err := parseDate(part)
		if err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("no dates given")
	}
	return dates, nil
}

func requireApp() (*cli.App, error) {
	app := cli.GetApp()
	if app == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}
