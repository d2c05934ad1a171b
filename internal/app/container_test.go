package app_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawplan/pawplan/internal/app"
	"github.com/pawplan/pawplan/internal/custody/application/commands"
	"github.com/pawplan/pawplan/pkg/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DatabaseDriver:     "sqlite",
		SQLitePath:         filepath.Join(t.TempDir(), "pawplan.db"),
		PartyAName:         "Alice",
		PartyBName:         "Ben",
		RotationDays:       2,
		MaxConsecutiveDays: 5,
	}
}

func TestNewContainer_CarriesConfiguredRotation(t *testing.T) {
	ctx := context.Background()

	c, err := app.NewContainer(ctx, testConfig(t), slog.Default())
	require.NoError(t, err)
	t.Cleanup(c.Close)

	assert.Equal(t, 2, c.RotationDays)
	assert.Equal(t, 5, c.MaxConsecutiveDays)
}

func TestNewContainer_ConfiguredRotationDrivesGeneration(t *testing.T) {
	ctx := context.Background()

	c, err := app.NewContainer(ctx, testConfig(t), slog.Default())
	require.NoError(t, err)
	t.Cleanup(c.Close)

	result, err := c.GenerateScheduleHandler.Handle(ctx, commands.GenerateScheduleCommand{
		PartyA:             c.PartyA,
		PartyB:             c.PartyB,
		StartDate:          time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		InitialParty:       c.PartyA,
		NumberOfDays:       8,
		RotationDays:       c.RotationDays,
		MaxConsecutiveDays: c.MaxConsecutiveDays,
	})
	require.NoError(t, err)

	schedule, err := c.ScheduleRepo.FindByID(ctx, result.ScheduleID)
	require.NoError(t, err)
	require.NotNil(t, schedule)

	entries := schedule.Entries()
	require.Len(t, entries, 8)
	for i, entry := range entries {
		want := c.PartyA
		if (i/2)%2 == 1 {
			want = c.PartyB
		}
		assert.Equal(t, want, entry.AssignedTo(), "day %d", i)
	}
}
