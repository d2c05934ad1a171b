package custody

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawplan/pawplan/adapter/cli"
	"github.com/pawplan/pawplan/internal/custody/domain"
)

func testApp() *cli.App {
	a := uuid.New()
	b := uuid.New()
	return &cli.App{
		PartyA: a,
		PartyB: b,
		PartyNames: domain.PartyNames{
			a: "Alice",
			b: "Ben",
		},
	}
}

func TestParseDate(t *testing.T) {
	date, err := parseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), date)

	_, err = parseDate("05/03/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestParseDateList(t *testing.T) {
	dates, err := parseDateList("2024-03-05, 2024-03-06,2024-03-07")
	require.NoError(t, err)
	require.Len(t, dates, 3)
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), dates[1])

	_, err = parseDateList("2024-03-05,notadate")
	require.Error(t, err)

	_, err = parseDateList(" , ")
	require.Error(t, err)
}

func TestResolveParty(t *testing.T) {
	app := testApp()

	got, err := resolveParty(app, "a")
	require.NoError(t, err)
	assert.Equal(t, app.PartyA, got)

	got, err = resolveParty(app, "B")
	require.NoError(t, err)
	assert.Equal(t, app.PartyB, got)

	got, err = resolveParty(app, "ben")
	require.NoError(t, err)
	assert.Equal(t, app.PartyB, got)

	raw := uuid.New()
	got, err = resolveParty(app, raw.String())
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	_, err = resolveParty(app, "charlie")
	require.Error(t, err)
}

func TestParseScheduleID(t *testing.T) {
	id, err := parseScheduleID("")
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)

	want := uuid.New()
	id, err = parseScheduleID(want.String())
	require.NoError(t, err)
	assert.Equal(t, want, id)

	_, err = parseScheduleID("nope")
	require.Error(t, err)
}

func TestRotationSettings(t *testing.T) {
	app := testApp()
	app.RotationDays = 2
	app.MaxConsecutiveDays = 5

	// Zero flags defer to the configured geometry.
	rotation, maxDays := rotationSettings(app, 0, 0)
	assert.Equal(t, 2, rotation)
	assert.Equal(t, 5, maxDays)

	// Explicit flags win.
	rotation, maxDays = rotationSettings(app, 4, 6)
	assert.Equal(t, 4, rotation)
	assert.Equal(t, 6, maxDays)

	// Each flag falls back independently.
	rotation, maxDays = rotationSettings(app, 3, 0)
	assert.Equal(t, 3, rotation)
	assert.Equal(t, 5, maxDays)
}
