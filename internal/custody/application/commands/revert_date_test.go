package commands

import (
	"context"
	"testing"
	"time"

	"github.com/pawplan/pawplan/internal/custody/application/services"
	"github.com/pawplan/pawplan/internal/custody/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRevertDateHandler_Handle(t *testing.T) {
	schedule, a, _ := testSchedule(t)
	repo := new(mockScheduleRepo)
	pub := new(mockPublisher)

	repo.On("FindByID", mock.Anything, schedule.ID()).Return(schedule, nil)
	repo.On("Save", mock.Anything, schedule).Return(nil)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	// Adjust day 3 first so there is something to revert.
	day3 := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)
	apply := NewApplyUnavailabilityHandler(repo, services.NewCustodyResolver(nil), pub, nil)
	_, err := apply.Handle(context.Background(), ApplyUnavailabilityCommand{
		ScheduleID: schedule.ID(),
		PartyID:    a,
		Dates:      []time.Time{day3},
	})
	require.NoError(t, err)

	handler := NewRevertDateHandler(repo, pub)
	result, err := handler.Handle(context.Background(), RevertDateCommand{
		ScheduleID: schedule.ID(),
		Date:       day3,
	})

	require.NoError(t, err)
	assert.Equal(t, a, result.AssignedTo)
	assert.Equal(t, day3, result.Date)

	entry, _ := schedule.Entry(day3)
	assert.False(t, entry.IsAdjusted())
	assert.False(t, entry.IsUnavailable())
}

func TestRevertDateHandler_NotAdjusted(t *testing.T) {
	schedule, _, _ := testSchedule(t)
	repo := new(mockScheduleRepo)
	pub := new(mockPublisher)
	repo.On("FindByID", mock.Anything, schedule.ID()).Return(schedule, nil)

	handler := NewRevertDateHandler(repo, pub)
	_, err := handler.Handle(context.Background(), RevertDateCommand{
		ScheduleID: schedule.ID(),
		Date:       time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, domain.ErrEntryNotAdjusted)
}
