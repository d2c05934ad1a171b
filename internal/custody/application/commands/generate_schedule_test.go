package commands

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pawplan/pawplan/internal/custody/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateScheduleHandler_Handle(t *testing.T) {
	repo := new(mockScheduleRepo)
	pub := new(mockPublisher)

	var saved *domain.CustodySchedule
	repo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.CustodySchedule)
	}).Return(nil)
	pub.On("Publish", mock.Anything, domain.RoutingKeyScheduleGenerated, mock.Anything).Return(nil)

	handler := NewGenerateScheduleHandler(repo, pub)

	a := uuid.New()
	b := uuid.New()
	result, err := handler.Handle(context.Background(), GenerateScheduleCommand{
		PartyA:       a,
		PartyB:       b,
		StartDate:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		InitialParty: a,
		NumberOfDays: 14,
	})

	require.NoError(t, err)
	assert.Equal(t, 14, result.DayCount)
	require.NotNil(t, saved)
	assert.Equal(t, result.ScheduleID, saved.ID())
	assert.Empty(t, saved.DomainEvents(), "events are cleared after publishing")

	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestGenerateScheduleHandler_CustomRotation(t *testing.T) {
	repo := new(mockScheduleRepo)
	pub := new(mockPublisher)

	var saved *domain.CustodySchedule
	repo.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.CustodySchedule)
	}).Return(nil)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	handler := NewGenerateScheduleHandler(repo, pub)

	a := uuid.New()
	b := uuid.New()
	_, err := handler.Handle(context.Background(), GenerateScheduleCommand{
		PartyA:       a,
		PartyB:       b,
		StartDate:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		InitialParty: b,
		NumberOfDays: 8,
		RotationDays: 2,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	periods := saved.Periods(0)
	require.Len(t, periods, 4)
	assert.Equal(t, b, periods[0].PartyID)
	assert.Equal(t, 2, periods[0].DayCount)
}

func TestGenerateScheduleHandler_InvalidParties(t *testing.T) {
	handler := NewGenerateScheduleHandler(new(mockScheduleRepo), new(mockPublisher))

	a := uuid.New()
	_, err := handler.Handle(context.Background(), GenerateScheduleCommand{
		PartyA:       a,
		PartyB:       a,
		StartDate:    time.Now(),
		InitialParty: a,
		NumberOfDays: 7,
	})

	assert.ErrorIs(t, err, domain.ErrSameParty)
}
