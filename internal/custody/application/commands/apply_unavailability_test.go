package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pawplan/pawplan/internal/custody/application/services"
	"github.com/pawplan/pawplan/internal/custody/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockScheduleRepo is a mock implementation of domain.CustodyScheduleRepository.
type mockScheduleRepo struct {
	mock.Mock
}

func (m *mockScheduleRepo) Save(ctx context.Context, schedule *domain.CustodySchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *mockScheduleRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.CustodySchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustodySchedule), args.Error(1)
}

func (m *mockScheduleRepo) FindLatest(ctx context.Context) (*domain.CustodySchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustodySchedule), args.Error(1)
}

func (m *mockScheduleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockPublisher is a mock implementation of eventbus.Publisher.
type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	args := m.Called(ctx, routingKey, payload)
	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func testSchedule(t *testing.T) (*domain.CustodySchedule, uuid.UUID, uuid.UUID) {
	t.Helper()
	a := uuid.New()
	b := uuid.New()
	pair, err := domain.NewPartyPair(a, b)
	require.NoError(t, err)

	s, err := domain.NewCustodySchedule(
		pair,
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		a,
		12,
		domain.DefaultRotationConfig(),
	)
	require.NoError(t, err)
	s.ClearDomainEvents()
	return s, a, b
}

func TestApplyUnavailabilityHandler_ResolvesConflicts(t *testing.T) {
	schedule, a, b := testSchedule(t)
	repo := new(mockScheduleRepo)
	pub := new(mockPublisher)

	repo.On("FindByID", mock.Anything, schedule.ID()).Return(schedule, nil)
	repo.On("Save", mock.Anything, schedule).Return(nil)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	handler := NewApplyUnavailabilityHandler(repo, services.NewCustodyResolver(nil), pub, nil)

	// Day 3 closes a's first turn; day 4 belongs to b already.
	day3 := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)
	result, err := handler.Handle(context.Background(), ApplyUnavailabilityCommand{
		ScheduleID: schedule.ID(),
		PartyID:    a,
		Dates:      []time.Time{day3},
		Reason:     "travel",
	})

	require.NoError(t, err)
	require.True(t, result.Adjustment.IsValid)
	assert.Equal(t, domain.StrategyEarlyHandoff, result.Adjustment.Strategy)
	assert.Equal(t, 1, result.Adjustment.HandoffCount)

	entry, ok := schedule.Entry(day3)
	require.True(t, ok)
	assert.Equal(t, b, entry.AssignedTo())
	assert.True(t, entry.IsAdjusted())
	assert.True(t, entry.IsUnavailable())

	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestApplyUnavailabilityHandler_NoConflictsSkipsMerge(t *testing.T) {
	schedule, a, b := testSchedule(t)
	repo := new(mockScheduleRepo)
	pub := new(mockPublisher)

	repo.On("FindByID", mock.Anything, schedule.ID()).Return(schedule, nil)
	repo.On("Save", mock.Anything, schedule).Return(nil)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	handler := NewApplyUnavailabilityHandler(repo, services.NewCustodyResolver(nil), pub, nil)

	// b is unavailable on a's day: no conflict, only the unavailability mark.
	day2 := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	result, err := handler.Handle(context.Background(), ApplyUnavailabilityCommand{
		ScheduleID: schedule.ID(),
		PartyID:    b,
		Dates:      []time.Time{day2},
	})

	require.NoError(t, err)
	assert.True(t, result.Adjustment.IsValid)
	assert.True(t, result.Adjustment.IsEmpty())

	entry, _ := schedule.Entry(day2)
	assert.Equal(t, a, entry.AssignedTo())
	assert.False(t, entry.IsAdjusted())
	assert.True(t, entry.IsUnavailable())
}

func TestApplyUnavailabilityHandler_ScheduleNotFound(t *testing.T) {
	repo := new(mockScheduleRepo)
	pub := new(mockPublisher)
	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil)

	handler := NewApplyUnavailabilityHandler(repo, services.NewCustodyResolver(nil), pub, nil)

	_, err := handler.Handle(context.Background(), ApplyUnavailabilityCommand{
		ScheduleID: uuid.New(),
		PartyID:    uuid.New(),
	})

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestApplyUnavailabilityHandler_SaveError(t *testing.T) {
	schedule, a, _ := testSchedule(t)
	repo := new(mockScheduleRepo)
	pub := new(mockPublisher)

	repo.On("FindByID", mock.Anything, schedule.ID()).Return(schedule, nil)
	repo.On("Save", mock.Anything, schedule).Return(errors.New("disk full"))

	handler := NewApplyUnavailabilityHandler(repo, services.NewCustodyResolver(nil), pub, nil)

	_, err := handler.Handle(context.Background(), ApplyUnavailabilityCommand{
		ScheduleID: schedule.ID(),
		PartyID:    a,
		Dates:      []time.Time{time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)},
	})

	assert.EqualError(t, err, "disk full")
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}
