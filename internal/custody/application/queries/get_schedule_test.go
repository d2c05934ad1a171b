package queries

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
		10,
		domain.DefaultRotationConfig(),
	)
	require.NoError(t, err)
	return s, a, b
}

func TestGetScheduleHandler_ByID(t *testing.T) {
	schedule, a, b := testSchedule(t)
	repo := new(mockScheduleRepo)
	repo.On("FindByID", mock.Anything, schedule.ID()).Return(schedule, nil)

	handler := NewGetScheduleHandler(repo)
	dto, err := handler.Handle(context.Background(), GetScheduleQuery{ScheduleID: schedule.ID()})

	require.NoError(t, err)
	assert.Equal(t, schedule.ID(), dto.ID)
	assert.Equal(t, a, dto.PartyA)
	assert.Equal(t, b, dto.PartyB)
	assert.Equal(t, a, dto.InitialParty)
	require.Len(t, dto.Entries, 10)
	assert.Equal(t, dto.Entries[0].Date, schedule.StartDate())
	assert.Equal(t, a, dto.Entries[0].AssignedTo)
	assert.Equal(t, b, dto.Entries[3].AssignedTo)
}

func TestGetScheduleHandler_LatestWhenIDNil(t *testing.T) {
	schedule, _, _ := testSchedule(t)
	repo := new(mockScheduleRepo)
	repo.On("FindLatest", mock.Anything).Return(schedule, nil)

	handler := NewGetScheduleHandler(repo)
	dto, err := handler.Handle(context.Background(), GetScheduleQuery{})

	require.NoError(t, err)
	assert.Equal(t, schedule.ID(), dto.ID)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestGetScheduleHandler_NotFound(t *testing.T) {
	repo := new(mockScheduleRepo)
	repo.On("FindLatest", mock.Anything).Return(nil, nil)

	handler := NewGetScheduleHandler(repo)
	_, err := handler.Handle(context.Background(), GetScheduleQuery{})

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestGetPeriodsHandler_Handle(t *testing.T) {
	schedule, a, b := testSchedule(t)
	repo := new(mockScheduleRepo)
	repo.On("FindByID", mock.Anything, schedule.ID()).Return(schedule, nil)

	handler := NewGetPeriodsHandler(repo)
	dto, err := handler.Handle(context.Background(), GetPeriodsQuery{ScheduleID: schedule.ID()})

	require.NoError(t, err)
	// AAABBBAAAB over 10 days.
	require.Len(t, dto.Periods, 4)
	assert.Equal(t, a, dto.Periods[0].PartyID)
	assert.Equal(t, b, dto.Periods[1].PartyID)
	assert.Equal(t, 3, dto.Transitions)
}

func TestGetPeriodsHandler_DayRange(t *testing.T) {
	schedule, _, _ := testSchedule(t)
	repo := new(mockScheduleRepo)
	repo.On("FindByID", mock.Anything, schedule.ID()).Return(schedule, nil)

	handler := NewGetPeriodsHandler(repo)
	dto, err := handler.Handle(context.Background(), GetPeriodsQuery{
		ScheduleID: schedule.ID(),
		DayRange:   3,
	})

	require.NoError(t, err)
	require.Len(t, dto.Periods, 1)
	assert.Equal(t, 3, dto.Periods[0].DayCount)
	assert.Zero(t, dto.Transitions)
}

func TestValidateScheduleHandler_CleanSchedule(t *testing.T) {
	schedule, a, b := testSchedule(t)
	repo := new(mockScheduleRepo)
	repo.On("FindByID", mock.Anything, schedule.ID()).Return(schedule, nil)

	handler := NewValidateScheduleHandler(repo)
	dto, err := handler.Handle(context.Background(), ValidateScheduleQuery{ScheduleID: schedule.ID()})

	require.NoError(t, err)
	assert.True(t, dto.IsValid)
	assert.Empty(t, dto.Violations)
	assert.Equal(t, 3, dto.MaxConsecutiveDays[a])
	assert.Equal(t, 3, dto.MaxConsecutiveDays[b])
}

func TestValidateScheduleHandler_ReportsLongRuns(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	pair, err := domain.NewPartyPair(a, b)
	require.NoError(t, err)

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	assignees := []uuid.UUID{b, b, b, b, b, a}
	entries := make([]*domain.ScheduleEntry, 0, len(assignees))
	for i, p := range assignees {
		entries = append(entries, domain.NewScheduleEntry(start.AddDate(0, 0, i), p))
	}
	now := time.Now().UTC()
	schedule := domain.RehydrateCustodySchedule(
		uuid.New(), pair, start, b, entries, now,
		domain.DefaultRotationConfig(), now, now,
	)

	repo := new(mockScheduleRepo)
	repo.On("FindByID", mock.Anything, schedule.ID()).Return(schedule, nil)

	handler := NewValidateScheduleHandler(repo)
	dto, err := handler.Handle(context.Background(), ValidateScheduleQuery{
		ScheduleID: schedule.ID(),
		Names:      domain.PartyNames{b: "Ben"},
	})

	require.NoError(t, err)
	assert.False(t, dto.IsValid)
	require.Len(t, dto.Violations, 1)
	assert.Contains(t, dto.Violations[0], "Ben")
	assert.Equal(t, 5, dto.MaxConsecutiveDays[b])
}
