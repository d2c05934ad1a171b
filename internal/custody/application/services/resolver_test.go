package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pawplan/pawplan/internal/custody/application/services"
	"github.com/pawplan/pawplan/internal/custody/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSchedule(t *testing.T, assignees []uuid.UUID, pair domain.PartyPair, start time.Time) *domain.CustodySchedule {
	t.Helper()
	entries := make([]*domain.ScheduleEntry, 0, len(assignees))
	for i, p := range assignees {
		entries = append(entries, domain.NewScheduleEntry(start.AddDate(0, 0, i), p))
	}
	now := time.Now().UTC()
	return domain.RehydrateCustodySchedule(
		uuid.New(), pair, start, assignees[0], entries, now,
		domain.DefaultRotationConfig(), now, now,
	)
}

func TestCustodyResolver_NoConflicts(t *testing.T) {
	resolver := services.NewCustodyResolver(nil)
	a := uuid.New()
	b := uuid.New()
	pair, err := domain.NewPartyPair(a, b)
	require.NoError(t, err)
	s := buildSchedule(t, []uuid.UUID{a, b}, pair, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	adj := resolver.Resolve(s, nil, nil)

	assert.True(t, adj.IsValid)
	assert.True(t, adj.IsEmpty())
}

func TestCustodyResolver_MatchesDomainChain(t *testing.T) {
	resolver := services.NewCustodyResolver(nil)
	a := uuid.New()
	b := uuid.New()
	pair, err := domain.NewPartyPair(a, b)
	require.NoError(t, err)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := buildSchedule(t, []uuid.UUID{a, a, a, b, b, b}, pair, start)
	conflicts := []time.Time{start.AddDate(0, 0, 2)}

	got := resolver.Resolve(s, conflicts, nil)
	want := domain.NewResolver().Resolve(s, conflicts, nil)

	assert.Equal(t, want.Strategy, got.Strategy)
	assert.Equal(t, want.ProposedAssignments, got.ProposedAssignments)
	assert.Equal(t, want.HandoffCount, got.HandoffCount)
}
