package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pawplan/pawplan/internal/custody/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartyPair(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	pair, err := domain.NewPartyPair(a, b)
	require.NoError(t, err)
	assert.Equal(t, a, pair.PartyA())
	assert.Equal(t, b, pair.PartyB())
	assert.True(t, pair.Contains(a))
	assert.False(t, pair.Contains(uuid.New()))
	assert.Equal(t, b, pair.Other(a))
	assert.Equal(t, a, pair.Other(b))
}

func TestNewPartyPair_Errors(t *testing.T) {
	a := uuid.New()

	_, err := domain.NewPartyPair(a, a)
	assert.ErrorIs(t, err, domain.ErrSameParty)

	_, err = domain.NewPartyPair(uuid.Nil, a)
	assert.ErrorIs(t, err, domain.ErrNilParty)
}

func TestPartyNames_DisplayName(t *testing.T) {
	a := uuid.New()
	names := domain.PartyNames{a: "Alice"}

	assert.Equal(t, "Alice", names.DisplayName(a))

	// Unknown parties get a generic label, never an empty string.
	other := uuid.New()
	label := names.DisplayName(other)
	assert.NotEmpty(t, label)
	assert.NotEqual(t, "Alice", label)

	var nilNames domain.PartyNames
	assert.NotEmpty(t, nilNames.DisplayName(a))
}
