package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrSameParty    = errors.New("custody parties must be distinct")
	ErrNilParty     = errors.New("party id must not be nil")
	ErrUnknownParty = errors.New("party does not belong to this schedule")
)

// PartyPair holds the two parties sharing custody. Every assignment in a
// schedule belongs to exactly one of them.
type PartyPair struct {
	a uuid.UUID
	b uuid.UUID
}

// NewPartyPair creates a validated party pair.
func NewPartyPair(a, b uuid.UUID) (PartyPair, error) {
	if a == uuid.Nil || b == uuid.Nil {
		return PartyPair{}, ErrNilParty
	}
	if a == b {
		return PartyPair{}, ErrSameParty
	}
	return PartyPair{a: a, b: b}, nil
}

func (p PartyPair) PartyA() uuid.UUID { return p.a }
func (p PartyPair) PartyB() uuid.UUID { return p.b }

// Contains reports whether id is one of the two parties.
func (p PartyPair) Contains(id uuid.UUID) bool {
	return id == p.a || id == p.b
}

// Other returns the counterpart of the given party.
func (p PartyPair) Other(id uuid.UUID) uuid.UUID {
	if id == p.a {
		return p.b
	}
	return p.a
}

// PartyNames maps party IDs to display names for human-readable messages.
// Missing entries fall back to a generic label; the mapping never affects
// algorithmic outcomes.
type PartyNames map[uuid.UUID]string

// DisplayName returns the configured name or a generic label.
func (n PartyNames) DisplayName(id uuid.UUID) string {
	if name, ok := n[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("party %s", shortID(id))
}

func shortID(id uuid.UUID) string {
	s := id.String()
	return s[:8]
}
