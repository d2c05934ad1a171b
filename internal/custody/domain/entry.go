package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEntryNotAdjusted = errors.New("entry has no adjustment to restore")

// ScheduleEntry is one calendar date's custody assignment. Entries are
// created by the generator and mutated in place when adjustments merge;
// they are never removed from their schedule's range.
type ScheduleEntry struct {
	date               time.Time
	assignedTo         uuid.UUID
	unavailable        bool
	unavailableBy      uuid.UUID
	adjusted           bool
	originalAssignedTo uuid.UUID
}

// NewScheduleEntry creates an entry for a normalized calendar date.
func NewScheduleEntry(date time.Time, assignedTo uuid.UUID) *ScheduleEntry {
	return &ScheduleEntry{
		date:       NormalizeDate(date),
		assignedTo: assignedTo,
	}
}

// RehydrateScheduleEntry recreates an entry from persisted state.
func RehydrateScheduleEntry(
	date time.Time,
	assignedTo uuid.UUID,
	unavailable bool,
	unavailableBy uuid.UUID,
	adjusted bool,
	originalAssignedTo uuid.UUID,
) *ScheduleEntry {
	return &ScheduleEntry{
		date:               NormalizeDate(date),
		assignedTo:         assignedTo,
		unavailable:        unavailable,
		unavailableBy:      unavailableBy,
		adjusted:           adjusted,
		originalAssignedTo: originalAssignedTo,
	}
}

func (e *ScheduleEntry) Date() time.Time          { return e.date }
func (e *ScheduleEntry) AssignedTo() uuid.UUID    { return e.assignedTo }
func (e *ScheduleEntry) IsUnavailable() bool      { return e.unavailable }
func (e *ScheduleEntry) UnavailableBy() uuid.UUID { return e.unavailableBy }
func (e *ScheduleEntry) IsAdjusted() bool         { return e.adjusted }

// OriginalAssignedTo returns the assignee recorded before the first
// adjustment. It is set if and only if the entry is adjusted.
func (e *ScheduleEntry) OriginalAssignedTo() uuid.UUID { return e.originalAssignedTo }

// MarkUnavailable flags the date as unavailable for the given party.
func (e *ScheduleEntry) MarkUnavailable(by uuid.UUID) {
	e.unavailable = true
	e.unavailableBy = by
}

// Reassign changes the assignee as part of an adjustment merge. Only the
// first pre-adjustment assignee is recorded as original, so a later restore
// returns to the true baseline.
func (e *ScheduleEntry) Reassign(to uuid.UUID) {
	if !e.adjusted {
		e.originalAssignedTo = e.assignedTo
		e.adjusted = true
	}
	e.assignedTo = to
}

// Restore reverts the entry to its pre-adjustment assignment and clears the
// unavailability and adjustment flags.
func (e *ScheduleEntry) Restore() error {
	if !e.adjusted {
		return ErrEntryNotAdjusted
	}
	e.assignedTo = e.originalAssignedTo
	e.originalAssignedTo = uuid.Nil
	e.adjusted = false
	e.unavailable = false
	e.unavailableBy = uuid.Nil
	return nil
}

// Clone returns a copy of the entry.
func (e *ScheduleEntry) Clone() *ScheduleEntry {
	c := *e
	return &c
}
