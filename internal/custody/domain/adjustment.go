package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleAdjustment is the structured diff produced by conflict
// resolution. ProposedAssignments keys are always a subset of
// ConflictDates; an invalid adjustment carries an empty proposal and a
// populated reason. Warnings are advisory: the caller may still apply the
// proposal with them shown.
type ScheduleAdjustment struct {
	ConflictDates       []time.Time
	OriginalAssignments map[time.Time]uuid.UUID
	ProposedAssignments map[time.Time]uuid.UUID
	HandoffCount        int
	IsValid             bool
	Strategy            string
	Reason              string
	Warnings            []string
}

// EmptyAdjustment is the valid no-op result for a request with no conflicts.
func EmptyAdjustment() *ScheduleAdjustment {
	return &ScheduleAdjustment{
		OriginalAssignments: make(map[time.Time]uuid.UUID),
		ProposedAssignments: make(map[time.Time]uuid.UUID),
		IsValid:             true,
	}
}

// IsEmpty reports whether the adjustment changes nothing.
func (a *ScheduleAdjustment) IsEmpty() bool {
	return len(a.ProposedAssignments) == 0
}

// newAcceptedAdjustment builds the result for a winning strategy. The
// handoff count is the number of dates the diff touches, not the schedule's
// true transition count; derive the latter from periods.
func newAcceptedAdjustment(
	s *CustodySchedule,
	strategy string,
	conflicts []time.Time,
	proposed map[time.Time]uuid.UUID,
	warnings []string,
	reason string,
) *ScheduleAdjustment {
	original := make(map[time.Time]uuid.UUID, len(proposed))
	for d := range proposed {
		if e, ok := s.Entry(d); ok {
			original[d] = e.AssignedTo()
		}
	}
	return &ScheduleAdjustment{
		ConflictDates:       conflicts,
		OriginalAssignments: original,
		ProposedAssignments: proposed,
		HandoffCount:        len(proposed),
		IsValid:             true,
		Strategy:            strategy,
		Reason:              reason,
		Warnings:            warnings,
	}
}
