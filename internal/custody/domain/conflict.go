package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnavailabilityRequest asks that one party be excused from overnight
// responsibility on a set of dates. Dates need not be contiguous.
type UnavailabilityRequest struct {
	PartyID uuid.UUID
	Dates   []time.Time
	Reason  string
}

// FindConflicts scans the request against the schedule. Unavailability
// blocks overnight responsibility, not same-day handoff activity, so a date
// conflicts whenever the requester holds the assignment on it. Whether the
// run ends there or continues into the next day, the run must be examined
// for early termination either way. Dates absent from the schedule are
// skipped. Results keep the request's input order.
func (s *CustodySchedule) FindConflicts(req UnavailabilityRequest) []time.Time {
	var conflicts []time.Time
	for _, d := range req.Dates {
		e, ok := s.Entry(d)
		if !ok {
			continue
		}
		if e.AssignedTo() == req.PartyID {
			conflicts = append(conflicts, e.Date())
		}
	}
	return conflicts
}
