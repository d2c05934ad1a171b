package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustodyPeriod is a maximal run of consecutive dates assigned to the same
// party. Periods are derived from a schedule on demand and never persisted.
type CustodyPeriod struct {
	PartyID   uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	DayCount  int
}

// Periods reduces the schedule to contiguous custody periods over the first
// dayRange entries by sorted date (the literal first N dates present, not N
// calendar days). A dayRange of zero or beyond the schedule covers all
// entries. The walk holds no state between calls.
func (s *CustodySchedule) Periods(dayRange int) []CustodyPeriod {
	dates := s.Dates()
	if dayRange > 0 && dayRange < len(dates) {
		dates = dates[:dayRange]
	}
	if len(dates) == 0 {
		return nil
	}

	periods := make([]CustodyPeriod, 0)
	current := CustodyPeriod{
		PartyID:   s.entries[dates[0]].AssignedTo(),
		StartDate: dates[0],
		EndDate:   dates[0],
		DayCount:  1,
	}

	for _, d := range dates[1:] {
		assignee := s.entries[d].AssignedTo()
		if assignee == current.PartyID {
			current.EndDate = d
			current.DayCount++
			continue
		}
		periods = append(periods, current)
		current = CustodyPeriod{
			PartyID:   assignee,
			StartDate: d,
			EndDate:   d,
			DayCount:  1,
		}
	}
	periods = append(periods, current)

	return periods
}

// Transitions counts the custody handoffs implied by a period sequence.
func Transitions(periods []CustodyPeriod) int {
	if len(periods) == 0 {
		return 0
	}
	return len(periods) - 1
}
