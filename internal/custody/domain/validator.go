package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValidationResult reports the outcome of a batch consecutive-day check.
type ValidationResult struct {
	IsValid            bool
	Violations         []string
	MaxConsecutiveDays map[uuid.UUID]int
}

// ExceedsMax reports whether, under the candidate diff, the run of
// consecutive dates assigned to party around checkDate exceeds the cap.
// The check is pure: identical inputs always give identical answers.
func (s *CustodySchedule) ExceedsMax(proposed map[time.Time]uuid.UUID, checkDate time.Time, party uuid.UUID) bool {
	return s.runLength(proposed, NormalizeDate(checkDate), party) > s.cfg.MaxConsecutiveDays
}

// runLength walks backward then forward from checkDate while the effective
// assignee equals party, counting checkDate itself once.
func (s *CustodySchedule) runLength(proposed map[time.Time]uuid.UUID, checkDate time.Time, party uuid.UUID) int {
	count := 0
	for d := checkDate; ; d = d.AddDate(0, 0, -1) {
		assignee, ok := s.effectiveAssignee(proposed, d)
		if !ok || assignee != party {
			break
		}
		count++
	}
	for d := checkDate.AddDate(0, 0, 1); ; d = d.AddDate(0, 0, 1) {
		assignee, ok := s.effectiveAssignee(proposed, d)
		if !ok || assignee != party {
			break
		}
		count++
	}
	return count
}

// Validate runs the consecutive-day rule over every date in the diff at
// once and reports all violations plus the longest effective run seen for
// each party across the schedule.
func (s *CustodySchedule) Validate(proposed map[time.Time]uuid.UUID, names PartyNames) ValidationResult {
	result := ValidationResult{
		IsValid:            true,
		MaxConsecutiveDays: make(map[uuid.UUID]int),
	}

	dates := make([]time.Time, 0, len(proposed))
	for d := range proposed {
		dates = append(dates, d)
	}
	sortDates(dates)

	for _, d := range dates {
		party := proposed[d]
		if run := s.runLength(proposed, d, party); run > s.cfg.MaxConsecutiveDays {
			result.IsValid = false
			result.Violations = append(result.Violations, fmt.Sprintf(
				"%s would hold custody %d consecutive days around %s (max %d)",
				names.DisplayName(party), run, d.Format("2006-01-02"), s.cfg.MaxConsecutiveDays,
			))
		}
	}

	// Longest effective run per party over the whole range.
	var prev uuid.UUID
	run := 0
	for _, d := range s.Dates() {
		assignee, _ := s.effectiveAssignee(proposed, d)
		if assignee == prev && run > 0 {
			run++
		} else {
			prev = assignee
			run = 1
		}
		if run > result.MaxConsecutiveDays[assignee] {
			result.MaxConsecutiveDays[assignee] = run
		}
	}

	return result
}
