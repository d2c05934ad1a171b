package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Strategy names, in chain order.
const (
	StrategyEarlyHandoff     = "early_handoff"
	StrategyExtension        = "extension"
	StrategyPeriodShift      = "period_shift"
	StrategyForcedAssignment = "forced_assignment"
)

// ResolutionStrategy attempts to eliminate a set of conflict dates. Each
// strategy computes a full candidate diff for all conflicts; partial diffs
// are never mixed across strategies. ok is false when the candidate would
// break the consecutive-day rule for a newly assigned party.
type ResolutionStrategy interface {
	Name() string
	Attempt(s *CustodySchedule, conflicts []time.Time, names PartyNames) (*ScheduleAdjustment, bool)
}

// ConflictResolver eliminates a set of conflict dates and returns the
// winning adjustment. Implementations decorate the standard chain, for
// example with logging, without changing its outcome.
type ConflictResolver interface {
	Resolve(s *CustodySchedule, conflicts []time.Time, names PartyNames) *ScheduleAdjustment
}

// Resolver runs strategies in fixed priority order and returns the first
// valid result. The terminal strategy never fails, so resolution always
// terminates with an answer.
type Resolver struct {
	strategies []ResolutionStrategy
}

// NewResolver creates the standard chain: early handoff, extension, period
// shift, then forced assignment as the last resort.
func NewResolver() *Resolver {
	return &Resolver{
		strategies: []ResolutionStrategy{
			earlyHandoffStrategy{},
			extensionStrategy{},
			periodShiftStrategy{},
			forcedAssignmentStrategy{},
		},
	}
}

// Strategies returns the chain in priority order.
func (r *Resolver) Strategies() []ResolutionStrategy {
	return r.strategies
}

// Resolve runs the chain over the conflict dates.
func (r *Resolver) Resolve(s *CustodySchedule, conflicts []time.Time, names PartyNames) *ScheduleAdjustment {
	if len(conflicts) == 0 {
		return EmptyAdjustment()
	}
	for _, strategy := range r.strategies {
		if adj, ok := strategy.Attempt(s, conflicts, names); ok {
			return adj
		}
	}
	// Unreachable: the terminal strategy always succeeds.
	return EmptyAdjustment()
}

// flipAll builds the diff every strategy shares: each conflict date moves
// from its current assignee to the counterpart. The unavailable party hands
// off during the day instead of holding the date overnight.
func flipAll(s *CustodySchedule, conflicts []time.Time) map[time.Time]uuid.UUID {
	proposed := make(map[time.Time]uuid.UUID, len(conflicts))
	for _, d := range conflicts {
		if e, ok := s.Entry(d); ok {
			proposed[d] = s.Pair().Other(e.AssignedTo())
		}
	}
	return proposed
}

// flipIncremental flips conflict dates one at a time in the given order,
// validating each against the diff accumulated so far. The order matters:
// earlier flips change the effective run length later dates see.
func flipIncremental(s *CustodySchedule, conflicts []time.Time) (map[time.Time]uuid.UUID, bool) {
	proposed := make(map[time.Time]uuid.UUID, len(conflicts))
	for _, d := range conflicts {
		e, ok := s.Entry(d)
		if !ok {
			continue
		}
		target := s.Pair().Other(e.AssignedTo())
		proposed[e.Date()] = target
		if s.ExceedsMax(proposed, e.Date(), target) {
			return nil, false
		}
	}
	return proposed, true
}

// earlyHandoffStrategy flips each conflict date in request order. The
// vacating party's shortened run is not re-checked; only the newly assigned
// party's run is.
type earlyHandoffStrategy struct{}

func (earlyHandoffStrategy) Name() string { return StrategyEarlyHandoff }

func (st earlyHandoffStrategy) Attempt(s *CustodySchedule, conflicts []time.Time, names PartyNames) (*ScheduleAdjustment, bool) {
	proposed, ok := flipIncremental(s, conflicts)
	if !ok {
		return nil, false
	}
	return newAcceptedAdjustment(s, st.Name(), conflicts, proposed, nil, ""), true
}

// extensionStrategy extends the counterpart's adjoining period through the
// conflicts by processing dates chronologically.
type extensionStrategy struct{}

func (extensionStrategy) Name() string { return StrategyExtension }

func (st extensionStrategy) Attempt(s *CustodySchedule, conflicts []time.Time, names PartyNames) (*ScheduleAdjustment, bool) {
	ordered := make([]time.Time, len(conflicts))
	copy(ordered, conflicts)
	sortDates(ordered)

	proposed, ok := flipIncremental(s, ordered)
	if !ok {
		return nil, false
	}
	return newAcceptedAdjustment(s, st.Name(), conflicts, proposed, nil, ""), true
}

// periodShiftStrategy flips everything first and validates the completed
// diff in one batch pass. A second-chance variant of the flips above with
// different sequencing.
type periodShiftStrategy struct{}

func (periodShiftStrategy) Name() string { return StrategyPeriodShift }

func (st periodShiftStrategy) Attempt(s *CustodySchedule, conflicts []time.Time, names PartyNames) (*ScheduleAdjustment, bool) {
	proposed := flipAll(s, conflicts)
	if result := s.Validate(proposed, names); !result.IsValid {
		return nil, false
	}
	return newAcceptedAdjustment(s, st.Name(), conflicts, proposed, nil, ""), true
}

// forcedAssignmentStrategy is the terminal fallback: it flips every
// conflict date unconditionally and downgrades residual rule violations to
// warnings. It must never refuse to produce an answer.
type forcedAssignmentStrategy struct{}

func (forcedAssignmentStrategy) Name() string { return StrategyForcedAssignment }

func (st forcedAssignmentStrategy) Attempt(s *CustodySchedule, conflicts []time.Time, names PartyNames) (*ScheduleAdjustment, bool) {
	proposed := flipAll(s, conflicts)

	var warnings []string
	for _, d := range conflicts {
		target, ok := proposed[NormalizeDate(d)]
		if !ok {
			continue
		}
		date := NormalizeDate(d)
		if s.ExceedsMax(proposed, date, target) {
			warnings = append(warnings, names.DisplayName(target)+
				" exceeds the consecutive-day limit around "+date.Format("2006-01-02"))
		}
	}

	reason := ""
	if len(warnings) > 0 {
		reason = strings.Join(warnings, "; ")
	}
	return newAcceptedAdjustment(s, st.Name(), conflicts, proposed, warnings, reason), true
}
