package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	sharedDomain "github.com/pawplan/pawplan/internal/shared/domain"
)

var (
	ErrEntryNotFound = errors.New("no entry for that date")
	ErrNegativeDays  = errors.New("number of days must not be negative")
)

// CustodySchedule is the aggregate root: a total date-indexed assignment map
// over [startDate, startDate+N) for a pair of custody-sharing parties.
type CustodySchedule struct {
	sharedDomain.BaseAggregateRoot
	pair         PartyPair
	startDate    time.Time
	initialParty uuid.UUID
	entries      map[time.Time]*ScheduleEntry
	lastUpdated  time.Time
	cfg          RotationConfig
}

// NewCustodySchedule generates the baseline rotation: initialParty holds
// custody from startDate, switching to the counterpart after every
// cfg.RotationDays assigned dates. The result is rule-compliant by
// construction because the turn length never exceeds the consecutive cap.
func NewCustodySchedule(
	pair PartyPair,
	startDate time.Time,
	initialParty uuid.UUID,
	numberOfDays int,
	cfg RotationConfig,
) (*CustodySchedule, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !pair.Contains(initialParty) {
		return nil, ErrUnknownParty
	}
	if numberOfDays < 0 {
		return nil, ErrNegativeDays
	}

	startDate = NormalizeDate(startDate)

	s := &CustodySchedule{
		BaseAggregateRoot: sharedDomain.NewBaseAggregateRoot(),
		pair:              pair,
		startDate:         startDate,
		initialParty:      initialParty,
		entries:           make(map[time.Time]*ScheduleEntry, numberOfDays),
		lastUpdated:       time.Now().UTC(),
		cfg:               cfg,
	}

	current := initialParty
	run := 0
	for i := 0; i < numberOfDays; i++ {
		date := startDate.AddDate(0, 0, i)
		s.entries[date] = NewScheduleEntry(date, current)
		run++
		if run == cfg.RotationDays {
			current = pair.Other(current)
			run = 0
		}
	}

	s.AddDomainEvent(NewScheduleGenerated(s.ID(), startDate, initialParty, numberOfDays))

	return s, nil
}

// RehydrateCustodySchedule recreates a schedule from persisted state.
func RehydrateCustodySchedule(
	id uuid.UUID,
	pair PartyPair,
	startDate time.Time,
	initialParty uuid.UUID,
	entries []*ScheduleEntry,
	lastUpdated time.Time,
	cfg RotationConfig,
	createdAt, updatedAt time.Time,
) *CustodySchedule {
	baseEntity := sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt)

	m := make(map[time.Time]*ScheduleEntry, len(entries))
	for _, e := range entries {
		m[e.Date()] = e
	}

	return &CustodySchedule{
		BaseAggregateRoot: sharedDomain.RehydrateBaseAggregateRoot(baseEntity, 0),
		pair:              pair,
		startDate:         NormalizeDate(startDate),
		initialParty:      initialParty,
		entries:           m,
		lastUpdated:       lastUpdated,
		cfg:               cfg,
	}
}

// Getters
func (s *CustodySchedule) Pair() PartyPair         { return s.pair }
func (s *CustodySchedule) StartDate() time.Time    { return s.startDate }
func (s *CustodySchedule) InitialParty() uuid.UUID { return s.initialParty }
func (s *CustodySchedule) LastUpdated() time.Time  { return s.lastUpdated }
func (s *CustodySchedule) Config() RotationConfig  { return s.cfg }
func (s *CustodySchedule) DayCount() int           { return len(s.entries) }

// Entry returns the entry for a date, if any.
func (s *CustodySchedule) Entry(date time.Time) (*ScheduleEntry, bool) {
	e, ok := s.entries[NormalizeDate(date)]
	return e, ok
}

// Dates returns all entry dates in ascending order.
func (s *CustodySchedule) Dates() []time.Time {
	dates := make([]time.Time, 0, len(s.entries))
	for d := range s.entries {
		dates = append(dates, d)
	}
	sortDates(dates)
	return dates
}

// Entries returns all entries ordered by date.
func (s *CustodySchedule) Entries() []*ScheduleEntry {
	dates := s.Dates()
	out := make([]*ScheduleEntry, 0, len(dates))
	for _, d := range dates {
		out = append(out, s.entries[d])
	}
	return out
}

// MarkUnavailable flags each requested date's entry. Dates outside the
// schedule range are skipped rather than failing.
func (s *CustodySchedule) MarkUnavailable(party uuid.UUID, dates []time.Time) error {
	if !s.pair.Contains(party) {
		return ErrUnknownParty
	}
	marked := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if e, ok := s.Entry(d); ok {
			e.MarkUnavailable(party)
			marked = append(marked, NormalizeDate(d))
		}
	}
	if len(marked) > 0 {
		s.touchSchedule()
		s.AddDomainEvent(NewUnavailabilityMarked(s.ID(), party, marked))
	}
	return nil
}

// ApplyAdjustment merges a valid adjustment's proposed assignments into the
// schedule. Entries keep the first pre-adjustment assignee as original so a
// later revert is exact.
func (s *CustodySchedule) ApplyAdjustment(adj *ScheduleAdjustment) error {
	if adj == nil || !adj.IsValid {
		return errors.New("cannot apply an invalid adjustment")
	}
	for date, party := range adj.ProposedAssignments {
		e, ok := s.Entry(date)
		if !ok {
			return ErrEntryNotFound
		}
		e.Reassign(party)
	}
	if len(adj.ProposedAssignments) > 0 {
		s.touchSchedule()
		s.AddDomainEvent(NewScheduleAdjusted(s.ID(), adj))
	}
	return nil
}

// RevertDate restores a previously adjusted date to its original assignee.
func (s *CustodySchedule) RevertDate(date time.Time) error {
	e, ok := s.Entry(date)
	if !ok {
		return ErrEntryNotFound
	}
	if err := e.Restore(); err != nil {
		return err
	}
	s.touchSchedule()
	s.AddDomainEvent(NewEntryReverted(s.ID(), e.Date(), e.AssignedTo()))
	return nil
}

// ApplyUnavailability runs the full flow for one request: mark the dates,
// detect conflicts, resolve through the injected resolver, and merge the
// winning proposal. A nil resolver falls back to the standard chain. The
// returned adjustment describes what changed; a request with no conflicts
// yields a valid empty adjustment.
func (s *CustodySchedule) ApplyUnavailability(req UnavailabilityRequest, resolver ConflictResolver, names PartyNames) (*ScheduleAdjustment, error) {
	if err := s.MarkUnavailable(req.PartyID, req.Dates); err != nil {
		return nil, err
	}

	conflicts := s.FindConflicts(req)
	if len(conflicts) == 0 {
		return EmptyAdjustment(), nil
	}

	if resolver == nil {
		resolver = NewResolver()
	}
	adj := resolver.Resolve(s, conflicts, names)
	if adj.IsValid && len(adj.ProposedAssignments) > 0 {
		if err := s.ApplyAdjustment(adj); err != nil {
			return nil, err
		}
	}
	return adj, nil
}

// effectiveAssignee resolves a date's assignee under a candidate diff.
// Absent dates report no assignee.
func (s *CustodySchedule) effectiveAssignee(proposed map[time.Time]uuid.UUID, date time.Time) (uuid.UUID, bool) {
	if party, ok := proposed[date]; ok {
		return party, true
	}
	if e, ok := s.entries[date]; ok {
		return e.AssignedTo(), true
	}
	return uuid.Nil, false
}

func (s *CustodySchedule) touchSchedule() {
	s.lastUpdated = time.Now().UTC()
	s.Touch()
}
