package domain

import (
	"time"

	"github.com/google/uuid"
	sharedDomain "github.com/pawplan/pawplan/internal/shared/domain"
)

const (
	AggregateType = "CustodySchedule"

	RoutingKeyScheduleGenerated    = "custody.schedule.generated"
	RoutingKeyUnavailabilityMarked = "custody.schedule.unavailability_marked"
	RoutingKeyScheduleAdjusted     = "custody.schedule.adjusted"
	RoutingKeyEntryReverted        = "custody.schedule.entry_reverted"
)

// ScheduleGenerated is emitted when a baseline rotation is generated.
type ScheduleGenerated struct {
	sharedDomain.BaseEvent
	StartDate    time.Time `json:"start_date"`
	InitialParty uuid.UUID `json:"initial_party"`
	NumberOfDays int       `json:"number_of_days"`
}

// NewScheduleGenerated creates a ScheduleGenerated event.
func NewScheduleGenerated(scheduleID uuid.UUID, startDate time.Time, initialParty uuid.UUID, numberOfDays int) ScheduleGenerated {
	return ScheduleGenerated{
		BaseEvent:    sharedDomain.NewBaseEvent(scheduleID, AggregateType, RoutingKeyScheduleGenerated),
		StartDate:    startDate,
		InitialParty: initialParty,
		NumberOfDays: numberOfDays,
	}
}

// UnavailabilityMarked is emitted when dates are flagged unavailable.
type UnavailabilityMarked struct {
	sharedDomain.BaseEvent
	PartyID uuid.UUID   `json:"party_id"`
	Dates   []time.Time `json:"dates"`
}

// NewUnavailabilityMarked creates an UnavailabilityMarked event.
func NewUnavailabilityMarked(scheduleID, partyID uuid.UUID, dates []time.Time) UnavailabilityMarked {
	return UnavailabilityMarked{
		BaseEvent: sharedDomain.NewBaseEvent(scheduleID, AggregateType, RoutingKeyUnavailabilityMarked),
		PartyID:   partyID,
		Dates:     dates,
	}
}

// ScheduleAdjusted is emitted when a resolution diff merges into the schedule.
type ScheduleAdjusted struct {
	sharedDomain.BaseEvent
	Strategy     string      `json:"strategy"`
	Dates        []time.Time `json:"dates"`
	HandoffCount int         `json:"handoff_count"`
	Warnings     []string    `json:"warnings,omitempty"`
}

// NewScheduleAdjusted creates a ScheduleAdjusted event.
func NewScheduleAdjusted(scheduleID uuid.UUID, adj *ScheduleAdjustment) ScheduleAdjusted {
	dates := make([]time.Time, 0, len(adj.ProposedAssignments))
	for d := range adj.ProposedAssignments {
		dates = append(dates, d)
	}
	sortDates(dates)
	return ScheduleAdjusted{
		BaseEvent:    sharedDomain.NewBaseEvent(scheduleID, AggregateType, RoutingKeyScheduleAdjusted),
		Strategy:     adj.Strategy,
		Dates:        dates,
		HandoffCount: adj.HandoffCount,
		Warnings:     adj.Warnings,
	}
}

// EntryReverted is emitted when an adjusted entry is restored.
type EntryReverted struct {
	sharedDomain.BaseEvent
	Date       time.Time `json:"date"`
	AssignedTo uuid.UUID `json:"assigned_to"`
}

// NewEntryReverted creates an EntryReverted event.
func NewEntryReverted(scheduleID uuid.UUID, date time.Time, assignedTo uuid.UUID) EntryReverted {
	return EntryReverted{
		BaseEvent:  sharedDomain.NewBaseEvent(scheduleID, AggregateType, RoutingKeyEntryReverted),
		Date:       date,
		AssignedTo: assignedTo,
	}
}
