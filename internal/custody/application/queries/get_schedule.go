package queries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pawplan/pawplan/internal/custody/domain"
)

var ErrScheduleNotFound = errors.New("schedule not found")

// GetScheduleQuery fetches a schedule. A nil ScheduleID means the most
// recently updated schedule.
type GetScheduleQuery struct {
	ScheduleID uuid.UUID
}

// EntryDTO is one calendar date's assignment for display.
type EntryDTO struct {
	Date               time.Time
	AssignedTo         uuid.UUID
	IsUnavailable      bool
	UnavailableBy      uuid.UUID
	IsAdjusted         bool
	OriginalAssignedTo uuid.UUID
}

// ScheduleDTO is the read model for a custody schedule.
type ScheduleDTO struct {
	ID           uuid.UUID
	PartyA       uuid.UUID
	PartyB       uuid.UUID
	StartDate    time.Time
	InitialParty uuid.UUID
	LastUpdated  time.Time
	DayCount     int
	Entries      []EntryDTO
}

// GetScheduleHandler handles the GetScheduleQuery.
type GetScheduleHandler struct {
	repo domain.CustodyScheduleRepository
}

// NewGetScheduleHandler creates a new GetScheduleHandler.
func NewGetScheduleHandler(repo domain.CustodyScheduleRepository) *GetScheduleHandler {
	return &GetScheduleHandler{repo: repo}
}

// Handle executes the GetScheduleQuery.
func (h *GetScheduleHandler) Handle(ctx context.Context, query GetScheduleQuery) (*ScheduleDTO, error) {
	schedule, err := h.find(ctx, query.ScheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	entries := schedule.Entries()
	dto := &ScheduleDTO{
		ID:           schedule.ID(),
		PartyA:       schedule.Pair().PartyA(),
		PartyB:       schedule.Pair().PartyB(),
		StartDate:    schedule.StartDate(),
		InitialParty: schedule.InitialParty(),
		LastUpdated:  schedule.LastUpdated(),
		DayCount:     schedule.DayCount(),
		Entries:      make([]EntryDTO, 0, len(entries)),
	}
	for _, e := range entries {
		dto.Entries = append(dto.Entries, EntryDTO{
			Date:               e.Date(),
			AssignedTo:         e.AssignedTo(),
			IsUnavailable:      e.IsUnavailable(),
			UnavailableBy:      e.UnavailableBy(),
			IsAdjusted:         e.IsAdjusted(),
			OriginalAssignedTo: e.OriginalAssignedTo(),
		})
	}
	return dto, nil
}

func (h *GetScheduleHandler) find(ctx context.Context, id uuid.UUID) (*domain.CustodySchedule, error) {
	if id == uuid.Nil {
		return h.repo.FindLatest(ctx)
	}
	return h.repo.FindByID(ctx, id)
}
