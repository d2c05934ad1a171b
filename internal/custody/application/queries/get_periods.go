package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pawplan/pawplan/internal/custody/domain"
)

// GetPeriodsQuery reduces a schedule to contiguous custody periods.
// DayRange truncates to the first N entries by date; zero means all.
type GetPeriodsQuery struct {
	ScheduleID uuid.UUID
	DayRange   int
}

// PeriodDTO is one contiguous custody period.
type PeriodDTO struct {
	PartyID   uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	DayCount  int
}

// PeriodsDTO is the read model for period analysis.
type PeriodsDTO struct {
	Periods     []PeriodDTO
	Transitions int
}

// GetPeriodsHandler handles the GetPeriodsQuery.
type GetPeriodsHandler struct {
	repo domain.CustodyScheduleRepository
}

// NewGetPeriodsHandler creates a new GetPeriodsHandler.
func NewGetPeriodsHandler(repo domain.CustodyScheduleRepository) *GetPeriodsHandler {
	return &GetPeriodsHandler{repo: repo}
}

// Handle executes the GetPeriodsQuery.
func (h *GetPeriodsHandler) Handle(ctx context.Context, query GetPeriodsQuery) (*PeriodsDTO, error) {
	schedule, err := h.find(ctx, query.ScheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	periods := schedule.Periods(query.DayRange)
	dto := &PeriodsDTO{
		Periods:     make([]PeriodDTO, 0, len(periods)),
		Transitions: domain.Transitions(periods),
	}
	for _, p := range periods {
		dto.Periods = append(dto.Periods, PeriodDTO{
			PartyID:   p.PartyID,
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
			DayCount:  p.DayCount,
		})
	}
	return dto, nil
}

func (h *GetPeriodsHandler) find(ctx context.Context, id uuid.UUID) (*domain.CustodySchedule, error) {
	if id == uuid.Nil {
		return h.repo.FindLatest(ctx)
	}
	return h.repo.FindByID(ctx, id)
}
