package queries

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pawplan/pawplan/internal/custody/domain"
)

// ValidateScheduleQuery runs the consecutive-day rule over the whole
// schedule as currently stored.
type ValidateScheduleQuery struct {
	ScheduleID uuid.UUID
	Names      domain.PartyNames
}

// ValidationDTO is the read model for a batch validation.
type ValidationDTO struct {
	IsValid            bool
	Violations         []string
	MaxConsecutiveDays map[uuid.UUID]int
}

// ValidateScheduleHandler handles the ValidateScheduleQuery.
type ValidateScheduleHandler struct {
	repo domain.CustodyScheduleRepository
}

// NewValidateScheduleHandler creates a new ValidateScheduleHandler.
func NewValidateScheduleHandler(repo domain.CustodyScheduleRepository) *ValidateScheduleHandler {
	return &ValidateScheduleHandler{repo: repo}
}

// Handle executes the ValidateScheduleQuery. Each custody period longer
// than the cap yields one violation; forced assignments can leave these in
// a stored schedule.
func (h *ValidateScheduleHandler) Handle(ctx context.Context, query ValidateScheduleQuery) (*ValidationDTO, error) {
	schedule, err := h.find(ctx, query.ScheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	maxDays := schedule.Config().MaxConsecutiveDays
	dto := &ValidationDTO{
		IsValid:            true,
		MaxConsecutiveDays: make(map[uuid.UUID]int),
	}

	for _, p := range schedule.Periods(0) {
		if p.DayCount > dto.MaxConsecutiveDays[p.PartyID] {
			dto.MaxConsecutiveDays[p.PartyID] = p.DayCount
		}
		if p.DayCount > maxDays {
			dto.IsValid = false
			dto.Violations = append(dto.Violations, fmt.Sprintf(
				"%s holds custody %d consecutive days from %s (max %d)",
				query.Names.DisplayName(p.PartyID), p.DayCount,
				p.StartDate.Format("2006-01-02"), maxDays,
			))
		}
	}

	return dto, nil
}

func (h *ValidateScheduleHandler) find(ctx context.Context, id uuid.UUID) (*domain.CustodySchedule, error) {
	if id == uuid.Nil {
		return h.repo.FindLatest(ctx)
	}
	return h.repo.FindByID(ctx, id)
}
