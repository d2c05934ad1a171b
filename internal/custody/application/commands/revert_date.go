package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pawplan/pawplan/internal/custody/domain"
	"github.com/pawplan/pawplan/internal/shared/infrastructure/eventbus"
)

// RevertDateCommand restores an adjusted date to its original assignee.
type RevertDateCommand struct {
	ScheduleID uuid.UUID
	Date       time.Time
}

// RevertDateResult reports the restored assignment.
type RevertDateResult struct {
	Date       time.Time
	AssignedTo uuid.UUID
}

// RevertDateHandler handles the RevertDateCommand.
type RevertDateHandler struct {
	repo      domain.CustodyScheduleRepository
	publisher eventbus.Publisher
}

// NewRevertDateHandler creates a new RevertDateHandler.
func NewRevertDateHandler(repo domain.CustodyScheduleRepository, publisher eventbus.Publisher) *RevertDateHandler {
	return &RevertDateHandler{repo: repo, publisher: publisher}
}

// Handle executes the RevertDateCommand.
func (h *RevertDateHandler) Handle(ctx context.Context, cmd RevertDateCommand) (*RevertDateResult, error) {
	schedule, err := findSchedule(ctx, h.repo, cmd.ScheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	if err := schedule.RevertDate(cmd.Date); err != nil {
		return nil, err
	}

	if err := h.repo.Save(ctx, schedule); err != nil {
		return nil, err
	}

	if err := eventbus.PublishDomainEvents(ctx, h.publisher, schedule.DomainEvents()); err != nil {
		return nil, err
	}
	schedule.ClearDomainEvents()

	entry, _ := schedule.Entry(cmd.Date)
	return &RevertDateResult{
		Date:       entry.Date(),
		AssignedTo: entry.AssignedTo(),
	}, nil
}
