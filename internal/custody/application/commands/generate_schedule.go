package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pawplan/pawplan/internal/custody/domain"
	"github.com/pawplan/pawplan/internal/shared/infrastructure/eventbus"
)

// GenerateScheduleCommand contains the data needed to generate a baseline
// custody rotation.
type GenerateScheduleCommand struct {
	PartyA       uuid.UUID
	PartyB       uuid.UUID
	StartDate    time.Time
	InitialParty uuid.UUID
	NumberOfDays int

	// Zero values fall back to the standard rotation geometry.
	RotationDays       int
	MaxConsecutiveDays int
}

// GenerateScheduleResult contains the result of schedule generation.
type GenerateScheduleResult struct {
	ScheduleID uuid.UUID
	DayCount   int
}

// GenerateScheduleHandler handles the GenerateScheduleCommand.
type GenerateScheduleHandler struct {
	repo      domain.CustodyScheduleRepository
	publisher eventbus.Publisher
}

// NewGenerateScheduleHandler creates a new GenerateScheduleHandler.
func NewGenerateScheduleHandler(repo domain.CustodyScheduleRepository, publisher eventbus.Publisher) *GenerateScheduleHandler {
	return &GenerateScheduleHandler{repo: repo, publisher: publisher}
}

// Handle executes the GenerateScheduleCommand.
func (h *GenerateScheduleHandler) Handle(ctx context.Context, cmd GenerateScheduleCommand) (*GenerateScheduleResult, error) {
	pair, err := domain.NewPartyPair(cmd.PartyA, cmd.PartyB)
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultRotationConfig()
	if cmd.RotationDays > 0 {
		cfg.RotationDays = cmd.RotationDays
	}
	if cmd.MaxConsecutiveDays > 0 {
		cfg.MaxConsecutiveDays = cmd.MaxConsecutiveDays
	}

	schedule, err := domain.NewCustodySchedule(pair, cmd.StartDate, cmd.InitialParty, cmd.NumberOfDays, cfg)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Save(ctx, schedule); err != nil {
		return nil, err
	}

	if err := eventbus.PublishDomainEvents(ctx, h.publisher, schedule.DomainEvents()); err != nil {
		return nil, err
	}
	schedule.ClearDomainEvents()

	return &GenerateScheduleResult{
		ScheduleID: schedule.ID(),
		DayCount:   schedule.DayCount(),
	}, nil
}
