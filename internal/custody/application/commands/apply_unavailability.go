package commands

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pawplan/pawplan/internal/custody/application/services"
	"github.com/pawplan/pawplan/internal/custody/domain"
	"github.com/pawplan/pawplan/internal/shared/infrastructure/eventbus"
)

var ErrScheduleNotFound = errors.New("schedule not found")

// findSchedule loads a schedule by ID, falling back to the most recent one
// when the ID is nil.
func findSchedule(ctx context.Context, repo domain.CustodyScheduleRepository, id uuid.UUID) (*domain.CustodySchedule, error) {
	if id == uuid.Nil {
		return repo.FindLatest(ctx)
	}
	return repo.FindByID(ctx, id)
}

// ApplyUnavailabilityCommand marks dates unavailable for one party and
// resolves the resulting conflicts.
type ApplyUnavailabilityCommand struct {
	ScheduleID uuid.UUID
	PartyID    uuid.UUID
	Dates      []time.Time
	Reason     string
}

// ApplyUnavailabilityResult describes what changed.
type ApplyUnavailabilityResult struct {
	Adjustment *domain.ScheduleAdjustment
}

// ApplyUnavailabilityHandler handles the ApplyUnavailabilityCommand. The
// handler serializes mutations so two concurrent requests never race on the
// same schedule's read-modify-write cycle.
type ApplyUnavailabilityHandler struct {
	repo      domain.CustodyScheduleRepository
	resolver  *services.CustodyResolver
	publisher eventbus.Publisher
	names     domain.PartyNames

	mu sync.Mutex
}

// NewApplyUnavailabilityHandler creates a new ApplyUnavailabilityHandler.
func NewApplyUnavailabilityHandler(
	repo domain.CustodyScheduleRepository,
	resolver *services.CustodyResolver,
	publisher eventbus.Publisher,
	names domain.PartyNames,
) *ApplyUnavailabilityHandler {
	return &ApplyUnavailabilityHandler{
		repo:      repo,
		resolver:  resolver,
		publisher: publisher,
		names:     names,
	}
}

// Handle executes the ApplyUnavailabilityCommand.
func (h *ApplyUnavailabilityHandler) Handle(ctx context.Context, cmd ApplyUnavailabilityCommand) (*ApplyUnavailabilityResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	schedule, err := findSchedule(ctx, h.repo, cmd.ScheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	req := domain.UnavailabilityRequest{
		PartyID: cmd.PartyID,
		Dates:   cmd.Dates,
		Reason:  cmd.Reason,
	}

	adj, err := schedule.ApplyUnavailability(req, h.resolver, h.names)
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

	return &ApplyUnavailabilityResult{Adjustment: adj}, nil
}
