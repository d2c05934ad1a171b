package domain

import (
	"context"

	"github.com/google/uuid"
)

// CustodyScheduleRepository defines the interface for schedule persistence.
// Callers are responsible for serializing concurrent mutations against the
// same schedule; the aggregate itself holds no locking.
type CustodyScheduleRepository interface {
	// Save persists a schedule (create or update).
	Save(ctx context.Context, schedule *CustodySchedule) error

	// FindByID finds a schedule by its ID. Returns nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*CustodySchedule, error)

	// FindLatest returns the most recently updated schedule, if any.
	FindLatest(ctx context.Context) (*CustodySchedule, error)

	// Delete removes a schedule and its entries.
	Delete(ctx context.Context, id uuid.UUID) error
}
