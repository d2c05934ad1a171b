package services

import (
	"log/slog"
	"time"

	"github.com/pawplan/pawplan/internal/custody/domain"
)

// CustodyResolver runs the domain strategy chain with structured logging of
// each attempt. The underlying chain is deterministic; this wrapper only
// adds observability.
type CustodyResolver struct {
	resolver *domain.Resolver
	logger   *slog.Logger
}

// NewCustodyResolver creates a new resolver service.
func NewCustodyResolver(logger *slog.Logger) *CustodyResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &CustodyResolver{
		resolver: domain.NewResolver(),
		logger:   logger,
	}
}

// Resolve eliminates the conflict dates through the strategy chain and
// returns the winning adjustment. With no conflicts it returns the valid
// empty adjustment.
func (r *CustodyResolver) Resolve(
	schedule *domain.CustodySchedule,
	conflicts []time.Time,
	names domain.PartyNames,
) *domain.ScheduleAdjustment {
	if len(conflicts) == 0 {
		return domain.EmptyAdjustment()
	}

	for _, strategy := range r.resolver.Strategies() {
		adj, ok := strategy.Attempt(schedule, conflicts, names)
		if !ok {
			r.logger.Debug("resolution strategy rejected",
				"schedule_id", schedule.ID(),
				"strategy", strategy.Name(),
				"conflicts", len(conflicts),
			)
			continue
		}

		r.logger.Info("conflicts resolved",
			"schedule_id", schedule.ID(),
			"strategy", adj.Strategy,
			"conflicts", len(conflicts),
			"handoffs", adj.HandoffCount,
			"warnings", len(adj.Warnings),
		)
		return adj
	}

	// Unreachable: forced assignment always succeeds.
	return domain.EmptyAdjustment()
}
