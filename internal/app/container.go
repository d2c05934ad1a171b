// Package app wires configuration, storage, the event bus, and the
// application handlers into a single container for the CLI.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawplan/pawplan/internal/custody/application/commands"
	"github.com/pawplan/pawplan/internal/custody/application/queries"
	"github.com/pawplan/pawplan/internal/custody/application/services"
	"github.com/pawplan/pawplan/internal/custody/domain"
	"github.com/pawplan/pawplan/internal/custody/infrastructure/persistence"
	"github.com/pawplan/pawplan/internal/shared/infrastructure/database"
	"github.com/pawplan/pawplan/internal/shared/infrastructure/database/sqlite"
	"github.com/pawplan/pawplan/internal/shared/infrastructure/eventbus"
	"github.com/pawplan/pawplan/pkg/config"
)

// Container holds all initialized application dependencies.
type Container struct {
	logger *slog.Logger

	sqlDB *sql.DB
	pool  *pgxpool.Pool

	EventBus     *eventbus.InProcessEventBus
	ScheduleRepo domain.CustodyScheduleRepository

	// Command Handlers
	GenerateScheduleHandler    *commands.GenerateScheduleHandler
	ApplyUnavailabilityHandler *commands.ApplyUnavailabilityHandler
	RevertDateHandler          *commands.RevertDateHandler

	// Query Handlers
	GetScheduleHandler      *queries.GetScheduleHandler
	GetPeriodsHandler       *queries.GetPeriodsHandler
	ValidateScheduleHandler *queries.ValidateScheduleHandler

	// Configured parties
	PartyA     uuid.UUID
	PartyB     uuid.UUID
	PartyNames domain.PartyNames

	// Configured rotation geometry, used when a command does not override it.
	RotationDays       int
	MaxConsecutiveDays int
}

// NewContainer initializes all dependencies from configuration.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{logger: logger}

	driver, err := database.ParseDriver(cfg.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	switch driver {
	case database.DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		c.pool = pool
		repo, err := persistence.NewPostgresScheduleRepository(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		c.ScheduleRepo = repo
	default:
		sqlDB, err := sqlite.Open(ctx, database.Config{
			Driver:     database.DriverSQLite,
			SQLitePath: cfg.SQLitePath,
		})
		if err != nil {
			return nil, err
		}
		c.sqlDB = sqlDB
		repo, err := persistence.NewSQLiteScheduleRepository(ctx, sqlDB)
		if err != nil {
			sqlDB.Close()
			return nil, err
		}
		c.ScheduleRepo = repo
	}

	partyA, partyB, err := cfg.PartyIDs()
	if err != nil {
		c.Close()
		return nil, err
	}
	c.PartyA = partyA
	c.PartyB = partyB
	c.PartyNames = domain.PartyNames{
		partyA: cfg.PartyAName,
		partyB: cfg.PartyBName,
	}
	c.RotationDays = cfg.RotationDays
	c.MaxConsecutiveDays = cfg.MaxConsecutiveDays

	c.EventBus = eventbus.NewInProcessEventBus(logger)
	resolver := services.NewCustodyResolver(logger)

	c.GenerateScheduleHandler = commands.NewGenerateScheduleHandler(c.ScheduleRepo, c.EventBus)
	c.ApplyUnavailabilityHandler = commands.NewApplyUnavailabilityHandler(c.ScheduleRepo, resolver, c.EventBus, c.PartyNames)
	c.RevertDateHandler = commands.NewRevertDateHandler(c.ScheduleRepo, c.EventBus)

	c.GetScheduleHandler = queries.NewGetScheduleHandler(c.ScheduleRepo)
	c.GetPeriodsHandler = queries.NewGetPeriodsHandler(c.ScheduleRepo)
	c.ValidateScheduleHandler = queries.NewValidateScheduleHandler(c.ScheduleRepo)

	return c, nil
}

// Close releases all container resources.
func (c *Container) Close() {
	if c.EventBus != nil {
		if err := c.EventBus.Close(); err != nil {
			c.logger.Warn("failed to close event bus", "error", err)
		}
	}
	if c.sqlDB != nil {
		if err := c.sqlDB.Close(); err != nil {
			c.logger.Warn("failed to close database", "error", err)
		}
	}
	if c.pool != nil {
		c.pool.Close()
	}
}
