package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawplan/pawplan/internal/custody/domain"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS custody_schedules (
	id                   UUID PRIMARY KEY,
	party_a              UUID NOT NULL,
	party_b              UUID NOT NULL,
	start_date           DATE NOT NULL,
	initial_party        UUID NOT NULL,
	rotation_days        INTEGER NOT NULL,
	max_consecutive_days INTEGER NOT NULL,
	last_updated         TIMESTAMPTZ NOT NULL,
	created_at           TIMESTAMPTZ NOT NULL,
	updated_at           TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS custody_entries (
	schedule_id          UUID NOT NULL REFERENCES custody_schedules(id) ON DELETE CASCADE,
	entry_date           DATE NOT NULL,
	assigned_to          UUID NOT NULL,
	unavailable          BOOLEAN NOT NULL DEFAULT FALSE,
	unavailable_by       UUID,
	adjusted             BOOLEAN NOT NULL DEFAULT FALSE,
	original_assigned_to UUID,
	PRIMARY KEY (schedule_id, entry_date)
);
`

// PostgresScheduleRepository implements domain.CustodyScheduleRepository using
// PostgreSQL.
type PostgresScheduleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresScheduleRepository creates a new PostgreSQL schedule repository
// and ensures its tables exist.
func NewPostgresScheduleRepository(ctx context.Context, pool *pgxpool.Pool) (*PostgresScheduleRepository, error) {
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("failed to initialize postgres schema: %w", err)
	}
	return &PostgresScheduleRepository{pool: pool}, nil
}

// Save persists a schedule and its entries in a single transaction.
func (r *PostgresScheduleRepository) Save(ctx context.Context, schedule *domain.CustodySchedule) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := r.saveWithTx(ctx, tx, schedule); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresScheduleRepository) saveWithTx(ctx context.Context, tx pgx.Tx, schedule *domain.CustodySchedule) error {
	query := `
		INSERT INTO custody_schedules
			(id, party_a, party_b, start_date, initial_party, rotation_days, max_consecutive_days, last_updated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			last_updated = EXCLUDED.last_updated,
			updated_at = NOW()
	`
	_, err := tx.Exec(ctx, query,
		schedule.ID(),
		schedule.Pair().PartyA(),
		schedule.Pair().PartyB(),
		schedule.StartDate(),
		schedule.InitialParty(),
		schedule.Config().RotationDays,
		schedule.Config().MaxConsecutiveDays,
		schedule.LastUpdated(),
		schedule.CreatedAt(),
		schedule.UpdatedAt(),
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM custody_entries WHERE schedule_id = $1`,
		schedule.ID(),
	); err != nil {
		return err
	}

	for _, entry := range schedule.Entries() {
		var unavailableBy, originalAssignedTo *uuid.UUID
		if entry.UnavailableBy() != uuid.Nil {
			by := entry.UnavailableBy()
			unavailableBy = &by
		}
		if entry.IsAdjusted() {
			original := entry.OriginalAssignedTo()
			originalAssignedTo = &original
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO custody_entries
				(schedule_id, entry_date, assigned_to, unavailable, unavailable_by, adjusted, original_assigned_to)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			schedule.ID(),
			entry.Date(),
			entry.AssignedTo(),
			entry.IsUnavailable(),
			unavailableBy,
			entry.IsAdjusted(),
			originalAssignedTo,
		); err != nil {
			return err
		}
	}

	return nil
}

// FindByID retrieves a schedule by its ID. Returns nil without error when no
// schedule exists.
func (r *PostgresScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.CustodySchedule, error) {
	return r.findOne(ctx,
		`SELECT id, party_a, party_b, start_date, initial_party, rotation_days, max_consecutive_days, last_updated, created_at, updated_at
		 FROM custody_schedules WHERE id = $1`,
		id,
	)
}

// FindLatest retrieves the most recently created schedule.
func (r *PostgresScheduleRepository) FindLatest(ctx context.Context) (*domain.CustodySchedule, error) {
	return r.findOne(ctx,
		`SELECT id, party_a, party_b, start_date, initial_party, rotation_days, max_consecutive_days, last_updated, created_at, updated_at
		 FROM custody_schedules ORDER BY created_at DESC, id DESC LIMIT 1`,
	)
}

// Delete removes a schedule. Entry rows are removed via CASCADE.
func (r *PostgresScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM custody_schedules WHERE id = $1`, id)
	return err
}

func (r *PostgresScheduleRepository) findOne(ctx context.Context, query string, args ...any) (*domain.CustodySchedule, error) {
	var (
		id, partyA, partyB, initialParty uuid.UUID
		startDate, lastUpdated           time.Time
		createdAt, updatedAt             time.Time
		rotationDays, maxConsecutiveDays int
	)
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&id, &partyA, &partyB, &startDate, &initialParty,
		&rotationDays, &maxConsecutiveDays,
		&lastUpdated, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entries, err := r.loadEntries(ctx, id)
	if err != nil {
		return nil, err
	}

	pair, err := domain.NewPartyPair(partyA, partyB)
	if err != nil {
		return nil, err
	}

	return domain.RehydrateCustodySchedule(
		id,
		pair,
		domain.NormalizeDate(startDate),
		initialParty,
		entries,
		lastUpdated,
		domain.RotationConfig{
			RotationDays:       rotationDays,
			MaxConsecutiveDays: maxConsecutiveDays,
		},
		createdAt,
		updatedAt,
	), nil
}

func (r *PostgresScheduleRepository) loadEntries(ctx context.Context, scheduleID uuid.UUID) ([]*domain.ScheduleEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT entry_date, assigned_to, unavailable, unavailable_by, adjusted, original_assigned_to
		 FROM custody_entries WHERE schedule_id = $1 ORDER BY entry_date`,
		scheduleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.ScheduleEntry
	for rows.Next() {
		var (
			date                              time.Time
			assignedTo                        uuid.UUID
			unavailable, adjusted             bool
			unavailableBy, originalAssignedTo *uuid.UUID
		)
		if err := rows.Scan(&date, &assignedTo, &unavailable, &unavailableBy, &adjusted, &originalAssignedTo); err != nil {
			return nil, err
		}

		by := uuid.Nil
		if unavailableBy != nil {
			by = *unavailableBy
		}
		original := uuid.Nil
		if originalAssignedTo != nil {
			original = *originalAssignedTo
		}

		entries = append(entries, domain.RehydrateScheduleEntry(
			domain.NormalizeDate(date),
			assignedTo,
			unavailable,
			by,
			adjusted,
			original,
		))
	}

	return entries, rows.Err()
}
