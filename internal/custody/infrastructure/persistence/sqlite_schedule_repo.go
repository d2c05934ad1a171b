package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pawplan/pawplan/internal/custody/domain"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS custody_schedules (
    id                   TEXT PRIMARY KEY,
    party_a              TEXT NOT NULL,
    party_b              TEXT NOT NULL,
    start_date           TEXT NOT NULL,
    initial_party        TEXT NOT NULL,
    rotation_days        INTEGER NOT NULL,
    max_consecutive_days INTEGER NOT NULL,
    last_updated         TEXT NOT NULL,
    created_at           TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS custody_entries (
    schedule_id          TEXT NOT NULL,
    entry_date           TEXT NOT NULL,
    assigned_to          TEXT NOT NULL,
    unavailable          INTEGER NOT NULL DEFAULT 0,
    unavailable_by       TEXT,
    adjusted             INTEGER NOT NULL DEFAULT 0,
    original_assigned_to TEXT,
    PRIMARY KEY (schedule_id, entry_date),
    FOREIGN KEY (schedule_id) REFERENCES custody_schedules(id) ON DELETE CASCADE
);
`

// SQLiteScheduleRepository implements domain.CustodyScheduleRepository using SQLite.
type SQLiteScheduleRepository struct {
	dbConn *sql.DB
}

// NewSQLiteScheduleRepository creates a new SQLite schedule repository and
// ensures the schema exists.
func NewSQLiteScheduleRepository(ctx context.Context, dbConn *sql.DB) (*SQLiteScheduleRepository, error) {
	if _, err := dbConn.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("creating custody schema: %w", err)
	}
	return &SQLiteScheduleRepository{dbConn: dbConn}, nil
}

// Save persists a schedule to the database.
func (r *SQLiteScheduleRepository) Save(ctx context.Context, schedule *domain.CustodySchedule) error {
	var existingID string
	err := r.dbConn.QueryRowContext(ctx,
		`SELECT id FROM custody_schedules WHERE id = ?`,
		schedule.ID().String(),
	).Scan(&existingID)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = r.dbConn.ExecContext(ctx,
			`INSERT INTO custody_schedules
			 (id, party_a, party_b, start_date, initial_party, rotation_days, max_consecutive_days, last_updated, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			schedule.ID().String(),
			schedule.Pair().PartyA().String(),
			schedule.Pair().PartyB().String(),
			schedule.StartDate().Format("2006-01-02"),
			schedule.InitialParty().String(),
			schedule.Config().RotationDays,
			schedule.Config().MaxConsecutiveDays,
			schedule.LastUpdated().Format(time.RFC3339),
			schedule.CreatedAt().Format(time.RFC3339),
			schedule.UpdatedAt().Format(time.RFC3339),
		)
		if err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		_, err = r.dbConn.ExecContext(ctx,
			`UPDATE custody_schedules SET last_updated = ?, updated_at = ? WHERE id = ?`,
			schedule.LastUpdated().Format(time.RFC3339),
			time.Now().UTC().Format(time.RFC3339),
			schedule.ID().String(),
		)
		if err != nil {
			return err
		}
	}

	// Replace the entry rows wholesale. Entries carry no identity of their
	// own beyond (schedule, date), so a full rewrite is the simplest way to
	// keep the stored rows in lockstep with the aggregate.
	if _, err := r.dbConn.ExecContext(ctx,
		`DELETE FROM custody_entries WHERE schedule_id = ?`,
		schedule.ID().String(),
	); err != nil {
		return err
	}

	for _, entry := range schedule.Entries() {
		var unavailableBy, originalAssignedTo sql.NullString
		if entry.UnavailableBy() != uuid.Nil {
			unavailableBy = sql.NullString{String: entry.UnavailableBy().String(), Valid: true}
		}
		if entry.IsAdjusted() {
			originalAssignedTo = sql.NullString{String: entry.OriginalAssignedTo().String(), Valid: true}
		}

		if _, err := r.dbConn.ExecContext(ctx,
			`INSERT INTO custody_entries
			 (schedule_id, entry_date, assigned_to, unavailable, unavailable_by, adjusted, original_assigned_to)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			schedule.ID().String(),
			entry.Date().Format("2006-01-02"),
			entry.AssignedTo().String(),
			boolToInt64(entry.IsUnavailable()),
			unavailableBy,
			boolToInt64(entry.IsAdjusted()),
			originalAssignedTo,
		); err != nil {
			return err
		}
	}

	return nil
}

// FindByID retrieves a schedule by its ID. Returns nil without error when no
// schedule exists.
func (r *SQLiteScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.CustodySchedule, error) {
	return r.findOne(ctx,
		`SELECT id, party_a, party_b, start_date, initial_party, rotation_days, max_consecutive_days, last_updated, created_at, updated_at
		 FROM custody_schedules WHERE id = ?`,
		id.String(),
	)
}

// FindLatest retrieves the most recently created schedule.
func (r *SQLiteScheduleRepository) FindLatest(ctx context.Context) (*domain.CustodySchedule, error) {
	return r.findOne(ctx,
		`SELECT id, party_a, party_b, start_date, initial_party, rotation_days, max_consecutive_days, last_updated, created_at, updated_at
		 FROM custody_schedules ORDER BY created_at DESC, id DESC LIMIT 1`,
	)
}

// Delete removes a schedule from the database. Entry rows are removed via
// CASCADE.
func (r *SQLiteScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.dbConn.ExecContext(ctx,
		`DELETE FROM custody_schedules WHERE id = ?`, id.String())
	return err
}

func (r *SQLiteScheduleRepository) findOne(ctx context.Context, query string, args ...any) (*domain.CustodySchedule, error) {
	var (
		idStr, partyAStr, partyBStr, startDateStr, initialPartyStr string
		rotationDays, maxConsecutiveDays                           int
		lastUpdatedStr, createdAtStr, updatedAtStr                 string
	)
	err := r.dbConn.QueryRowContext(ctx, query, args...).Scan(
		&idStr, &partyAStr, &partyBStr, &startDateStr, &initialPartyStr,
		&rotationDays, &maxConsecutiveDays,
		&lastUpdatedStr, &createdAtStr, &updatedAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule id: %w", err)
	}

	entries, err := r.loadEntries(ctx, id)
	if err != nil {
		return nil, err
	}

	partyA, _ := uuid.Parse(partyAStr)
	partyB, _ := uuid.Parse(partyBStr)
	initialParty, _ := uuid.Parse(initialPartyStr)
	startDate, _ := time.Parse("2006-01-02", startDateStr)
	lastUpdated, _ := time.Parse(time.RFC3339, lastUpdatedStr)
	createdAt, _ := time.Parse(time.RFC3339, createdAtStr)
	updatedAt, _ := time.Parse(time.RFC3339, updatedAtStr)

	pair, err := domain.NewPartyPair(partyA, partyB)
	if err != nil {
		return nil, fmt.Errorf("rehydrating party pair: %w", err)
	}

	return domain.RehydrateCustodySchedule(
		id,
		pair,
		startDate.UTC(),
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

func (r *SQLiteScheduleRepository) loadEntries(ctx context.Context, scheduleID uuid.UUID) ([]*domain.ScheduleEntry, error) {
	rows, err := r.dbConn.QueryContext(ctx,
		`SELECT entry_date, assigned_to, unavailable, unavailable_by, adjusted, original_assigned_to
		 FROM custody_entries WHERE schedule_id = ? ORDER BY entry_date`,
		scheduleID.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.ScheduleEntry
	for rows.Next() {
		var (
			dateStr, assignedToStr            string
			unavailable, adjusted             int64
			unavailableBy, originalAssignedTo sql.NullString
		)
		if err := rows.Scan(&dateStr, &assignedToStr, &unavailable, &unavailableBy, &adjusted, &originalAssignedTo); err != nil {
			return nil, err
		}

		date, _ := time.Parse("2006-01-02", dateStr)
		assignedTo, _ := uuid.Parse(assignedToStr)

		by := uuid.Nil
		if unavailableBy.Valid {
			by, _ = uuid.Parse(unavailableBy.String)
		}
		original := uuid.Nil
		if originalAssignedTo.Valid {
			original, _ = uuid.Parse(originalAssignedTo.String)
		}

		entries = append(entries, domain.RehydrateScheduleEntry(
			date.UTC(),
			assignedTo,
			unavailable != 0,
			by,
			adjusted != 0,
			original,
		))
	}

	return entries, rows.Err()
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
