package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/gt4500/internal/console"
)

// FiringLogRepository persists one row per TORPEDO command. It implements
// console.Recorder.
type FiringLogRepository struct {
	db *pgxpool.Pool
}

// NewFiringLogRepository creates a FiringLogRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewFiringLogRepository(db *pgxpool.Pool) *FiringLogRepository {
	return &FiringLogRepository{db: db}
}

// RecordFiring appends one firing record to the log.
//
// Precondition: rec.ID must be non-zero and unique.
// Postcondition: The record is durable on nil return.
func (r *FiringLogRepository) RecordFiring(ctx context.Context, rec console.FiringRecord) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO firing_log
		   (id, mode, success,
		    primary_count, primary_fail_rate,
		    secondary_count, secondary_fail_rate,
		    fired_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.Mode, rec.Success,
		rec.PrimaryCount, rec.PrimaryFailRate,
		rec.SecondaryCount, rec.SecondaryFailRate,
		rec.FiredAt,
	)
	if err != nil {
		return fmt.Errorf("inserting firing record: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records, newest first.
//
// Precondition: limit must be > 0.
// Postcondition: Returns records ordered by fired_at descending.
func (r *FiringLogRepository) ListRecent(ctx context.Context, limit int) ([]console.FiringRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, mode, success,
		        primary_count, primary_fail_rate,
		        secondary_count, secondary_fail_rate,
		        fired_at
		 FROM firing_log
		 ORDER BY fired_at DESC, id
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying firing log: %w", err)
	}
	defer rows.Close()

	var records []console.FiringRecord
	for rows.Next() {
		var rec console.FiringRecord
		if err := rows.Scan(
			&rec.ID, &rec.Mode, &rec.Success,
			&rec.PrimaryCount, &rec.PrimaryFailRate,
			&rec.SecondaryCount, &rec.SecondaryFailRate,
			&rec.FiredAt,
		); err != nil {
			return nil, fmt.Errorf("scanning firing record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating firing log: %w", err)
	}
	return records, nil
}

// CountByOutcome returns the number of logged firings per SUCCESS/FAIL outcome.
//
// Postcondition: Returns (successes, failures) or an error.
func (r *FiringLogRepository) CountByOutcome(ctx context.Context) (successes, failures int64, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FILTER (WHERE success),
		        COUNT(*) FILTER (WHERE NOT success)
		 FROM firing_log`,
	).Scan(&successes, &failures)
	if err != nil {
		return 0, 0, fmt.Errorf("counting firing outcomes: %w", err)
	}
	return successes, failures, nil
}
