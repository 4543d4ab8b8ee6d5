package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/dienstplan/pkg/db"
)

// GetDayEntries retrieves the entries between from and to inclusive
func (d *DB) GetDayEntries(ctx context.Context, from, to string) ([]db.DayEntry, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT day, employee_id, status
		FROM day_entry
		WHERE day BETWEEN $1 AND $2
		ORDER BY day, employee_id
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query day entries: %w", err)
	}
	defer rows.Close()

	var entries []db.DayEntry
	for rows.Next() {
		var e db.DayEntry
		var day time.Time
		if err := rows.Scan(&day, &e.EmployeeID, &e.Status); err != nil {
			return nil, fmt.Errorf("failed to scan day entry: %w", err)
		}
		e.Date = day.Format(time.DateOnly)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating day entries: %w", err)
	}

	return entries, nil
}

// UpsertDayEntries inserts or overwrites entries in one transaction
func (d *DB) UpsertDayEntries(ctx context.Context, entries []db.DayEntry) error {
	if len(entries) == 0 {
		return nil
	}
	for _, e := range entries {
		if err := db.ValidateDayEntry(e); err != nil {
			return err
		}
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := upsertDayEntries(ctx, tx, entries); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func upsertDayEntries(ctx context.Context, tx pgx.Tx, entries []db.DayEntry) error {
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(`
			INSERT INTO day_entry (day, employee_id, status)
			VALUES ($1, $2, $3)
			ON CONFLICT (day, employee_id) DO UPDATE SET status = EXCLUDED.status
		`, e.Date, e.EmployeeID, e.Status)
	}

	results := tx.SendBatch(ctx, batch)
	for _, e := range entries {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to upsert day entry %s/%s: %w", e.Date, e.EmployeeID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}
	return nil
}

// DeleteDayEntry removes one entry; deleting a missing entry is not an error
func (d *DB) DeleteDayEntry(ctx context.Context, date, employeeID string) error {
	_, err := d.pool.Exec(ctx, `
		DELETE FROM day_entry WHERE day = $1 AND employee_id = $2
	`, date, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete day entry: %w", err)
	}
	return nil
}
