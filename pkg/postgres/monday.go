package postgres

import (
	"context"
	"fmt"
	"time"
)

// GetMondayOpenings retrieves the open Mondays between from and to inclusive
func (d *DB) GetMondayOpenings(ctx context.Context, from, to string) ([]string, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT day FROM monday_opening
		WHERE day BETWEEN $1 AND $2
		ORDER BY day
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query monday openings: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("failed to scan monday opening: %w", err)
		}
		dates = append(dates, day.Format(time.DateOnly))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monday openings: %w", err)
	}

	return dates, nil
}

// InsertMondayOpening marks a Monday as open; the table CHECK rejects other weekdays
func (d *DB) InsertMondayOpening(ctx context.Context, date string) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO monday_opening (day) VALUES ($1)
		ON CONFLICT (day) DO NOTHING
	`, date)
	if err != nil {
		return fmt.Errorf("failed to insert monday opening: %w", err)
	}
	return nil
}

// DeleteMondayOpening closes a Monday again
func (d *DB) DeleteMondayOpening(ctx context.Context, date string) error {
	_, err := d.pool.Exec(ctx, `DELETE FROM monday_opening WHERE day = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete monday opening: %w", err)
	}
	return nil
}
