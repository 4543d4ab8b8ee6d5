package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/dienstplan/pkg/db"
)

// GetAutoPlanRuns retrieves all run records, oldest first
func (d *DB) GetAutoPlanRuns(ctx context.Context) ([]db.AutoPlanRun, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, year, month, filled, underfilled, created_at
		FROM autoplan_run
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query autoplan runs: %w", err)
	}
	defer rows.Close()

	var runs []db.AutoPlanRun
	for rows.Next() {
		var r db.AutoPlanRun
		if err := rows.Scan(&r.ID, &r.Year, &r.Month, &r.Filled, &r.Underfilled, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan autoplan run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating autoplan runs: %w", err)
	}

	return runs, nil
}

// InsertAutoPlanRun inserts a run record
func (d *DB) InsertAutoPlanRun(ctx context.Context, run *db.AutoPlanRun) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO autoplan_run (id, year, month, filled, underfilled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, run.ID, run.Year, run.Month, run.Filled, run.Underfilled, run.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert autoplan run: %w", err)
	}
	return nil
}
