package db

import (
	"context"
	"fmt"
	"slices"
)

// GetAutoPlanRuns retrieves all run records, oldest first
func (db *DB) GetAutoPlanRuns(ctx context.Context) ([]AutoPlanRun, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return slices.Clone(db.doc.AutoPlanRuns), nil
}

// InsertAutoPlanRun appends a run record
func (db *DB) InsertAutoPlanRun(ctx context.Context, run *AutoPlanRun) error {
	if err := validate.Struct(run); err != nil {
		return fmt.Errorf("invalid autoplan run: %w", err)
	}
	return db.mutate(func(doc *Document) error {
		doc.AutoPlanRuns = append(doc.AutoPlanRuns, *run)
		return nil
	})
}
