package db

import (
	"context"
	"fmt"
	"slices"
	"time"
)

// GetMondayOpenings retrieves the open Mondays between from and to inclusive
func (db *DB) GetMondayOpenings(ctx context.Context, from, to string) ([]string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var dates []string
	for _, d := range db.doc.Plan.MondayOpen {
		if d >= from && d <= to {
			dates = append(dates, d)
		}
	}
	slices.Sort(dates)
	return dates, nil
}

// InsertMondayOpening marks a Monday as open; inserting twice is a no-op
func (db *DB) InsertMondayOpening(ctx context.Context, date string) error {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	if t.Weekday() != time.Monday {
		return fmt.Errorf("failed to open %s: not a Monday", date)
	}

	return db.mutate(func(doc *Document) error {
		if slices.Contains(doc.Plan.MondayOpen, date) {
			return nil
		}
		doc.Plan.MondayOpen = append(doc.Plan.MondayOpen, date)
		slices.Sort(doc.Plan.MondayOpen)
		return nil
	})
}

// DeleteMondayOpening closes a Monday again
func (db *DB) DeleteMondayOpening(ctx context.Context, date string) error {
	return db.mutate(func(doc *Document) error {
		doc.Plan.MondayOpen = slices.DeleteFunc(doc.Plan.MondayOpen, func(d string) bool { return d == date })
		return nil
	})
}
