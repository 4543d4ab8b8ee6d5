package db

import (
	"context"
	"fmt"
	"slices"
)

// GetDayEntries retrieves the entries between from and to inclusive
func (db *DB) GetDayEntries(ctx context.Context, from, to string) ([]DayEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var entries []DayEntry
	for date, day := range db.doc.Plan.DayEntries {
		if date < from || date > to {
			continue
		}
		for employeeID, cell := range day {
			entries = append(entries, DayEntry{Date: date, EmployeeID: employeeID, Status: cell.Status})
		}
	}
	sortEntries(entries)
	return entries, nil
}

// UpsertDayEntries inserts or overwrites entries in a single write
func (db *DB) UpsertDayEntries(ctx context.Context, entries []DayEntry) error {
	if len(entries) == 0 {
		return nil
	}
	for _, e := range entries {
		if err := ValidateDayEntry(e); err != nil {
			return err
		}
	}

	return db.mutate(func(doc *Document) error {
		for _, e := range entries {
			if !slices.ContainsFunc(doc.Employees, func(emp Employee) bool { return emp.ID == e.EmployeeID }) {
				return fmt.Errorf("failed to upsert day entry: unknown employee %q", e.EmployeeID)
			}
			day, ok := doc.Plan.DayEntries[e.Date]
			if !ok {
				day = map[string]StatusCell{}
				doc.Plan.DayEntries[e.Date] = day
			}
			day[e.EmployeeID] = StatusCell{Status: e.Status}
		}
		return nil
	})
}

// DeleteDayEntry removes one entry; deleting a missing entry is not an error
func (db *DB) DeleteDayEntry(ctx context.Context, date, employeeID string) error {
	return db.mutate(func(doc *Document) error {
		day, ok := doc.Plan.DayEntries[date]
		if !ok {
			return nil
		}
		delete(day, employeeID)
		if len(day) == 0 {
			delete(doc.Plan.DayEntries, date)
		}
		return nil
	})
}
