package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/dienstplan/pkg/db"
)

// ExportDocument reads the whole data set into the export format
func (d *DB) ExportDocument(ctx context.Context) (*db.Document, error) {
	doc := db.NewDocument()

	employees, err := d.GetEmployees(ctx)
	if err != nil {
		return nil, err
	}
	if employees != nil {
		doc.Employees = employees
	}

	entries, err := d.GetDayEntries(ctx, "0001-01-01", "9999-12-31")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		day, ok := doc.Plan.DayEntries[e.Date]
		if !ok {
			day = map[string]db.StatusCell{}
			doc.Plan.DayEntries[e.Date] = day
		}
		day[e.EmployeeID] = db.StatusCell{Status: e.Status}
	}

	mondays, err := d.GetMondayOpenings(ctx, "0001-01-01", "9999-12-31")
	if err != nil {
		return nil, err
	}
	if mondays != nil {
		doc.Plan.MondayOpen = mondays
	}

	runs, err := d.GetAutoPlanRuns(ctx)
	if err != nil {
		return nil, err
	}
	doc.AutoPlanRuns = runs

	return doc, nil
}

// ReplaceDocument validates doc and replaces employees, entries and Monday
// openings in one transaction. Run records are kept.
func (d *DB) ReplaceDocument(ctx context.Context, doc *db.Document) error {
	if doc == nil || doc.Plan == nil {
		return fmt.Errorf("invalid document: employees and plan are required")
	}
	doc = doc.Clone()
	if err := db.ValidateDocument(doc); err != nil {
		return err
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range []string{
		`DELETE FROM day_entry`,
		`DELETE FROM monday_opening`,
		`DELETE FROM employee`,
	} {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to clear tables: %w", err)
		}
	}

	for _, e := range doc.Employees {
		_, err := tx.Exec(ctx, `
			INSERT INTO employee (id, name, weekly_minutes)
			VALUES ($1, $2, $3)
		`, e.ID, e.Name, e.WeeklyMinutes)
		if err != nil {
			return fmt.Errorf("failed to insert employee %q: %w", e.ID, err)
		}
	}

	if entries := doc.Entries(); len(entries) > 0 {
		if err := upsertDayEntries(ctx, tx, entries); err != nil {
			return err
		}
	}

	for _, date := range doc.Plan.MondayOpen {
		if _, err := tx.Exec(ctx, `INSERT INTO monday_opening (day) VALUES ($1)`, date); err != nil {
			return fmt.Errorf("failed to insert monday opening %s: %w", date, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
