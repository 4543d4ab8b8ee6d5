package db

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an update or delete targets a missing record
var ErrNotFound = errors.New("record not found")

// EmployeeStore defines the interface for employee database operations
type EmployeeStore interface {
	GetEmployees(ctx context.Context) ([]Employee, error)
	InsertEmployee(ctx context.Context, employee *Employee) error
	UpdateEmployeeHours(ctx context.Context, id string, weeklyMinutes int) error
	// DeleteEmployee removes the employee together with all their day entries
	DeleteEmployee(ctx context.Context, id string) error
}

// DayEntryStore defines the interface for plan entry database operations.
// Date bounds are inclusive ISO dates.
type DayEntryStore interface {
	GetDayEntries(ctx context.Context, from, to string) ([]DayEntry, error)
	UpsertDayEntries(ctx context.Context, entries []DayEntry) error
	DeleteDayEntry(ctx context.Context, date, employeeID string) error
}

// MondayStore defines the interface for exceptionally opened Mondays
type MondayStore interface {
	GetMondayOpenings(ctx context.Context, from, to string) ([]string, error)
	InsertMondayOpening(ctx context.Context, date string) error
	DeleteMondayOpening(ctx context.Context, date string) error
}

// AutoPlanRunStore defines the interface for AutoPlan run records
type AutoPlanRunStore interface {
	GetAutoPlanRuns(ctx context.Context) ([]AutoPlanRun, error)
	InsertAutoPlanRun(ctx context.Context, run *AutoPlanRun) error
}

// DocumentStore exports and replaces the whole data set
type DocumentStore interface {
	ExportDocument(ctx context.Context) (*Document, error)
	// ReplaceDocument swaps all employees, entries and Monday openings for the
	// document's content. Run records are kept.
	ReplaceDocument(ctx context.Context, doc *Document) error
}

// Database defines the interface for all database operations.
// Both the file-backed db.DB and postgres.DB implement this interface.
type Database interface {
	EmployeeStore
	DayEntryStore
	MondayStore
	AutoPlanRunStore
	DocumentStore
	Close()
}
