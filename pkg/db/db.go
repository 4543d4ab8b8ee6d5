package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// DB provides database operations on a single JSON document file.
// The file uses the export format, so an export is a copy of the file.
type DB struct {
	path string

	mu  sync.Mutex
	doc *Document
}

var _ Database = (*DB)(nil)

// NewDB opens the document at path, starting empty when the file does not exist
func NewDB(path string) (*DB, error) {
	doc := NewDocument()

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read data file: %w", err)
	default:
		if err := json.Unmarshal(content, doc); err != nil {
			return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
		}
		if err := ValidateDocument(doc); err != nil {
			return nil, fmt.Errorf("data file %s is invalid: %w", path, err)
		}
	}

	return &DB{path: path, doc: doc}, nil
}

// Close is a no-op; every write is flushed immediately
func (db *DB) Close() {}

// save writes the document to a temporary file and renames it over the data file.
// Callers must hold db.mu.
func (db *DB) save() error {
	content, err := json.MarshalIndent(db.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	dir := filepath.Dir(db.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".dienstplan-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), db.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// mutate applies fn to the document and saves it, restoring the previous state on failure
func (db *DB) mutate(fn func(doc *Document) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	backup := db.doc.Clone()
	if err := fn(db.doc); err != nil {
		db.doc = backup
		return err
	}
	if err := db.save(); err != nil {
		db.doc = backup
		return err
	}
	return nil
}

// Clone returns a deep copy of the document
func (d *Document) Clone() *Document {
	out := &Document{
		Employees:    slices.Clone(d.Employees),
		AutoPlanRuns: slices.Clone(d.AutoPlanRuns),
		Plan: &PlanDocument{
			DayEntries: make(map[string]map[string]StatusCell, len(d.Plan.DayEntries)),
			MondayOpen: slices.Clone(d.Plan.MondayOpen),
		},
	}
	for date, day := range d.Plan.DayEntries {
		cells := make(map[string]StatusCell, len(day))
		for id, cell := range day {
			cells[id] = cell
		}
		out.Plan.DayEntries[date] = cells
	}
	return out
}

// ExportDocument returns a copy of the whole document
func (db *DB) ExportDocument(ctx context.Context) (*Document, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.doc.Clone(), nil
}

// ReplaceDocument validates doc and replaces employees, entries and Monday openings
func (db *DB) ReplaceDocument(ctx context.Context, doc *Document) error {
	if doc == nil || doc.Plan == nil {
		return fmt.Errorf("invalid document: employees and plan are required")
	}
	imported := doc.Clone()
	if err := ValidateDocument(imported); err != nil {
		return err
	}
	return db.mutate(func(current *Document) error {
		current.Employees = imported.Employees
		current.Plan = imported.Plan
		return nil
	})
}
