package db

import (
	"context"
	"fmt"
	"slices"
)

// GetEmployees retrieves all employees in insertion order
func (db *DB) GetEmployees(ctx context.Context) ([]Employee, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return slices.Clone(db.doc.Employees), nil
}

// InsertEmployee appends a new employee record
func (db *DB) InsertEmployee(ctx context.Context, employee *Employee) error {
	if err := validate.Struct(employee); err != nil {
		return fmt.Errorf("invalid employee: %w", err)
	}
	return db.mutate(func(doc *Document) error {
		for _, e := range doc.Employees {
			if e.ID == employee.ID {
				return fmt.Errorf("failed to insert employee: id %q already exists", employee.ID)
			}
		}
		doc.Employees = append(doc.Employees, *employee)
		return nil
	})
}

// UpdateEmployeeHours sets the weekly target minutes of an employee
func (db *DB) UpdateEmployeeHours(ctx context.Context, id string, weeklyMinutes int) error {
	return db.mutate(func(doc *Document) error {
		for i := range doc.Employees {
			if doc.Employees[i].ID == id {
				doc.Employees[i].WeeklyMinutes = weeklyMinutes
				return nil
			}
		}
		return fmt.Errorf("failed to update employee %q: %w", id, ErrNotFound)
	})
}

// DeleteEmployee removes the employee and all of their day entries
func (db *DB) DeleteEmployee(ctx context.Context, id string) error {
	return db.mutate(func(doc *Document) error {
		idx := slices.IndexFunc(doc.Employees, func(e Employee) bool { return e.ID == id })
		if idx < 0 {
			return fmt.Errorf("failed to delete employee %q: %w", id, ErrNotFound)
		}
		doc.Employees = slices.Delete(doc.Employees, idx, idx+1)

		for date, day := range doc.Plan.DayEntries {
			delete(day, id)
			if len(day) == 0 {
				delete(doc.Plan.DayEntries, date)
			}
		}
		return nil
	})
}
