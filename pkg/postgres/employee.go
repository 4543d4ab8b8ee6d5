package postgres

import (
	"context"
	"fmt"

	"github.com/jakechorley/dienstplan/pkg/db"
)

// GetEmployees retrieves all employees in insertion order
func (d *DB) GetEmployees(ctx context.Context) ([]db.Employee, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, weekly_minutes
		FROM employee
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []db.Employee
	for rows.Next() {
		var e db.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.WeeklyMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// InsertEmployee inserts a new employee record
func (d *DB) InsertEmployee(ctx context.Context, employee *db.Employee) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO employee (id, name, weekly_minutes)
		VALUES ($1, $2, $3)
	`, employee.ID, employee.Name, employee.WeeklyMinutes)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

// UpdateEmployeeHours sets the weekly target minutes of an employee
func (d *DB) UpdateEmployeeHours(ctx context.Context, id string, weeklyMinutes int) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE employee SET weekly_minutes = $2 WHERE id = $1
	`, id, weeklyMinutes)
	if err != nil {
		return fmt.Errorf("failed to update employee %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update employee %q: %w", id, db.ErrNotFound)
	}
	return nil
}

// DeleteEmployee removes the employee; day entries go with it via ON DELETE CASCADE
func (d *DB) DeleteEmployee(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM employee WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete employee %q: %w", id, db.ErrNotFound)
	}
	return nil
}
