package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/pkg/core/model"
	"github.com/jakechorley/dienstplan/pkg/db"
)

// Weekly target bounds
const (
	MaxWeeklyHours   = 60
	WeeklyMinuteStep = 15
	MaxWeeklyMinutes = MaxWeeklyHours * 60
)

// AddEmployeeStore defines the database operations needed to register an employee
type AddEmployeeStore interface {
	GetEmployees(ctx context.Context) ([]db.Employee, error)
	InsertEmployee(ctx context.Context, employee *db.Employee) error
}

// UpdateEmployeeHoursStore defines the database operations needed to change a weekly target
type UpdateEmployeeHoursStore interface {
	UpdateEmployeeHours(ctx context.Context, id string, weeklyMinutes int) error
}

// DeleteEmployeeStore defines the database operations needed to remove an employee
type DeleteEmployeeStore interface {
	DeleteEmployee(ctx context.Context, id string) error
}

// WeeklyMinutes combines an hours and minutes input into a weekly target.
// Hours must be 0..60 and minutes one of 0, 15, 30, 45.
func WeeklyMinutes(hours, minutes int) (int, error) {
	if hours < 0 || hours > MaxWeeklyHours {
		return 0, fmt.Errorf("%w: hours must be between 0 and %d, got %d", ErrInvalidWeeklyMinutes, MaxWeeklyHours, hours)
	}
	if minutes < 0 || minutes >= 60 || minutes%WeeklyMinuteStep != 0 {
		return 0, fmt.Errorf("%w: minutes must be 0, 15, 30 or 45, got %d", ErrInvalidWeeklyMinutes, minutes)
	}
	total := hours*60 + minutes
	if err := ValidateWeeklyMinutes(total); err != nil {
		return 0, err
	}
	return total, nil
}

// ValidateWeeklyMinutes checks a weekly target lies in 0..3600 on the 15 minute grid
func ValidateWeeklyMinutes(weeklyMinutes int) error {
	if weeklyMinutes < 0 || weeklyMinutes > MaxWeeklyMinutes {
		return fmt.Errorf("%w: %d is outside 0..%d", ErrInvalidWeeklyMinutes, weeklyMinutes, MaxWeeklyMinutes)
	}
	if weeklyMinutes%WeeklyMinuteStep != 0 {
		return fmt.Errorf("%w: %d is not a multiple of %d", ErrInvalidWeeklyMinutes, weeklyMinutes, WeeklyMinuteStep)
	}
	return nil
}

// AddEmployee registers a new employee, deriving a unique id from the name
func AddEmployee(
	ctx context.Context,
	database AddEmployeeStore,
	logger *zap.Logger,
	name string,
	weeklyMinutes int,
) (*db.Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("employee name is required")
	}
	if err := ValidateWeeklyMinutes(weeklyMinutes); err != nil {
		return nil, err
	}

	employees, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	id := model.MakeEmployeeID(name, func(candidate string) bool {
		return slices.ContainsFunc(employees, func(e db.Employee) bool { return e.ID == candidate })
	})

	employee := &db.Employee{
		ID:            id,
		Name:          name,
		WeeklyMinutes: weeklyMinutes,
	}
	if err := database.InsertEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to insert employee: %w", err)
	}

	logger.Info("Employee added",
		zap.String("id", employee.ID),
		zap.String("name", employee.Name),
		zap.Int("weekly_minutes", employee.WeeklyMinutes))

	return employee, nil
}

// UpdateEmployeeHours changes an employee's weekly target
func UpdateEmployeeHours(
	ctx context.Context,
	database UpdateEmployeeHoursStore,
	logger *zap.Logger,
	id string,
	weeklyMinutes int,
) error {
	if err := ValidateWeeklyMinutes(weeklyMinutes); err != nil {
		return err
	}

	if err := database.UpdateEmployeeHours(ctx, id, weeklyMinutes); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
		}
		return fmt.Errorf("failed to update employee hours: %w", err)
	}

	logger.Info("Employee hours updated", zap.String("id", id), zap.Int("weekly_minutes", weeklyMinutes))
	return nil
}

// DeleteEmployee removes an employee and every plan entry referring to them
func DeleteEmployee(
	ctx context.Context,
	database DeleteEmployeeStore,
	logger *zap.Logger,
	id string,
) error {
	if err := database.DeleteEmployee(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	logger.Info("Employee deleted", zap.String("id", id))
	return nil
}
