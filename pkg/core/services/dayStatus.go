package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/internal/config"
	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/model"
	"github.com/jakechorley/dienstplan/pkg/db"
)

// SetDayStatusStore defines the database operations needed to change one day entry
type SetDayStatusStore interface {
	GetEmployees(ctx context.Context) ([]db.Employee, error)
	GetDayEntries(ctx context.Context, from, to string) ([]db.DayEntry, error)
	GetMondayOpenings(ctx context.Context, from, to string) ([]string, error)
	UpsertDayEntries(ctx context.Context, entries []db.DayEntry) error
	DeleteDayEntry(ctx context.Context, date, employeeID string) error
}

// ClearMonthDutiesStore defines the database operations needed to clear duties
type ClearMonthDutiesStore interface {
	GetEmployees(ctx context.Context) ([]db.Employee, error)
	GetDayEntries(ctx context.Context, from, to string) ([]db.DayEntry, error)
	DeleteDayEntry(ctx context.Context, date, employeeID string) error
}

// SetDayStatus sets an employee's status for one day and returns the resulting status.
// Setting the status the day already has clears it, as does NONE.
// Closed Mondays reject every change. Accepts YYYY-MM-DD or TT.MM.JJJJ.
func SetDayStatus(
	ctx context.Context,
	database SetDayStatusStore,
	cfg *config.Config,
	logger *zap.Logger,
	date string,
	employeeID string,
	status model.DayStatus,
) (model.DayStatus, error) {
	logger.Debug("Setting day status",
		zap.String("date", date),
		zap.String("employee_id", employeeID),
		zap.String("status", string(status)))

	if !status.IsValid() {
		return model.StatusNone, fmt.Errorf("unknown day status %q", status)
	}

	day, err := ParseDate(date)
	if err != nil {
		return model.StatusNone, err
	}
	date = calendar.ISODate(day)

	employees, err := database.GetEmployees(ctx)
	if err != nil {
		return model.StatusNone, fmt.Errorf("failed to fetch employees: %w", err)
	}
	if _, err := findEmployee(employees, employeeID); err != nil {
		return model.StatusNone, err
	}

	if calendar.IsMonday(day) {
		open, err := isMondayOpen(ctx, database, cfg, day)
		if err != nil {
			return model.StatusNone, err
		}
		if !open {
			return model.StatusNone, fmt.Errorf("%w: Monday %s is not opened", ErrDayClosed, date)
		}
	}

	entries, err := database.GetDayEntries(ctx, date, date)
	if err != nil {
		return model.StatusNone, fmt.Errorf("failed to fetch day entries: %w", err)
	}
	current := model.StatusNone
	for _, e := range entries {
		if e.EmployeeID == employeeID {
			current, err = model.ParseDayStatus(e.Status)
			if err != nil {
				return model.StatusNone, fmt.Errorf("invalid stored status: %w", err)
			}
		}
	}

	next := status
	if current == status {
		next = model.StatusNone
	}

	if next == model.StatusNone {
		if current != model.StatusNone {
			if err := database.DeleteDayEntry(ctx, date, employeeID); err != nil {
				return model.StatusNone, fmt.Errorf("failed to clear day entry: %w", err)
			}
		}
	} else {
		entry := db.DayEntry{Date: date, EmployeeID: employeeID, Status: string(next)}
		if err := database.UpsertDayEntries(ctx, []db.DayEntry{entry}); err != nil {
			return model.StatusNone, fmt.Errorf("failed to save day entry: %w", err)
		}
	}

	logger.Info("Day status changed",
		zap.String("date", date),
		zap.String("employee_id", employeeID),
		zap.String("from", string(current)),
		zap.String("to", string(next)))

	return next, nil
}

// ClearMonthDuties removes the employee's SCHLOSS and BUERGER entries in the month.
// Leave statuses are kept. Returns the number of entries removed.
func ClearMonthDuties(
	ctx context.Context,
	database ClearMonthDutiesStore,
	logger *zap.Logger,
	employeeID string,
	year int,
	month int,
) (int, error) {
	ym, err := calendar.NewYearMonth(year, month)
	if err != nil {
		return 0, err
	}

	employees, err := database.GetEmployees(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch employees: %w", err)
	}
	if _, err := findEmployee(employees, employeeID); err != nil {
		return 0, err
	}

	entries, err := database.GetDayEntries(ctx,
		calendar.ISODate(calendar.FirstOfMonth(ym.Year, ym.Month)),
		calendar.ISODate(calendar.LastOfMonth(ym.Year, ym.Month)))
	if err != nil {
		return 0, fmt.Errorf("failed to fetch day entries: %w", err)
	}

	cleared := 0
	for _, e := range entries {
		if e.EmployeeID != employeeID || !model.DayStatus(e.Status).IsWorking() {
			continue
		}
		if err := database.DeleteDayEntry(ctx, e.Date, e.EmployeeID); err != nil {
			return cleared, fmt.Errorf("failed to clear day entry %s: %w", e.Date, err)
		}
		cleared++
	}

	logger.Info("Cleared month duties",
		zap.String("employee_id", employeeID),
		zap.String("month", ym.String()),
		zap.Int("cleared", cleared))

	return cleared, nil
}
