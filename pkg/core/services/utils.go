package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/internal/config"
	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/model"
	"github.com/jakechorley/dienstplan/pkg/core/plan"
	"github.com/jakechorley/dienstplan/pkg/db"
)

// PlanReader defines the database reads needed to rebuild a plan for a date range
type PlanReader interface {
	GetEmployees(ctx context.Context) ([]db.Employee, error)
	GetDayEntries(ctx context.Context, from, to string) ([]db.DayEntry, error)
	GetMondayOpenings(ctx context.Context, from, to string) ([]string, error)
}

// loadPlan builds an in-memory plan covering from..to inclusive.
// Open Mondays are the union of the stored openings and the config rules.
func loadPlan(ctx context.Context, database PlanReader, cfg *config.Config, logger *zap.Logger, from, to time.Time) (*plan.Store, error) {
	fromISO, toISO := calendar.ISODate(from), calendar.ISODate(to)
	logger.Debug("Loading plan", zap.String("from", fromISO), zap.String("to", toISO))

	employees, err := database.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	entries, err := database.GetDayEntries(ctx, fromISO, toISO)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch day entries: %w", err)
	}

	mondays, err := database.GetMondayOpenings(ctx, fromISO, toISO)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch monday openings: %w", err)
	}

	if cfg != nil {
		ruleMondays, err := cfg.OpenMondays(from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to expand monday openings: %w", err)
		}
		mondays = append(mondays, ruleMondays...)
	}

	modelEntries, err := toModelEntries(entries)
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded plan",
		zap.Int("employees", len(employees)),
		zap.Int("entries", len(entries)),
		zap.Int("open_mondays", len(mondays)))

	return plan.NewStore(toModelEmployees(employees), modelEntries, mondays), nil
}

// loadMonthPlan loads just the month itself
func loadMonthPlan(ctx context.Context, database PlanReader, cfg *config.Config, logger *zap.Logger, ym calendar.YearMonth) (*plan.Store, error) {
	return loadPlan(ctx, database, cfg, logger,
		calendar.FirstOfMonth(ym.Year, ym.Month),
		calendar.LastOfMonth(ym.Year, ym.Month))
}

func toModelEmployees(employees []db.Employee) []model.Employee {
	result := make([]model.Employee, len(employees))
	for i, e := range employees {
		result[i] = model.Employee{
			ID:                  e.ID,
			Name:                e.Name,
			WeeklyTargetMinutes: e.WeeklyMinutes,
		}
	}
	return result
}

func toModelEntries(entries []db.DayEntry) ([]model.PlanEntry, error) {
	result := make([]model.PlanEntry, 0, len(entries))
	for _, e := range entries {
		status, err := model.ParseDayStatus(e.Status)
		if err != nil {
			return nil, fmt.Errorf("invalid entry %s/%s: %w", e.Date, e.EmployeeID, err)
		}
		result = append(result, model.PlanEntry{Date: e.Date, EmployeeID: e.EmployeeID, Status: status})
	}
	return result, nil
}

// findEmployee looks up an employee by id, wrapping ErrEmployeeNotFound
func findEmployee(employees []db.Employee, id string) (*db.Employee, error) {
	i := slices.IndexFunc(employees, func(e db.Employee) bool { return e.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
	}
	return &employees[i], nil
}

// ParseDate accepts YYYY-MM-DD or TT.MM.JJJJ
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ".") {
		return calendar.ParseGerman(s)
	}
	return calendar.ParseISO(s)
}
