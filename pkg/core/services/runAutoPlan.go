package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/internal/config"
	"github.com/jakechorley/dienstplan/pkg/core/autoplan"
	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/model"
	"github.com/jakechorley/dienstplan/pkg/db"
)

// Days loaded around the planned month so streaks, week counts and
// previous-week Sundays see entries from neighbouring months
const (
	planLookbackDays  = 14
	planLookaheadDays = 7
)

// RunAutoPlanStore defines the database operations needed for an AutoPlan run
type RunAutoPlanStore interface {
	PlanReader
	UpsertDayEntries(ctx context.Context, entries []db.DayEntry) error
	InsertAutoPlanRun(ctx context.Context, run *db.AutoPlanRun) error
}

// AutoPlanOutcome is the engine result plus the stored run record
type AutoPlanOutcome struct {
	Result *autoplan.Result

	// Run is nil for dry runs and when there are no employees
	Run *db.AutoPlanRun

	DryRun bool
}

// RunAutoPlan fills the month's empty slots and saves the new SCHLOSS entries.
// With dryRun the plan is computed but nothing is written.
func RunAutoPlan(
	ctx context.Context,
	database RunAutoPlanStore,
	cfg *config.Config,
	logger *zap.Logger,
	year int,
	month int,
	dryRun bool,
) (*AutoPlanOutcome, error) {
	logger.Debug("Starting runAutoPlan",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Bool("dry_run", dryRun))

	ym, err := calendar.NewYearMonth(year, month)
	if err != nil {
		return nil, err
	}

	// Step 1: Load the plan around the month
	from, to := planRange(ym)
	store, err := loadPlan(ctx, database, cfg, logger, from, to)
	if err != nil {
		return nil, err
	}

	// Step 2: Run the engine against the in-memory plan
	engineCfg := autoplan.Config{
		Store:    store,
		Registry: store,
		Year:     ym.Year,
		Month:    ym.Month,
		Logger:   logger,
	}
	if cfg != nil {
		engineCfg.Weights = &cfg.Weights
		engineCfg.Limits = &cfg.Limits
	}

	result, err := autoplan.Run(engineCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to run autoplan: %w", err)
	}

	outcome := &AutoPlanOutcome{Result: result, DryRun: dryRun}
	if dryRun || result.NoEmployees {
		logger.Info("AutoPlan not saved",
			zap.Bool("dry_run", dryRun),
			zap.Bool("no_employees", result.NoEmployees),
			zap.Int("filled", result.Filled()))
		return outcome, nil
	}

	// Step 3: Save the new entries
	if result.Filled() > 0 {
		entries := make([]db.DayEntry, len(result.Assignments))
		for i, a := range result.Assignments {
			entries[i] = db.DayEntry{
				Date:       a.Date,
				EmployeeID: a.EmployeeID,
				Status:     string(model.StatusSchloss),
			}
		}
		logger.Debug("Saving assignments", zap.Int("count", len(entries)))
		if err := database.UpsertDayEntries(ctx, entries); err != nil {
			return nil, fmt.Errorf("failed to save assignments: %w", err)
		}
	}

	// Step 4: Record the run
	run := &db.AutoPlanRun{
		ID:          uuid.New().String(),
		Year:        ym.Year,
		Month:       int(ym.Month),
		Filled:      result.Filled(),
		Underfilled: len(result.Underfilled),
		CreatedAt:   time.Now().UTC(),
	}
	if err := database.InsertAutoPlanRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to record autoplan run: %w", err)
	}
	outcome.Run = run

	logger.Info("AutoPlan saved",
		zap.String("run_id", run.ID),
		zap.String("month", ym.String()),
		zap.Int("filled", run.Filled),
		zap.Int("underfilled_days", run.Underfilled))

	return outcome, nil
}

// planRange covers the Sunday fairness window, the streak lookback before the
// month and the week running past its last day
func planRange(ym calendar.YearMonth) (time.Time, time.Time) {
	window := calendar.TwoMonthWindow(ym.Year, ym.Month)

	from := calendar.FirstOfMonth(ym.Year, ym.Month).AddDate(0, 0, -planLookbackDays)
	if window.Start().Before(from) {
		from = window.Start()
	}

	to := calendar.LastOfMonth(ym.Year, ym.Month).AddDate(0, 0, planLookaheadDays)
	if window.End().After(to) {
		to = window.End()
	}

	return from, to
}
