package autoplan

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/model"
)

// NoEmployeesSummary is reported when the registry is empty
const NoEmployeesSummary = "Keine Mitarbeiter vorhanden."

// Config contains everything one run needs
type Config struct {
	// Store is read and mutated in place
	Store PlanStore

	// Registry provides the employees to plan
	Registry Registry

	Year  int
	Month time.Month

	// Criteria to score candidates with. Nil uses DefaultCriteria(Weights).
	Criteria []Criterion

	// Weights for the default criteria. Nil uses DefaultWeights().
	Weights *Weights

	// Limits for the default criteria. Nil uses DefaultLimits().
	Limits *Limits

	// Logger receives per-day debug output. Nil disables logging.
	Logger *zap.Logger
}

// Result is the outcome of one run
type Result struct {
	Month calendar.YearMonth

	// NoEmployees is set when the run was skipped because the registry is empty
	NoEmployees bool

	// Assignments written during the run, in date order
	Assignments []Assignment

	// Underfilled lists open days still short of their required slot count
	Underfilled []DayShortfall

	// Issues reported by the criteria after the run
	Issues []PlanIssue
}

// Filled returns the number of entries written
func (r *Result) Filled() int {
	return len(r.Assignments)
}

// Summary returns the short human-readable message shown to the user
func (r *Result) Summary() string {
	if r.NoEmployees {
		return NoEmployeesSummary
	}
	return fmt.Sprintf("AutoPlan für %s abgeschlossen (nur leere Felder ergänzt, %d Einträge).",
		calendar.MonthName(r.Month.Year, r.Month.Month), r.Filled())
}

// Run fills the month's unset slots in one forward pass over the days.
//
// For every open day it counts the employees already working, scores every
// eligible employee whose status is NONE and writes SCHLOSS for the best candidates
// until the day's slots are filled. Existing entries are never changed and
// earlier assignments are never revisited, so days can remain under-filled.
func Run(cfg Config) (*Result, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("plan store is required")
	}
	if cfg.Registry == nil {
		return nil, fmt.Errorf("employee registry is required")
	}
	ym, err := calendar.NewYearMonth(cfg.Year, int(cfg.Month))
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	result := &Result{Month: ym}

	employees := cfg.Registry.Employees()
	if len(employees) == 0 {
		logger.Info("No employees registered, skipping AutoPlan", zap.String("month", ym.String()))
		result.NoEmployees = true
		return result, nil
	}

	criteria := cfg.Criteria
	if criteria == nil {
		weights := DefaultWeights()
		if cfg.Weights != nil {
			weights = *cfg.Weights
		}
		limits := DefaultLimits()
		if cfg.Limits != nil {
			limits = *cfg.Limits
		}
		criteria = DefaultCriteria(weights, limits)
	}

	state := InitPlanState(cfg.Store, employees, ym)

	for _, day := range ym.Days() {
		if !IsOpenDay(cfg.Store, day) {
			continue
		}

		date := calendar.ISODate(day)
		required := RequiredSlots(day)
		existing := countWorking(cfg.Store, employees, date)
		freeSlots := required - existing
		if freeSlots <= 0 {
			continue
		}

		// Only unset entries are candidates; any other status blocks the employee
		candidates := make([]model.Employee, 0, len(employees))
		for _, employee := range employees {
			if isBlocked(cfg.Store, date, employee.ID) {
				continue
			}
			candidates = append(candidates, employee)
		}

		ranked := RankCandidates(state, candidates, day, criteria)
		picks := ranked[:min(freeSlots, len(ranked))]

		for _, pick := range picks {
			cfg.Store.SetStatus(date, pick.Candidate.Employee.ID, model.StatusSchloss)
			result.Assignments = append(result.Assignments, Assignment{
				Date:       date,
				EmployeeID: pick.Candidate.Employee.ID,
			})
		}

		working := existing + len(picks)
		logger.Debug("Planned day",
			zap.String("date", date),
			zap.Int("required", required),
			zap.Int("existing", existing),
			zap.Int("candidates", len(ranked)),
			zap.Int("assigned", len(picks)))

		if working < required {
			result.Underfilled = append(result.Underfilled, DayShortfall{
				Date:     date,
				Required: required,
				Working:  working,
			})
		}
	}

	result.Issues = ValidatePlan(state, criteria)

	logger.Info("AutoPlan finished",
		zap.String("month", ym.String()),
		zap.Int("filled", result.Filled()),
		zap.Int("underfilled_days", len(result.Underfilled)),
		zap.Int("issues", len(result.Issues)))

	return result, nil
}

// ValidatePlan collects the issues every criterion reports for the month
func ValidatePlan(state *PlanState, criteria []Criterion) []PlanIssue {
	issues := []PlanIssue{}
	for _, criterion := range criteria {
		issues = append(issues, criterion.ValidatePlan(state)...)
	}
	return issues
}

// isBlocked reports whether the employee already has any status on the day.
// Redundant with the NONE filter today; kept as the single place to add
// further blocking rules.
func isBlocked(store StatusReader, date string, employeeID string) bool {
	return store.GetStatus(date, employeeID) != model.StatusNone
}

// countWorking counts employees with a working status on the day
func countWorking(store StatusReader, employees []model.Employee, date string) int {
	count := 0
	for _, employee := range employees {
		if store.GetStatus(date, employee.ID).IsWorking() {
			count++
		}
	}
	return count
}
