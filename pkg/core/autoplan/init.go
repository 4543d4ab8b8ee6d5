package autoplan

import (
	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/model"
)

// InitPlanState prepares the per-run state: monthly targets, total weekly
// minutes and the Sunday fairness window
func InitPlanState(store PlanStore, employees []model.Employee, ym calendar.YearMonth) *PlanState {
	targets := make(map[string]int, len(employees))
	for _, employee := range employees {
		targets[employee.ID] = TargetShiftsForMonth(store, employee, ym.Year, ym.Month)
	}

	return &PlanState{
		Store:              store,
		Month:              ym,
		Employees:          employees,
		TargetShifts:       targets,
		TotalWeeklyMinutes: totalWeeklyMinutes(employees),
		Window:             calendar.TwoMonthWindow(ym.Year, ym.Month),
	}
}
