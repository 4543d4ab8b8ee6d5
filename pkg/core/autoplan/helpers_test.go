package autoplan

import (
	"time"

	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/model"
	"github.com/jakechorley/dienstplan/pkg/core/plan"
)

func day(year int, month time.Month, d int) time.Time {
	return calendar.Date(year, month, d)
}

func emp(id string, weeklyMinutes int) model.Employee {
	return model.Employee{ID: id, Name: id, WeeklyTargetMinutes: weeklyMinutes}
}

// work sets the status on each of the given ISO dates
func work(store *plan.Store, employeeID string, status model.DayStatus, dates ...string) {
	for _, d := range dates {
		store.SetStatus(d, employeeID, status)
	}
}

// workingOn lists the employees with a working status on the date, in registry order
func workingOn(store *plan.Store, date string) []string {
	var ids []string
	for _, e := range store.Employees() {
		if store.GetStatus(date, e.ID).IsWorking() {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// creditedIn counts credited days for the employee in the month
func creditedIn(store *plan.Store, employeeID string, year int, month time.Month) int {
	return CreditedShiftsInMonth(store, employeeID, year, month)
}
