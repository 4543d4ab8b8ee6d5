package autoplan

import (
	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/model"
)

// SundaySlotsInWindow is the total number of Sunday working slots in the window
func SundaySlotsInWindow(w calendar.Window) int {
	slots := 0
	for _, ym := range w {
		slots += calendar.SundaysInMonth(ym.Year, ym.Month) * SundaySlots
	}
	return slots
}

// ActualSundaysInWindow counts the Sundays in the window the employee worked
func ActualSundaysInWindow(store StatusReader, employeeID string, w calendar.Window) int {
	count := 0
	for _, ym := range w {
		for _, day := range ym.Days() {
			if !calendar.IsSunday(day) {
				continue
			}
			if store.GetStatus(calendar.ISODate(day), employeeID).IsWorking() {
				count++
			}
		}
	}
	return count
}

// ExpectedSundaysInWindow is the employee's share of the window's Sunday slots,
// weighted by their weekly target relative to the whole staff
func ExpectedSundaysInWindow(employee model.Employee, totalWeeklyMinutes int, w calendar.Window) float64 {
	if totalWeeklyMinutes <= 0 {
		totalWeeklyMinutes = 1
	}
	share := float64(employee.WeeklyTargetMinutes) / float64(totalWeeklyMinutes)
	return float64(SundaySlotsInWindow(w)) * share
}

// SundayDeficit returns expected minus actual Sundays; positive means owed Sundays
func (s *PlanState) SundayDeficit(employee model.Employee) float64 {
	expected := ExpectedSundaysInWindow(employee, s.TotalWeeklyMinutes, s.Window)
	actual := ActualSundaysInWindow(s.Store, employee.ID, s.Window)
	return expected - float64(actual)
}

// totalWeeklyMinutes sums the weekly targets, falling back to 1 so shares stay finite
func totalWeeklyMinutes(employees []model.Employee) int {
	total := 0
	for _, e := range employees {
		total += e.WeeklyTargetMinutes
	}
	if total <= 0 {
		return 1
	}
	return total
}
