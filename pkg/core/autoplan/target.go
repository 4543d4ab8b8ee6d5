package autoplan

import (
	"time"

	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/model"
)

// IsOpenDay reports whether the day has shift slots.
// Mondays are closed unless present in the open-Monday set.
func IsOpenDay(mondays MondayCalendar, day time.Time) bool {
	if calendar.IsMonday(day) {
		return mondays.IsMondayOpen(calendar.ISODate(day))
	}
	return true
}

// OpenDaysInMonth counts the open days of the month
func OpenDaysInMonth(mondays MondayCalendar, year int, month time.Month) int {
	count := 0
	for _, day := range calendar.MonthDays(year, month) {
		if IsOpenDay(mondays, day) {
			count++
		}
	}
	return count
}

// TargetMinutes prorates the weekly target over the month's open days:
// round(weekly * openDays / 7)
func TargetMinutes(mondays MondayCalendar, employee model.Employee, year int, month time.Month) int {
	openDays := OpenDaysInMonth(mondays, year, month)
	return model.RoundDiv(employee.WeeklyTargetMinutes*openDays, 7)
}

// TargetShiftsForMonth converts the monthly target to whole shifts
func TargetShiftsForMonth(mondays MondayCalendar, employee model.Employee, year int, month time.Month) int {
	return model.RoundDiv(TargetMinutes(mondays, employee, year, month), model.ShiftMinutes)
}

// CreditedShiftsInMonth counts the days with a credited status (working or leave)
func CreditedShiftsInMonth(store StatusReader, employeeID string, year int, month time.Month) int {
	count := 0
	for _, day := range calendar.MonthDays(year, month) {
		if store.GetStatus(calendar.ISODate(day), employeeID).IsCredited() {
			count++
		}
	}
	return count
}

// MonthDelta returns credited shifts minus the monthly target.
// Negative means under target.
func (s *PlanState) MonthDelta(employee model.Employee) int {
	credited := CreditedShiftsInMonth(s.Store, employee.ID, s.Month.Year, s.Month.Month)
	return credited - s.TargetShifts[employee.ID]
}
