package autoplan

import (
	"time"

	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/model"
)

// Slot counts per open day
const (
	SundaySlots  = 2
	WeekdaySlots = 5
)

// StatusReader reads one employee's status on one day (NONE when absent)
type StatusReader interface {
	GetStatus(date string, employeeID string) model.DayStatus
}

// MondayCalendar tells which Mondays are exceptionally open
type MondayCalendar interface {
	IsMondayOpen(date string) bool
}

// PlanStore is the view of the plan the planner reads and writes
type PlanStore interface {
	StatusReader
	MondayCalendar
	SetStatus(date string, employeeID string, status model.DayStatus)
}

// Registry provides the ordered, duplicate-free employee list
type Registry interface {
	Employees() []model.Employee
}

// PlanState is what criteria score against during one run
type PlanState struct {
	// Store is mutated in place as the run assigns shifts
	Store PlanStore

	// Month being planned
	Month calendar.YearMonth

	// Employees in registry order
	Employees []model.Employee

	// TargetShifts is each employee's prorated monthly target in shifts.
	// Computed once per run since open days cannot change mid-run.
	TargetShifts map[string]int

	// TotalWeeklyMinutes is the sum of all weekly targets, at least 1
	TotalWeeklyMinutes int

	// Window is the two-month Sunday fairness window containing Month
	Window calendar.Window
}

// Candidate is one (employee, day) pair with the metrics criteria need.
// Metrics are computed once per candidate before any criterion runs.
type Candidate struct {
	Employee model.Employee
	Day      time.Time
	IsSunday bool

	// MonthDelta is credited shifts so far minus the monthly target
	MonthDelta int

	// WeekWorkCount is the number of working days in the Monday-Sunday week
	WeekWorkCount int

	// Streak is the number of consecutive worked open days before Day
	Streak int

	// SundayDeficit is expected minus actual Sundays in the fairness window
	SundayDeficit float64

	WorkedSundaySameWeek     bool
	WorkedSundayPreviousWeek bool
}

// Assignment is one entry written by the planner
type Assignment struct {
	Date       string
	EmployeeID string
}

// DayShortfall records an open day left with fewer working employees than required
type DayShortfall struct {
	Date     string
	Required int
	Working  int
}

// Missing returns the number of unfilled slots
func (d DayShortfall) Missing() int {
	return d.Required - d.Working
}

// RequiredSlots returns the number of working employees an open day needs
func RequiredSlots(day time.Time) int {
	if calendar.IsSunday(day) {
		return SundaySlots
	}
	return WeekdaySlots
}
