package autoplan

import (
	"fmt"

	"github.com/jakechorley/dienstplan/pkg/core/calendar"
)

// StreakCriterion discourages long runs of consecutive working days.
//
// Eligibility:
//   - Vetoes candidates whose streak already reaches maxDays (0 disables the cap)
//
// Score:
//   - Streak >= 4: subtracts streakForbidden (effectively forbidden)
//   - Streak 3, 2, 1: subtracts streakThree, streakTwo, streakOne
//   - Streak exactly 1: adds pairBonus back, preferring two-day blocks over
//     isolated days without encouraging longer runs
//
// Validation:
//   - Flags every employee reaching five consecutive working days in the month,
//     including runs carried over from the previous month
type StreakCriterion struct {
	maxDays   int
	forbidden float64
	three     float64
	two       float64
	one       float64
	pairBonus float64
}

// NewStreakCriterion creates a new StreakCriterion with the given weights
func NewStreakCriterion(maxDays int, forbidden, three, two, one, pairBonus float64) *StreakCriterion {
	return &StreakCriterion{
		maxDays:   maxDays,
		forbidden: forbidden,
		three:     three,
		two:       two,
		one:       one,
		pairBonus: pairBonus,
	}
}

func (c *StreakCriterion) Name() string {
	return "Streak"
}

func (c *StreakCriterion) IsEligible(state *PlanState, candidate *Candidate) bool {
	if c.maxDays <= 0 {
		return true
	}
	return candidate.Streak < c.maxDays
}

func (c *StreakCriterion) Score(state *PlanState, candidate *Candidate) float64 {
	switch streak := candidate.Streak; {
	case streak >= 4:
		return -c.forbidden
	case streak == 3:
		return -c.three
	case streak == 2:
		return -c.two
	case streak == 1:
		return -c.one + c.pairBonus
	}
	return 0
}

func (c *StreakCriterion) ValidatePlan(state *PlanState) []PlanIssue {
	var issues []PlanIssue
	for _, employee := range state.Employees {
		for _, day := range state.Month.Days() {
			if !workedOn(state.Store, employee.ID, day) {
				continue
			}
			// Report once, on the fifth day of the run, or on the 1st when the
			// run already reached five days before the month
			streak := ConsecutiveWorkDaysBefore(state.Store, employee.ID, day)
			if streak < 4 || (streak > 4 && day.Day() != 1) {
				continue
			}
			issues = append(issues, PlanIssue{
				Date:          calendar.ISODate(day),
				EmployeeID:    employee.ID,
				CriterionName: c.Name(),
				Description:   fmt.Sprintf("%s reaches five consecutive working days on %s", employee.Name, calendar.FormatGerman(day)),
			})
		}
	}
	return issues
}
