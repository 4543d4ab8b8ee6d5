package autoplan

import (
	"fmt"

	"github.com/jakechorley/dienstplan/pkg/core/calendar"
)

// TuesdayAfterSundayCriterion keeps Tuesday free for employees who work the
// Sunday of the same Monday-Sunday week. Soft preference only.
//
// Validation:
//   - Flags every Tuesday worked by an employee who also works that week's Sunday
type TuesdayAfterSundayCriterion struct {
	penalty float64
}

// NewTuesdayAfterSundayCriterion creates a new TuesdayAfterSundayCriterion with the given penalty
func NewTuesdayAfterSundayCriterion(penalty float64) *TuesdayAfterSundayCriterion {
	return &TuesdayAfterSundayCriterion{penalty: penalty}
}

func (c *TuesdayAfterSundayCriterion) Name() string {
	return "TuesdayAfterSunday"
}

func (c *TuesdayAfterSundayCriterion) IsEligible(state *PlanState, candidate *Candidate) bool {
	return true
}

func (c *TuesdayAfterSundayCriterion) Score(state *PlanState, candidate *Candidate) float64 {
	if candidate.IsSunday || !calendar.IsTuesday(candidate.Day) {
		return 0
	}
	if candidate.WorkedSundaySameWeek {
		return -c.penalty
	}
	return 0
}

func (c *TuesdayAfterSundayCriterion) ValidatePlan(state *PlanState) []PlanIssue {
	var issues []PlanIssue
	for _, day := range state.Month.Days() {
		if !calendar.IsTuesday(day) {
			continue
		}
		sunday := calendar.WeekSunday(day)
		for _, employee := range state.Employees {
			if !workedOn(state.Store, employee.ID, day) || !workedOn(state.Store, employee.ID, sunday) {
				continue
			}
			issues = append(issues, PlanIssue{
				Date:          calendar.ISODate(day),
				EmployeeID:    employee.ID,
				CriterionName: c.Name(),
				Description:   fmt.Sprintf("%s works Tuesday %s and Sunday %s", employee.Name, calendar.FormatGerman(day), calendar.FormatGerman(sunday)),
			})
		}
	}
	return issues
}
