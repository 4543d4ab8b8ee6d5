package autoplan

import (
	"fmt"

	"github.com/jakechorley/dienstplan/pkg/core/calendar"
)

// SundayRotationCriterion distributes Sunday duty by weighted entitlement over
// the two-month fairness window. It only scores Sunday candidates.
//
// Score:
//   - Subtracts consecutiveSunday if the employee worked the previous week's Sunday
//   - Adds sundayDeficit * deficitWeight (owed Sundays score higher)
//   - Subtracts overTarget when the employee is two or more shifts over target
//
// Validation:
//   - Flags Sundays worked directly after a worked Sunday
type SundayRotationCriterion struct {
	consecutiveSunday float64
	deficitWeight     float64
	overTarget        float64
}

// NewSundayRotationCriterion creates a new SundayRotationCriterion with the given weights
func NewSundayRotationCriterion(consecutiveSunday, deficitWeight, overTarget float64) *SundayRotationCriterion {
	return &SundayRotationCriterion{
		consecutiveSunday: consecutiveSunday,
		deficitWeight:     deficitWeight,
		overTarget:        overTarget,
	}
}

func (c *SundayRotationCriterion) Name() string {
	return "SundayRotation"
}

func (c *SundayRotationCriterion) IsEligible(state *PlanState, candidate *Candidate) bool {
	return true
}

func (c *SundayRotationCriterion) Score(state *PlanState, candidate *Candidate) float64 {
	if !candidate.IsSunday {
		return 0
	}

	score := 0.0
	if candidate.WorkedSundayPreviousWeek {
		score -= c.consecutiveSunday
	}
	score += candidate.SundayDeficit * c.deficitWeight
	if candidate.MonthDelta >= 2 {
		score -= c.overTarget
	}
	return score
}

func (c *SundayRotationCriterion) ValidatePlan(state *PlanState) []PlanIssue {
	var issues []PlanIssue
	for _, day := range state.Month.Days() {
		if !calendar.IsSunday(day) {
			continue
		}
		for _, employee := range state.Employees {
			if !workedOn(state.Store, employee.ID, day) {
				continue
			}
			if HasWorkedSundayPreviousWeek(state.Store, employee.ID, day) {
				issues = append(issues, PlanIssue{
					Date:          calendar.ISODate(day),
					EmployeeID:    employee.ID,
					CriterionName: c.Name(),
					Description:   fmt.Sprintf("%s works two Sundays in a row (%s)", employee.Name, calendar.FormatGerman(day)),
				})
			}
		}
	}
	return issues
}
