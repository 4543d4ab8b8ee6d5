package autoplan

import (
	"fmt"

	"github.com/jakechorley/dienstplan/pkg/core/calendar"
)

// MonthlyTargetCriterion pulls every employee toward their prorated monthly target.
//
// Eligibility:
//   - Vetoes employees whose next shift would exceed the target by more than
//     maxOver shifts (0 disables the cap)
//
// Score:
//   - Adds -delta * underTarget (under-target employees score higher)
//   - At delta == 1 subtracts a small reluctance penalty
//   - Above delta 1 subtracts overshootBase + (delta-1) * overshootPerShift,
//     so an employee is pushed at most one shift past target in practice
//
// Validation:
//   - Flags employees ending the month more than one shift over target
type MonthlyTargetCriterion struct {
	maxOver             int
	underTarget         float64
	overshootBase       float64
	overshootPerShift   float64
	overshootReluctance float64
}

// NewMonthlyTargetCriterion creates a new MonthlyTargetCriterion with the given weights
func NewMonthlyTargetCriterion(maxOver int, underTarget, overshootBase, overshootPerShift, overshootReluctance float64) *MonthlyTargetCriterion {
	return &MonthlyTargetCriterion{
		maxOver:             maxOver,
		underTarget:         underTarget,
		overshootBase:       overshootBase,
		overshootPerShift:   overshootPerShift,
		overshootReluctance: overshootReluctance,
	}
}

func (c *MonthlyTargetCriterion) Name() string {
	return "MonthlyTarget"
}

func (c *MonthlyTargetCriterion) IsEligible(state *PlanState, candidate *Candidate) bool {
	if c.maxOver <= 0 {
		return true
	}
	return candidate.MonthDelta+1 <= c.maxOver
}

func (c *MonthlyTargetCriterion) Score(state *PlanState, candidate *Candidate) float64 {
	delta := candidate.MonthDelta
	score := -float64(delta) * c.underTarget

	switch {
	case delta > 1:
		score -= c.overshootBase + float64(delta-1)*c.overshootPerShift
	case delta == 1:
		score -= c.overshootReluctance
	}

	return score
}

func (c *MonthlyTargetCriterion) ValidatePlan(state *PlanState) []PlanIssue {
	var issues []PlanIssue
	for _, employee := range state.Employees {
		delta := state.MonthDelta(employee)
		if delta > 1 {
			issues = append(issues, PlanIssue{
				Date:          calendar.ISODate(calendar.LastOfMonth(state.Month.Year, state.Month.Month)),
				EmployeeID:    employee.ID,
				CriterionName: c.Name(),
				Description:   fmt.Sprintf("%s is %d shifts over the monthly target of %d", employee.Name, delta, state.TargetShifts[employee.ID]),
			})
		}
	}
	return issues
}
