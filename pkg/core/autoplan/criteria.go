package autoplan

// PlanIssue describes a property of the finished plan that a criterion flags
type PlanIssue struct {
	Date          string
	EmployeeID    string
	CriterionName string
	Description   string
}

// Criterion is one additive term of the candidate score
type Criterion interface {
	// Name returns a human-readable identifier for this criterion
	Name() string

	// IsEligible vetoes a candidate. If ANY criterion returns false the
	// candidate is not assigned, regardless of score.
	IsEligible(state *PlanState, candidate *Candidate) bool

	// Score returns this criterion's contribution for the candidate.
	// Higher is more desirable; large negative values effectively exclude.
	Score(state *PlanState, candidate *Candidate) float64

	// ValidatePlan checks the month after the run and reports issues.
	// Issues are informational; the planner never undoes assignments.
	ValidatePlan(state *PlanState) []PlanIssue
}

// DefaultCriteria returns the built-in criteria configured with the given weights and limits
func DefaultCriteria(w Weights, l Limits) []Criterion {
	return []Criterion{
		NewMonthlyTargetCriterion(l.MaxShiftsOverTarget, w.UnderTarget, w.OvershootBase, w.OvershootPerShift, w.OvershootReluctance),
		NewWeeklyBalanceCriterion(w.WeekExcess, w.WeekShortfall),
		NewStreakCriterion(l.MaxConsecutiveDays, w.StreakForbidden, w.StreakThree, w.StreakTwo, w.StreakOne, w.PairBonus),
		NewTuesdayAfterSundayCriterion(w.TuesdayAfterSunday),
		NewSundayRotationCriterion(w.ConsecutiveSunday, w.SundayDeficit, w.SundayOverTarget),
	}
}

// IsEligible reports whether no criterion vetoes the candidate
func IsEligible(state *PlanState, candidate *Candidate, criteria []Criterion) bool {
	for _, criterion := range criteria {
		if !criterion.IsEligible(state, candidate) {
			return false
		}
	}
	return true
}
