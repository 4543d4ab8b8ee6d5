package autoplan

// WeeklyBalanceCriterion spreads shifts across the weeks of the month.
// It is deliberately weaker than MonthlyTargetCriterion and acts as a tie-breaker.
//
// Score:
//   - Above the weekly target subtracts excess * weekExcess
//   - Otherwise adds shortfall * weekShortfall
type WeeklyBalanceCriterion struct {
	weekExcess    float64
	weekShortfall float64
}

// NewWeeklyBalanceCriterion creates a new WeeklyBalanceCriterion with the given weights
func NewWeeklyBalanceCriterion(weekExcess, weekShortfall float64) *WeeklyBalanceCriterion {
	return &WeeklyBalanceCriterion{
		weekExcess:    weekExcess,
		weekShortfall: weekShortfall,
	}
}

func (c *WeeklyBalanceCriterion) Name() string {
	return "WeeklyBalance"
}

func (c *WeeklyBalanceCriterion) IsEligible(state *PlanState, candidate *Candidate) bool {
	return true
}

func (c *WeeklyBalanceCriterion) Score(state *PlanState, candidate *Candidate) float64 {
	target := candidate.Employee.TargetShiftsPerWeek()
	worked := candidate.WeekWorkCount
	if worked > target {
		return -float64(worked-target) * c.weekExcess
	}
	return float64(target-worked) * c.weekShortfall
}

func (c *WeeklyBalanceCriterion) ValidatePlan(state *PlanState) []PlanIssue {
	return nil
}
