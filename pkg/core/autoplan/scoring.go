package autoplan

import (
	"math"
	"sort"
	"time"

	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/model"
)

// ScoredCandidate pairs a candidate with its total score
type ScoredCandidate struct {
	Candidate *Candidate
	Score     float64
}

// NewCandidate computes the metrics criteria need for the (employee, day) pair
func NewCandidate(state *PlanState, employee model.Employee, day time.Time) *Candidate {
	isSunday := calendar.IsSunday(day)
	c := &Candidate{
		Employee:                 employee,
		Day:                      day,
		IsSunday:                 isSunday,
		MonthDelta:               state.MonthDelta(employee),
		WeekWorkCount:            WeekWorkCount(state.Store, employee.ID, day),
		Streak:                   ConsecutiveWorkDaysBefore(state.Store, employee.ID, day),
		WorkedSundaySameWeek:     HasWorkedSundaySameWeek(state.Store, employee.ID, day),
		WorkedSundayPreviousWeek: HasWorkedSundayPreviousWeek(state.Store, employee.ID, day),
	}
	if isSunday {
		c.SundayDeficit = state.SundayDeficit(employee)
	}
	return c
}

// ScoreCandidate sums the contributions of every criterion
func ScoreCandidate(state *PlanState, candidate *Candidate, criteria []Criterion) float64 {
	total := 0.0
	for _, criterion := range criteria {
		total += criterion.Score(state, candidate)
	}
	return total
}

// RankCandidates scores every eligible employee for the day, drops non-finite scores and
// sorts by score descending then employee id ascending, so exact ties are
// settled by a stable, explicit order
func RankCandidates(state *PlanState, employees []model.Employee, day time.Time, criteria []Criterion) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(employees))
	for _, employee := range employees {
		candidate := NewCandidate(state, employee, day)
		if !IsEligible(state, candidate, criteria) {
			continue
		}
		score := ScoreCandidate(state, candidate, criteria)
		if math.IsNaN(score) || math.IsInf(score, 0) {
			continue
		}
		scored = append(scored, ScoredCandidate{Candidate: candidate, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Candidate.Employee.ID < scored[j].Candidate.Employee.ID
	})

	return scored
}
