package autoplan

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/model"
	"github.com/jakechorley/dienstplan/pkg/core/plan"
)

type constCriterion struct {
	scores   map[string]float64
	excluded map[string]bool
}

func (c constCriterion) Name() string { return "Const" }

func (c constCriterion) IsEligible(state *PlanState, candidate *Candidate) bool {
	return !c.excluded[candidate.Employee.ID]
}

func (c constCriterion) Score(state *PlanState, candidate *Candidate) float64 {
	return c.scores[candidate.Employee.ID]
}

func (c constCriterion) ValidatePlan(state *PlanState) []PlanIssue { return nil }

func rankedIDs(ranked []ScoredCandidate) []string {
	ids := make([]string, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.Candidate.Employee.ID)
	}
	return ids
}

func TestNewCandidate_Metrics(t *testing.T) {
	anna := emp("anna", 2400)
	store := plan.NewStore([]model.Employee{anna}, nil, nil)
	state := InitPlanState(store, store.Employees(), calendar.YearMonth{Year: 2026, Month: time.March})

	work(store, "anna", model.StatusSchloss, "2026-03-08", "2026-03-12", "2026-03-13", "2026-03-14")

	sunday := NewCandidate(state, anna, day(2026, time.March, 15))
	assert.True(t, sunday.IsSunday)
	assert.Equal(t, 3, sunday.Streak)
	assert.Equal(t, 3, sunday.WeekWorkCount)
	assert.Equal(t, -16, sunday.MonthDelta)
	assert.True(t, sunday.WorkedSundayPreviousWeek)
	// 18 Sunday slots in March-April, anna is the only employee
	assert.InDelta(t, 17.0, sunday.SundayDeficit, 1e-9)

	tuesday := NewCandidate(state, anna, day(2026, time.March, 10))
	assert.False(t, tuesday.IsSunday)
	assert.Zero(t, tuesday.SundayDeficit)
	assert.False(t, tuesday.WorkedSundaySameWeek)
}

func TestRankCandidates_ScoreThenID(t *testing.T) {
	employees := []model.Employee{emp("zoe", 0), emp("yan", 0), emp("xia", 0), emp("wim", 0)}
	store := plan.NewStore(employees, nil, nil)
	state := InitPlanState(store, employees, calendar.YearMonth{Year: 2026, Month: time.March})

	criteria := []Criterion{constCriterion{scores: map[string]float64{"zoe": 10, "yan": 5, "xia": 10, "wim": -1}}}
	ranked := RankCandidates(state, employees, day(2026, time.March, 10), criteria)

	assert.Equal(t, []string{"xia", "zoe", "yan", "wim"}, rankedIDs(ranked))
	assert.Equal(t, 10.0, ranked[0].Score)
}

func TestRankCandidates_DropsVetoedAndNonFinite(t *testing.T) {
	employees := []model.Employee{emp("anna", 0), emp("ben", 0), emp("carl", 0), emp("dora", 0)}
	store := plan.NewStore(employees, nil, nil)
	state := InitPlanState(store, employees, calendar.YearMonth{Year: 2026, Month: time.March})

	criteria := []Criterion{constCriterion{
		scores:   map[string]float64{"anna": 1, "ben": math.NaN(), "carl": math.Inf(1), "dora": 2},
		excluded: map[string]bool{"dora": true},
	}}
	ranked := RankCandidates(state, employees, day(2026, time.March, 10), criteria)

	require.Len(t, ranked, 1)
	assert.Equal(t, "anna", ranked[0].Candidate.Employee.ID)
}
