package autoplan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/model"
	"github.com/jakechorley/dienstplan/pkg/core/plan"
)

// maxRun returns the longest run of worked open days in the month; closed days break a run
func maxRun(store *plan.Store, employeeID string, year int, month time.Month) int {
	best, cur := 0, 0
	for _, d := range calendar.MonthDays(year, month) {
		if !IsOpenDay(store, d) || !store.GetStatus(calendar.ISODate(d), employeeID).IsWorking() {
			cur = 0
			continue
		}
		cur++
		best = max(best, cur)
	}
	return best
}

func runMonth(t *testing.T, store *plan.Store, year int, month time.Month) *Result {
	t.Helper()
	result, err := Run(Config{
		Store:    store,
		Registry: store,
		Year:     year,
		Month:    month,
		Logger:   zap.NewNop(),
	})
	require.NoError(t, err)
	return result
}

func TestRun_ThreeEmployeesStayWithinLimits(t *testing.T) {
	store := plan.NewStore([]model.Employee{emp("anna", 2400), emp("ben", 1200), emp("carl", 1200)}, nil, nil)

	result := runMonth(t, store, 2026, time.April)

	assert.Equal(t, 43, result.Filled())
	assert.Equal(t, 21, creditedIn(store, "anna", 2026, time.April))
	assert.Equal(t, 11, creditedIn(store, "ben", 2026, time.April))
	assert.Equal(t, 11, creditedIn(store, "carl", 2026, time.April))

	state := InitPlanState(store, store.Employees(), calendar.YearMonth{Year: 2026, Month: time.April})
	for _, e := range store.Employees() {
		assert.LessOrEqual(t, state.MonthDelta(e), 1, "%s must not exceed target+1", e.ID)
		assert.LessOrEqual(t, maxRun(store, e.ID, 2026, time.April), 4, "%s works more than four days in a row", e.ID)
	}

	// Mondays stay untouched
	for _, d := range calendar.MonthDays(2026, time.April) {
		if calendar.IsMonday(d) {
			assert.Empty(t, workingOn(store, calendar.ISODate(d)))
		}
	}

	assert.Empty(t, workingOn(store, "2026-04-05"))
	assert.Equal(t, []string{"anna", "ben"}, workingOn(store, "2026-04-12"))
	assert.Equal(t, []string{"anna"}, workingOn(store, "2026-04-19"))

	// Three employees cannot fill five weekday slots
	assert.NotEmpty(t, result.Underfilled)
	assert.Equal(t, DayShortfall{Date: "2026-04-01", Required: 5, Working: 3}, result.Underfilled[0])
	assert.Equal(t, 2, result.Underfilled[0].Missing())
}

func TestRun_IsIdempotent(t *testing.T) {
	store := plan.NewStore([]model.Employee{emp("anna", 2400), emp("ben", 1200), emp("carl", 1200)}, nil, nil)

	runMonth(t, store, 2026, time.April)
	before := store.Entries()

	second := runMonth(t, store, 2026, time.April)
	assert.Zero(t, second.Filled())
	assert.Equal(t, before, store.Entries())
}

func TestRun_SundayFairnessFollowsWeeklyTargets(t *testing.T) {
	store := plan.NewStore([]model.Employee{emp("anna", 2400), emp("ben", 1200), emp("carl", 1200)}, nil, nil)
	sundayOnly := []Criterion{NewSundayRotationCriterion(WeightConsecutiveSunday, WeightSundayDeficit, WeightSundayOverTarget)}

	for _, month := range []time.Month{time.January, time.February} {
		_, err := Run(Config{Store: store, Registry: store, Year: 2026, Month: month, Criteria: sundayOnly})
		require.NoError(t, err)
	}

	w := calendar.TwoMonthWindow(2026, time.January)
	assert.Equal(t, 8, ActualSundaysInWindow(store, "anna", w))
	assert.Equal(t, 4, ActualSundaysInWindow(store, "ben", w))
	assert.Equal(t, 4, ActualSundaysInWindow(store, "carl", w))

	assert.Equal(t, []string{"anna", "ben"}, workingOn(store, "2026-01-04"))
	assert.Equal(t, []string{"anna", "carl"}, workingOn(store, "2026-01-11"))
}

func TestRun_ConsecutiveSundaysRotate(t *testing.T) {
	employees := []model.Employee{emp("a", 1200), emp("b", 1200), emp("c", 1200), emp("d", 1200)}
	store := plan.NewStore(employees, []model.PlanEntry{
		{Date: "2026-03-01", EmployeeID: "a", Status: model.StatusBuerger},
		{Date: "2026-03-01", EmployeeID: "b", Status: model.StatusBuerger},
	}, nil)

	result := runMonth(t, store, 2026, time.March)

	assert.Equal(t, 42, result.Filled())
	assert.Equal(t, model.StatusBuerger, store.GetStatus("2026-03-01", "a"))
	assert.Equal(t, []string{"c", "d"}, workingOn(store, "2026-03-08"))
	assert.Equal(t, []string{"a", "b"}, workingOn(store, "2026-03-15"))

	// Saturday after four worked days stays empty
	assert.Equal(t, []string{"a", "b", "c", "d"}, workingOn(store, "2026-03-06"))
	assert.Empty(t, workingOn(store, "2026-03-07"))

	assert.Zero(t, runMonth(t, store, 2026, time.March).Filled())
}

func TestRun_NoEmployees(t *testing.T) {
	store := plan.NewStore(nil, []model.PlanEntry{{Date: "2026-03-03", EmployeeID: "ghost", Status: model.StatusKrank}}, nil)

	result := runMonth(t, store, 2026, time.March)

	assert.True(t, result.NoEmployees)
	assert.Zero(t, result.Filled())
	assert.Equal(t, NoEmployeesSummary, result.Summary())
	assert.Equal(t, []model.PlanEntry{{Date: "2026-03-03", EmployeeID: "ghost", Status: model.StatusKrank}}, store.Entries())
}

func TestRun_FullyStaffedDayIsSkipped(t *testing.T) {
	employees := []model.Employee{emp("a", 2400), emp("b", 2400), emp("c", 2400), emp("d", 2400), emp("e", 2400), emp("f", 2400)}
	var entries []model.PlanEntry
	for _, e := range employees[:5] {
		entries = append(entries, model.PlanEntry{Date: "2026-03-10", EmployeeID: e.ID, Status: model.StatusBuerger})
	}
	store := plan.NewStore(employees, entries, nil)

	result := runMonth(t, store, 2026, time.March)

	for _, a := range result.Assignments {
		assert.NotEqual(t, "2026-03-10", a.Date)
	}
	assert.Equal(t, model.StatusNone, store.GetStatus("2026-03-10", "f"))
}

func TestRun_AllAbsentMonthWritesNothing(t *testing.T) {
	employees := []model.Employee{emp("anna", 2400), emp("ben", 1200)}
	var entries []model.PlanEntry
	for _, d := range calendar.MonthDays(2026, time.June) {
		for _, e := range employees {
			entries = append(entries, model.PlanEntry{Date: calendar.ISODate(d), EmployeeID: e.ID, Status: model.StatusKrank})
		}
	}
	store := plan.NewStore(employees, entries, nil)

	result := runMonth(t, store, 2026, time.June)

	assert.Zero(t, result.Filled())
	assert.Equal(t, entries, store.Entries())
	// June 2026: 30 days, 5 closed Mondays
	assert.Len(t, result.Underfilled, 25)
	for _, u := range result.Underfilled {
		assert.Zero(t, u.Working)
	}
}

func TestRun_NeverOverwritesExistingEntries(t *testing.T) {
	employees := []model.Employee{emp("anna", 2400), emp("ben", 2400), emp("carl", 1200)}
	entries := []model.PlanEntry{
		{Date: "2026-03-03", EmployeeID: "anna", Status: model.StatusUrlaub},
		{Date: "2026-03-04", EmployeeID: "ben", Status: model.StatusAusgl},
		{Date: "2026-03-05", EmployeeID: "carl", Status: model.StatusKrank},
		{Date: "2026-03-08", EmployeeID: "anna", Status: model.StatusBuerger},
	}
	store := plan.NewStore(employees, entries, nil)

	result := runMonth(t, store, 2026, time.March)

	for _, e := range entries {
		assert.Equal(t, e.Status, store.GetStatus(e.Date, e.EmployeeID))
	}
	for _, a := range result.Assignments {
		for _, e := range entries {
			assert.False(t, a.Date == e.Date && a.EmployeeID == e.EmployeeID, "overwrote %s/%s", e.Date, e.EmployeeID)
		}
		assert.Equal(t, model.StatusSchloss, store.GetStatus(a.Date, a.EmployeeID))
	}
}

func TestRun_OpenMondayIsPlanned(t *testing.T) {
	store := plan.NewStore([]model.Employee{emp("anna", 2400), emp("ben", 2400)}, nil, []string{"2026-03-16"})

	result := runMonth(t, store, 2026, time.March)

	assert.NotEmpty(t, workingOn(store, "2026-03-16"))
	assert.Empty(t, workingOn(store, "2026-03-09"))
	for _, a := range result.Assignments {
		d, err := calendar.ParseISO(a.Date)
		require.NoError(t, err)
		assert.True(t, IsOpenDay(store, d), "assigned closed day %s", a.Date)
	}
}

func TestRun_TieBreakByEmployeeID(t *testing.T) {
	store := plan.NewStore([]model.Employee{emp("zoe", 1200), emp("yan", 1200), emp("xia", 1200)}, nil, nil)

	result := runMonth(t, store, 2026, time.February)

	// 1 February 2026 is a Sunday with two slots and three identical candidates
	require.GreaterOrEqual(t, len(result.Assignments), 2)
	assert.Equal(t, Assignment{Date: "2026-02-01", EmployeeID: "xia"}, result.Assignments[0])
	assert.Equal(t, Assignment{Date: "2026-02-01", EmployeeID: "yan"}, result.Assignments[1])
}

func TestRun_IsDeterministic(t *testing.T) {
	build := func() *plan.Store {
		return plan.NewStore([]model.Employee{emp("anna", 2400), emp("ben", 1500), emp("carl", 1200), emp("dora", 900)}, nil, nil)
	}
	first, second := build(), build()

	runMonth(t, first, 2026, time.May)
	runMonth(t, second, 2026, time.May)

	assert.Equal(t, first.Entries(), second.Entries())
}

func TestRun_Errors(t *testing.T) {
	store := plan.NewStore([]model.Employee{emp("anna", 2400)}, nil, nil)

	_, err := Run(Config{Registry: store, Year: 2026, Month: time.March})
	assert.Error(t, err)

	_, err = Run(Config{Store: store, Year: 2026, Month: time.March})
	assert.Error(t, err)

	_, err = Run(Config{Store: store, Registry: store, Year: 2026, Month: 13})
	assert.Error(t, err)
	assert.Empty(t, store.Entries())
}

func TestResult_Summary(t *testing.T) {
	result := &Result{
		Month:       calendar.YearMonth{Year: 2026, Month: time.March},
		Assignments: []Assignment{{Date: "2026-03-03", EmployeeID: "anna"}, {Date: "2026-03-04", EmployeeID: "anna"}},
	}
	assert.Equal(t, "AutoPlan für März 2026 abgeschlossen (nur leere Felder ergänzt, 2 Einträge).", result.Summary())
}

func TestRun_CustomLimits(t *testing.T) {
	store := plan.NewStore([]model.Employee{emp("anna", 1200), emp("ben", 1200)}, nil, nil)
	limits := Limits{}

	_, err := Run(Config{Store: store, Registry: store, Year: 2026, Month: time.April, Limits: &limits})
	require.NoError(t, err)

	// Without caps every open weekday is staffed by both
	assert.Equal(t, []string{"anna", "ben"}, workingOn(store, "2026-04-30"))
}
