package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/internal/config"
	"github.com/jakechorley/dienstplan/pkg/core/autoplan"
	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/db"
)

func testConfig() *config.Config {
	return &config.Config{
		Storage:  config.StorageFile,
		DataFile: "plan.json",
		Weights:  autoplan.DefaultWeights(),
		Limits:   autoplan.DefaultLimits(),
	}
}

func newAutoPlanStore() *mockStore {
	return &mockStore{employees: []db.Employee{
		{ID: "anna", Name: "Anna", WeeklyMinutes: 2400},
		{ID: "ben", Name: "Ben", WeeklyMinutes: 2400},
		{ID: "carl", Name: "Carl", WeeklyMinutes: 1800},
		{ID: "dora", Name: "Dora", WeeklyMinutes: 1200},
	}}
}

func TestRunAutoPlan_SavesAssignmentsAndRecordsRun(t *testing.T) {
	store := newAutoPlanStore()

	outcome, err := RunAutoPlan(context.Background(), store, testConfig(), zap.NewNop(), 2026, 3, false)
	require.NoError(t, err)
	require.NotNil(t, outcome.Run)

	result := outcome.Result
	assert.False(t, outcome.DryRun)
	assert.Positive(t, result.Filled())

	require.Len(t, store.upserted, 1)
	assert.Len(t, store.upserted[0], result.Filled())
	for _, e := range store.upserted[0] {
		assert.Equal(t, "SCHLOSS", e.Status)
		assert.True(t, strings.HasPrefix(e.Date, "2026-03-"), e.Date)
	}

	require.Len(t, store.runs, 1)
	run := store.runs[0]
	assert.Equal(t, *outcome.Run, run)
	_, err = uuid.Parse(run.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2026, run.Year)
	assert.Equal(t, 3, run.Month)
	assert.Equal(t, result.Filled(), run.Filled)
	assert.Equal(t, len(result.Underfilled), run.Underfilled)
	assert.False(t, run.CreatedAt.IsZero())

	// Closed Mondays stay empty
	for _, monday := range []string{"2026-03-02", "2026-03-09", "2026-03-16", "2026-03-23", "2026-03-30"} {
		for _, e := range store.employees {
			assert.Empty(t, store.entry(monday, e.ID), "%s %s", monday, e.ID)
		}
	}
}

func TestRunAutoPlan_NeverOverwritesEntries(t *testing.T) {
	store := newAutoPlanStore()
	store.entries = []db.DayEntry{
		{Date: "2026-03-03", EmployeeID: "anna", Status: "URLAUB"},
		{Date: "2026-03-04", EmployeeID: "anna", Status: "URLAUB"},
		{Date: "2026-03-05", EmployeeID: "ben", Status: "KRANK"},
	}

	_, err := RunAutoPlan(context.Background(), store, testConfig(), zap.NewNop(), 2026, 3, false)
	require.NoError(t, err)

	assert.Equal(t, "URLAUB", store.entry("2026-03-03", "anna"))
	assert.Equal(t, "URLAUB", store.entry("2026-03-04", "anna"))
	assert.Equal(t, "KRANK", store.entry("2026-03-05", "ben"))
	for _, e := range store.upserted[0] {
		assert.False(t, e.EmployeeID == "anna" && (e.Date == "2026-03-03" || e.Date == "2026-03-04"))
		assert.False(t, e.EmployeeID == "ben" && e.Date == "2026-03-05")
	}
}

func TestRunAutoPlan_DryRun(t *testing.T) {
	store := newAutoPlanStore()

	outcome, err := RunAutoPlan(context.Background(), store, testConfig(), zap.NewNop(), 2026, 3, true)
	require.NoError(t, err)

	assert.True(t, outcome.DryRun)
	assert.Nil(t, outcome.Run)
	assert.Positive(t, outcome.Result.Filled())
	assert.Empty(t, store.upserted)
	assert.Empty(t, store.runs)
	assert.Empty(t, store.entries)
}

func TestRunAutoPlan_NoEmployees(t *testing.T) {
	store := &mockStore{}

	outcome, err := RunAutoPlan(context.Background(), store, testConfig(), zap.NewNop(), 2026, 3, false)
	require.NoError(t, err)

	assert.True(t, outcome.Result.NoEmployees)
	assert.Equal(t, autoplan.NoEmployeesSummary, outcome.Result.Summary())
	assert.Nil(t, outcome.Run)
	assert.Empty(t, store.runs)
}

func TestRunAutoPlan_ConfigRuleOpensMondays(t *testing.T) {
	store := newAutoPlanStore()
	cfg := testConfig()
	cfg.MondayOpenings = []config.MondayOpening{{RRule: "FREQ=MONTHLY;BYDAY=1MO"}}

	_, err := RunAutoPlan(context.Background(), store, cfg, zap.NewNop(), 2026, 3, false)
	require.NoError(t, err)

	working := 0
	for _, e := range store.employees {
		if store.entry("2026-03-02", e.ID) == "SCHLOSS" {
			working++
		}
		assert.Empty(t, store.entry("2026-03-09", e.ID))
	}
	assert.Positive(t, working)
}

func TestRunAutoPlan_SeesPreviousMonthStreak(t *testing.T) {
	store := &mockStore{
		employees: []db.Employee{
			{ID: "anna", Name: "Anna", WeeklyMinutes: 2400},
			{ID: "ben", Name: "Ben", WeeklyMinutes: 2400},
			{ID: "carl", Name: "Carl", WeeklyMinutes: 2400},
		},
		entries: []db.DayEntry{
			{Date: "2026-02-25", EmployeeID: "anna", Status: "SCHLOSS"},
			{Date: "2026-02-26", EmployeeID: "anna", Status: "SCHLOSS"},
			{Date: "2026-02-27", EmployeeID: "anna", Status: "SCHLOSS"},
			{Date: "2026-02-28", EmployeeID: "anna", Status: "SCHLOSS"},
		},
	}

	_, err := RunAutoPlan(context.Background(), store, testConfig(), zap.NewNop(), 2026, 3, false)
	require.NoError(t, err)

	// Four days in a row before March 1st block anna on the Sunday
	assert.Empty(t, store.entry("2026-03-01", "anna"))
	assert.Equal(t, "SCHLOSS", store.entry("2026-03-01", "ben"))
	assert.Equal(t, "SCHLOSS", store.entry("2026-03-01", "carl"))
}

func TestRunAutoPlan_SaveErrorSkipsRunRecord(t *testing.T) {
	store := newAutoPlanStore()
	store.upsertErr = errors.New("disk full")

	_, err := RunAutoPlan(context.Background(), store, testConfig(), zap.NewNop(), 2026, 3, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save assignments")
	assert.Empty(t, store.runs)
}

func TestRunAutoPlan_InvalidMonth(t *testing.T) {
	_, err := RunAutoPlan(context.Background(), newAutoPlanStore(), testConfig(), zap.NewNop(), 2026, 0, false)
	assert.Error(t, err)
}

func TestPlanRange(t *testing.T) {
	tests := []struct {
		year  int
		month int
		from  string
		to    string
	}{
		// Odd month: lookback reaches into the previous window, window runs to April
		{year: 2026, month: 3, from: "2026-02-15", to: "2026-04-30"},
		// Even month: window starts in March, lookahead passes the window end
		{year: 2026, month: 4, from: "2026-03-01", to: "2026-05-07"},
		// Year boundary
		{year: 2026, month: 1, from: "2025-12-18", to: "2026-02-28"},
		{year: 2026, month: 12, from: "2026-11-01", to: "2027-01-07"},
	}

	for _, tt := range tests {
		ym, err := calendar.NewYearMonth(tt.year, tt.month)
		require.NoError(t, err)

		from, to := planRange(ym)
		assert.Equal(t, tt.from, calendar.ISODate(from), ym.String())
		assert.Equal(t, tt.to, calendar.ISODate(to), ym.String())
	}
}
