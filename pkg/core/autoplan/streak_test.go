package autoplan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/dienstplan/pkg/core/model"
	"github.com/jakechorley/dienstplan/pkg/core/plan"
)

func TestConsecutiveWorkDaysBefore(t *testing.T) {
	store := plan.NewStore(nil, nil, nil)
	work(store, "anna", model.StatusSchloss, "2026-03-04", "2026-03-05")
	work(store, "anna", model.StatusBuerger, "2026-03-06")

	assert.Equal(t, 3, ConsecutiveWorkDaysBefore(store, "anna", day(2026, time.March, 7)))
	assert.Equal(t, 1, ConsecutiveWorkDaysBefore(store, "anna", day(2026, time.March, 5)))
	assert.Equal(t, 0, ConsecutiveWorkDaysBefore(store, "anna", day(2026, time.March, 4)))
	assert.Equal(t, 0, ConsecutiveWorkDaysBefore(store, "ben", day(2026, time.March, 7)))
}

func TestConsecutiveWorkDaysBefore_LeaveBreaksStreak(t *testing.T) {
	store := plan.NewStore(nil, nil, nil)
	work(store, "anna", model.StatusSchloss, "2026-03-04", "2026-03-06")
	work(store, "anna", model.StatusUrlaub, "2026-03-05")

	assert.Equal(t, 1, ConsecutiveWorkDaysBefore(store, "anna", day(2026, time.March, 7)))
}

func TestConsecutiveWorkDaysBefore_ClosedMondayStopsScan(t *testing.T) {
	store := plan.NewStore(nil, nil, nil)
	work(store, "anna", model.StatusSchloss, "2026-03-07", "2026-03-08")

	// Monday 9 March is closed, so Tuesday starts fresh
	assert.Equal(t, 0, ConsecutiveWorkDaysBefore(store, "anna", day(2026, time.March, 10)))

	// Once the Monday is open and worked the run continues through it
	store.OpenMonday("2026-03-09")
	work(store, "anna", model.StatusSchloss, "2026-03-09")
	assert.Equal(t, 3, ConsecutiveWorkDaysBefore(store, "anna", day(2026, time.March, 10)))
}

func TestConsecutiveWorkDaysBefore_CappedAtLookback(t *testing.T) {
	store := plan.NewStore(nil, nil, []string{"2026-03-02", "2026-03-09", "2026-03-16"})
	for d := 1; d <= 20; d++ {
		store.SetStatus(day(2026, time.March, d).Format("2006-01-02"), "anna", model.StatusSchloss)
	}

	assert.Equal(t, MaxStreakLookback, ConsecutiveWorkDaysBefore(store, "anna", day(2026, time.March, 21)))
}

func TestWeekWorkCount(t *testing.T) {
	store := plan.NewStore(nil, nil, nil)
	// Week Mon 9 - Sun 15 March 2026
	work(store, "anna", model.StatusSchloss, "2026-03-10", "2026-03-12")
	work(store, "anna", model.StatusBuerger, "2026-03-15")
	work(store, "anna", model.StatusKrank, "2026-03-13")
	// Previous and next week
	work(store, "anna", model.StatusSchloss, "2026-03-08", "2026-03-17")

	assert.Equal(t, 3, WeekWorkCount(store, "anna", day(2026, time.March, 11)))
	assert.Equal(t, 3, WeekWorkCount(store, "anna", day(2026, time.March, 15)))
	assert.Equal(t, 1, WeekWorkCount(store, "anna", day(2026, time.March, 8)))
}

func TestWeekWorkCount_YearBoundary(t *testing.T) {
	store := plan.NewStore(nil, nil, nil)
	// Week Mon 29 Dec 2025 - Sun 4 Jan 2026 is ISO week 1 of 2026
	work(store, "anna", model.StatusSchloss, "2025-12-30", "2025-12-31", "2026-01-02", "2026-01-04")

	assert.Equal(t, 4, WeekWorkCount(store, "anna", day(2026, time.January, 3)))
	assert.Equal(t, 4, WeekWorkCount(store, "anna", day(2025, time.December, 30)))
}

func TestHasWorkedSundaySameAndPreviousWeek(t *testing.T) {
	store := plan.NewStore(nil, nil, nil)
	work(store, "anna", model.StatusSchloss, "2026-03-08")
	work(store, "ben", model.StatusSchloss, "2026-03-15")

	tuesday := day(2026, time.March, 10)
	sunday := day(2026, time.March, 15)

	assert.False(t, HasWorkedSundaySameWeek(store, "anna", tuesday))
	assert.True(t, HasWorkedSundaySameWeek(store, "ben", tuesday))

	assert.True(t, HasWorkedSundayPreviousWeek(store, "anna", sunday))
	assert.True(t, HasWorkedSundayPreviousWeek(store, "anna", tuesday))
	assert.False(t, HasWorkedSundayPreviousWeek(store, "ben", sunday))
}
