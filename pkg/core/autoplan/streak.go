package autoplan

import (
	"time"

	"github.com/jakechorley/dienstplan/pkg/core/calendar"
)

// MaxStreakLookback bounds the backward scan in ConsecutiveWorkDaysBefore.
// The scorer only distinguishes streaks up to 4, so 10 is ample.
const MaxStreakLookback = 10

// workedOn reports whether the employee has a working status on the day
func workedOn(store StatusReader, employeeID string, day time.Time) bool {
	return store.GetStatus(calendar.ISODate(day), employeeID).IsWorking()
}

// ConsecutiveWorkDaysBefore walks back from the day before `day`, counting worked
// open days. It stops at the first closed day, the first open day not worked,
// or after MaxStreakLookback days.
func ConsecutiveWorkDaysBefore(store PlanStore, employeeID string, day time.Time) int {
	count := 0
	cur := calendar.Normalize(day).AddDate(0, 0, -1)
	for count < MaxStreakLookback {
		if !IsOpenDay(store, cur) {
			break
		}
		if !workedOn(store, employeeID, cur) {
			break
		}
		count++
		cur = cur.AddDate(0, 0, -1)
	}
	return count
}

// WeekWorkCount counts worked days in the Monday-Sunday week containing day,
// restricted to days sharing day's ISO week
func WeekWorkCount(store StatusReader, employeeID string, day time.Time) int {
	key := calendar.ISOWeekKey(day)
	count := 0
	for _, d := range calendar.WeekDays(day) {
		if calendar.ISOWeekKey(d) != key {
			continue
		}
		if workedOn(store, employeeID, d) {
			count++
		}
	}
	return count
}

// HasWorkedSundaySameWeek looks up the Sunday closing day's Monday-Sunday week
func HasWorkedSundaySameWeek(store StatusReader, employeeID string, day time.Time) bool {
	return workedOn(store, employeeID, calendar.WeekSunday(day))
}

// HasWorkedSundayPreviousWeek looks up the Sunday of the preceding Monday-Sunday week
func HasWorkedSundayPreviousWeek(store StatusReader, employeeID string, day time.Time) bool {
	return workedOn(store, employeeID, calendar.WeekSunday(day).AddDate(0, 0, -7))
}
