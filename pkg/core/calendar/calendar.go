// Package calendar holds the date helpers used by the planner.
// All dates are civil dates represented as midnight UTC.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ISOLayout is the canonical date serialization used for plan lookups
const ISOLayout = "2006-01-02"

var germanDate = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`)

// Date returns the civil date for the given components
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize strips the time of day and location from t
func Normalize(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// ISODate formats t as YYYY-MM-DD
func ISODate(t time.Time) string {
	return t.Format(ISOLayout)
}

// ParseISO parses a YYYY-MM-DD date
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseGerman parses a TT.MM.JJJJ date, rejecting dates that do not exist
func ParseGerman(s string) (time.Time, error) {
	m := germanDate.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected TT.MM.JJJJ", s)
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	d := Date(year, time.Month(month), day)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date %q: day does not exist", s)
	}
	return d, nil
}

// FormatGerman formats t as TT.MM.JJJJ
func FormatGerman(t time.Time) string {
	return t.Format("02.01.2006")
}

// DaysInMonth returns the number of days in the month
func DaysInMonth(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// MonthDays returns every day of the month in chronological order
func MonthDays(year int, month time.Month) []time.Time {
	n := DaysInMonth(year, month)
	days := make([]time.Time, 0, n)
	for day := 1; day <= n; day++ {
		days = append(days, Date(year, month, day))
	}
	return days
}

// FirstOfMonth returns the first day of the month
func FirstOfMonth(year int, month time.Month) time.Time {
	return Date(year, month, 1)
}

// LastOfMonth returns the last day of the month
func LastOfMonth(year int, month time.Month) time.Time {
	return Date(year, month+1, 0)
}

func IsSunday(t time.Time) bool  { return t.Weekday() == time.Sunday }
func IsMonday(t time.Time) bool  { return t.Weekday() == time.Monday }
func IsTuesday(t time.Time) bool { return t.Weekday() == time.Tuesday }

// WeekKey identifies an ISO 8601 week (Thursday-anchored) so that
// weeks spanning a year boundary compare equal
type WeekKey struct {
	Year int
	Week int
}

func (k WeekKey) String() string {
	return fmt.Sprintf("%d-%02d", k.Year, k.Week)
}

// ISOWeekKey returns the ISO week containing t
func ISOWeekKey(t time.Time) WeekKey {
	year, week := t.ISOWeek()
	return WeekKey{Year: year, Week: week}
}

// mondayOffset returns the number of days since the Monday of t's week (Mon=0..Sun=6)
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekMonday returns the Monday of the Monday-Sunday week containing t
func WeekMonday(t time.Time) time.Time {
	return Normalize(t).AddDate(0, 0, -mondayOffset(t))
}

// WeekSunday returns the Sunday of the Monday-Sunday week containing t
func WeekSunday(t time.Time) time.Time {
	return Normalize(t).AddDate(0, 0, 6-mondayOffset(t))
}

// WeekDays returns the seven days of the Monday-Sunday week containing t
func WeekDays(t time.Time) []time.Time {
	start := WeekMonday(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// SundaysInMonth counts the Sundays in the month
func SundaysInMonth(year int, month time.Month) int {
	count := 0
	for _, d := range MonthDays(year, month) {
		if IsSunday(d) {
			count++
		}
	}
	return count
}

// MondaysInMonth counts the Mondays in the month
func MondaysInMonth(year int, month time.Month) int {
	count := 0
	for _, d := range MonthDays(year, month) {
		if IsMonday(d) {
			count++
		}
	}
	return count
}
