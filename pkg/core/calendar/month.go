package calendar

import (
	"fmt"
	"time"
)

// YearMonth identifies a calendar month
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth validates the month number (1-12)
func NewYearMonth(year, month int) (YearMonth, error) {
	if month < 1 || month > 12 {
		return YearMonth{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	return YearMonth{Year: year, Month: time.Month(month)}, nil
}

// Next returns the following month
func (ym YearMonth) Next() YearMonth {
	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// Prev returns the preceding month
func (ym YearMonth) Prev() YearMonth {
	if ym.Month == time.January {
		return YearMonth{Year: ym.Year - 1, Month: time.December}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

// Days returns every day of the month
func (ym YearMonth) Days() []time.Time {
	return MonthDays(ym.Year, ym.Month)
}

// Contains reports whether t falls in the month
func (ym YearMonth) Contains(t time.Time) bool {
	return t.Year() == ym.Year && t.Month() == ym.Month
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Window is the two-month pairing used for Sunday fairness
type Window [2]YearMonth

// TwoMonthWindow pairs odd months with the following month and even months
// with the preceding one, so every month belongs to exactly one window
func TwoMonthWindow(year int, month time.Month) Window {
	ym := YearMonth{Year: year, Month: month}
	if int(month)%2 == 1 {
		return Window{ym, ym.Next()}
	}
	return Window{ym.Prev(), ym}
}

// Start returns the first day of the window
func (w Window) Start() time.Time {
	return FirstOfMonth(w[0].Year, w[0].Month)
}

// End returns the last day of the window
func (w Window) End() time.Time {
	return LastOfMonth(w[1].Year, w[1].Month)
}

var germanMonths = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// MonthName returns the German month label, e.g. "März 2026"
func MonthName(year int, month time.Month) string {
	if month < time.January || month > time.December {
		return fmt.Sprintf("%d/%d", int(month), year)
	}
	return fmt.Sprintf("%s %d", germanMonths[month-1], year)
}

var germanWeekdays = [...]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}

// WeekdayShort returns the German two-letter weekday abbreviation
func WeekdayShort(t time.Time) string {
	return germanWeekdays[t.Weekday()]
}
