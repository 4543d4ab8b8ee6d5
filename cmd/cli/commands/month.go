package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/services"
)

var (
	isoMonth    = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	germanMonth = regexp.MustCompile(`^(\d{1,2})\.(\d{4})$`)
)

// parseMonth accepts YYYY-MM or MM.YYYY. An empty string means the month of now.
func parseMonth(s string, now time.Time) (calendar.YearMonth, error) {
	if s == "" {
		return calendar.YearMonth{Year: now.Year(), Month: now.Month()}, nil
	}

	var yearStr, monthStr string
	if m := isoMonth.FindStringSubmatch(s); m != nil {
		yearStr, monthStr = m[1], m[2]
	} else if m := germanMonth.FindStringSubmatch(s); m != nil {
		monthStr, yearStr = m[1], m[2]
	} else {
		return calendar.YearMonth{}, fmt.Errorf("invalid month %q: expected YYYY-MM or MM.YYYY", s)
	}

	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	return calendar.NewYearMonth(year, month)
}

// monthArg parses the optional month argument at index i
func monthArg(args []string, i int) (calendar.YearMonth, error) {
	s := ""
	if len(args) > i {
		s = args[i]
	}
	return parseMonth(s, time.Now())
}

// weeklyMinutesArgs reads "<hours> [minutes]" starting at index i
func weeklyMinutesArgs(args []string, i int) (int, error) {
	hours, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("hours must be a number: %w", err)
	}
	minutes := 0
	if len(args) > i+1 {
		minutes, err = strconv.Atoi(args[i+1])
		if err != nil {
			return 0, fmt.Errorf("minutes must be a number: %w", err)
		}
	}
	return services.WeeklyMinutes(hours, minutes)
}
