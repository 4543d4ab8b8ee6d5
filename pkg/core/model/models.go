package model

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// ShiftMinutes is the length of one shift (7h30)
const ShiftMinutes = 7*60 + 30

// DayStatus is the status of one employee on one day
type DayStatus string

const (
	StatusNone    DayStatus = "NONE"
	StatusSchloss DayStatus = "SCHLOSS"
	StatusBuerger DayStatus = "BUERGER"
	StatusKrank   DayStatus = "KRANK"
	StatusUrlaub  DayStatus = "URLAUB"
	StatusAusgl   DayStatus = "AUSGL"
)

// AllStatuses lists every known status, NONE first
var AllStatuses = []DayStatus{
	StatusNone,
	StatusSchloss,
	StatusBuerger,
	StatusKrank,
	StatusUrlaub,
	StatusAusgl,
}

func (s DayStatus) IsValid() bool {
	switch s {
	case StatusNone, StatusSchloss, StatusBuerger, StatusKrank, StatusUrlaub, StatusAusgl:
		return true
	}
	return false
}

// IsWorking reports whether the status counts toward duty, streaks and Sunday counts
func (s DayStatus) IsWorking() bool {
	return s == StatusSchloss || s == StatusBuerger
}

// IsCredited reports whether the status counts toward the monthly target.
// Leave-equivalent statuses are credited like a worked shift.
func (s DayStatus) IsCredited() bool {
	return s.IsWorking() || s == StatusKrank || s == StatusUrlaub || s == StatusAusgl
}

// Short returns the one-letter marker used in plan listings
func (s DayStatus) Short() string {
	switch s {
	case StatusSchloss:
		return "S"
	case StatusBuerger:
		return "B"
	case StatusKrank:
		return "K"
	case StatusUrlaub:
		return "U"
	case StatusAusgl:
		return "A"
	}
	return ""
}

// ParseDayStatus parses a status name case-insensitively.
// An empty string is treated as NONE.
func ParseDayStatus(s string) (DayStatus, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(s))
	if trimmed == "" {
		return StatusNone, nil
	}
	status := DayStatus(trimmed)
	if !status.IsValid() {
		return StatusNone, fmt.Errorf("unknown day status %q", s)
	}
	return status, nil
}

// Employee represents a staff member in the registry
type Employee struct {
	ID                  string
	Name                string
	WeeklyTargetMinutes int
}

// TargetShiftsPerWeek returns the weekly target expressed in whole shifts
func (e Employee) TargetShiftsPerWeek() int {
	return RoundDiv(e.WeeklyTargetMinutes, ShiftMinutes)
}

// PlanEntry is one (date, employee) status record
type PlanEntry struct {
	Date       string
	EmployeeID string
	Status     DayStatus
}

const (
	maxIDLength   = 24
	defaultIDBase = "mitarbeiter"
)

var (
	idDisallowed = regexp.MustCompile(`[^a-z0-9 _-]`)
	idWhitespace = regexp.MustCompile(`\s+`)
)

// MakeEmployeeID derives a stable id from a display name.
// taken reports whether an id is already used; collisions get a numeric suffix starting at 2.
func MakeEmployeeID(name string, taken func(id string) bool) string {
	base := strings.ToLower(name)
	base = idDisallowed.ReplaceAllString(base, "")
	base = strings.TrimSpace(base)
	base = idWhitespace.ReplaceAllString(base, "_")
	if base == "" {
		base = defaultIDBase
	}
	if len(base) > maxIDLength {
		base = base[:maxIDLength]
	}

	id := base
	for i := 2; taken != nil && taken(id); i++ {
		id = fmt.Sprintf("%s%d", base, i)
	}
	return id
}

// RoundDiv divides and rounds half away from zero
func RoundDiv(numerator, denominator int) int {
	if denominator == 0 {
		return 0
	}
	return int(math.Round(float64(numerator) / float64(denominator)))
}
