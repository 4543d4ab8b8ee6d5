package db

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jakechorley/dienstplan/pkg/core/model"
)

var validate = validator.New()

// ValidateDocument checks an imported document: field constraints, unique
// employee ids, ISO dates, known statuses, entries referencing known employees
// and Monday openings falling on Mondays. Status strings are normalised to
// upper case and NONE cells are dropped.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("document is empty")
	}
	if err := validate.Struct(doc); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	ids := make(map[string]bool, len(doc.Employees))
	for _, e := range doc.Employees {
		if ids[e.ID] {
			return fmt.Errorf("duplicate employee id %q", e.ID)
		}
		ids[e.ID] = true
	}

	if doc.Plan.DayEntries == nil {
		doc.Plan.DayEntries = map[string]map[string]StatusCell{}
	}
	if doc.Plan.MondayOpen == nil {
		doc.Plan.MondayOpen = []string{}
	}

	for date, day := range doc.Plan.DayEntries {
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			return fmt.Errorf("invalid plan date %q: %w", date, err)
		}
		for employeeID, cell := range day {
			if !ids[employeeID] {
				return fmt.Errorf("plan entry on %s references unknown employee %q", date, employeeID)
			}
			status, err := model.ParseDayStatus(cell.Status)
			if err != nil {
				return fmt.Errorf("plan entry on %s for %s: %w", date, employeeID, err)
			}
			if status == model.StatusNone {
				delete(day, employeeID)
				continue
			}
			day[employeeID] = StatusCell{Status: string(status)}
		}
		if len(day) == 0 {
			delete(doc.Plan.DayEntries, date)
		}
	}

	seen := make(map[string]bool, len(doc.Plan.MondayOpen))
	mondays := make([]string, 0, len(doc.Plan.MondayOpen))
	for _, date := range doc.Plan.MondayOpen {
		t, err := time.Parse(time.DateOnly, date)
		if err != nil {
			return fmt.Errorf("invalid open Monday %q: %w", date, err)
		}
		if t.Weekday() != time.Monday {
			return fmt.Errorf("open Monday %s is a %s", date, t.Weekday())
		}
		if !seen[date] {
			seen[date] = true
			mondays = append(mondays, date)
		}
	}
	sort.Strings(mondays)
	doc.Plan.MondayOpen = mondays

	return nil
}

// ValidateDayEntry checks a single entry before it is written
func ValidateDayEntry(entry DayEntry) error {
	if err := validate.Struct(entry); err != nil {
		return fmt.Errorf("invalid day entry %s/%s: %w", entry.Date, entry.EmployeeID, err)
	}
	return nil
}

func sortEntries(entries []DayEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return strings.Compare(entries[i].EmployeeID, entries[j].EmployeeID) < 0
	})
}
