// Package plan holds the in-memory plan that the planner reads and mutates.
// It is loaded from a db.Database for the date range a run needs and
// written back by the services layer.
package plan

import (
	"slices"
	"sort"

	"github.com/jakechorley/dienstplan/pkg/core/model"
)

// Store is an in-memory plan: per-day, per-employee statuses plus the set of
// exceptionally opened Mondays. The zero value is not usable; use NewStore.
type Store struct {
	employees  []model.Employee
	dayEntries map[string]map[string]model.DayStatus
	mondayOpen map[string]bool
}

// NewStore builds a store from an employee list, plan entries and open Mondays.
// Entries with status NONE are dropped; later entries for the same key win.
func NewStore(employees []model.Employee, entries []model.PlanEntry, mondayOpen []string) *Store {
	s := &Store{
		employees:  slices.Clone(employees),
		dayEntries: make(map[string]map[string]model.DayStatus),
		mondayOpen: make(map[string]bool),
	}
	for _, e := range entries {
		s.SetStatus(e.Date, e.EmployeeID, e.Status)
	}
	for _, d := range mondayOpen {
		s.mondayOpen[d] = true
	}
	return s
}

// Employees returns the registry in its stored order
func (s *Store) Employees() []model.Employee {
	return s.employees
}

// Employee looks up an employee by id
func (s *Store) Employee(id string) (model.Employee, bool) {
	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return model.Employee{}, false
}

// GetStatus returns the status for the day, NONE when absent
func (s *Store) GetStatus(date string, employeeID string) model.DayStatus {
	if day, ok := s.dayEntries[date]; ok {
		if status, ok := day[employeeID]; ok {
			return status
		}
	}
	return model.StatusNone
}

// SetStatus upserts a status. Setting NONE clears the entry.
func (s *Store) SetStatus(date string, employeeID string, status model.DayStatus) {
	if status == model.StatusNone {
		s.ClearStatus(date, employeeID)
		return
	}
	day, ok := s.dayEntries[date]
	if !ok {
		day = make(map[string]model.DayStatus)
		s.dayEntries[date] = day
	}
	day[employeeID] = status
}

// ClearStatus removes the entry, dropping the day when it becomes empty
func (s *Store) ClearStatus(date string, employeeID string) {
	day, ok := s.dayEntries[date]
	if !ok {
		return
	}
	delete(day, employeeID)
	if len(day) == 0 {
		delete(s.dayEntries, date)
	}
}

// IsMondayOpen reports whether the date is in the open-Monday set
func (s *Store) IsMondayOpen(date string) bool {
	return s.mondayOpen[date]
}

// OpenMonday adds a date to the open-Monday set
func (s *Store) OpenMonday(date string) {
	s.mondayOpen[date] = true
}

// CloseMonday removes a date from the open-Monday set
func (s *Store) CloseMonday(date string) {
	delete(s.mondayOpen, date)
}

// MondayOpenDates returns the open Mondays in ascending order
func (s *Store) MondayOpenDates() []string {
	dates := make([]string, 0, len(s.mondayOpen))
	for d := range s.mondayOpen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Entries returns every non-NONE entry ordered by date then employee id
func (s *Store) Entries() []model.PlanEntry {
	var entries []model.PlanEntry
	for date, day := range s.dayEntries {
		for employeeID, status := range day {
			entries = append(entries, model.PlanEntry{Date: date, EmployeeID: employeeID, Status: status})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].EmployeeID < entries[j].EmployeeID
	})
	return entries
}
