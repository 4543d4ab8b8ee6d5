package db

import "time"

// Employee represents a database employee record
type Employee struct {
	ID            string `json:"id" validate:"required,max=32"`
	Name          string `json:"name" validate:"required"`
	WeeklyMinutes int    `json:"weekly_minutes" validate:"min=0,max=3600"`
}

// DayEntry represents one employee's status on one day
type DayEntry struct {
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	EmployeeID string `json:"employee_id" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=SCHLOSS BUERGER KRANK URLAUB AUSGL"`
}

// AutoPlanRun records one AutoPlan execution
type AutoPlanRun struct {
	ID          string    `json:"id" validate:"required,uuid"`
	Year        int       `json:"year" validate:"min=1"`
	Month       int       `json:"month" validate:"min=1,max=12"`
	Filled      int       `json:"filled" validate:"min=0"`
	Underfilled int       `json:"underfilled" validate:"min=0"`
	CreatedAt   time.Time `json:"created_at"`
}

// StatusCell is the value stored per employee in Document.Plan.DayEntries
type StatusCell struct {
	Status string `json:"status"`
}

// PlanDocument holds the plan part of a Document
type PlanDocument struct {
	// DayEntries maps ISO date -> employee id -> status
	DayEntries map[string]map[string]StatusCell `json:"day_entries"`
	MondayOpen []string                         `json:"monday_open"`
}

// Document is the whole data set in its export format
type Document struct {
	Employees    []Employee    `json:"employees" validate:"required,dive"`
	Plan         *PlanDocument `json:"plan" validate:"required"`
	AutoPlanRuns []AutoPlanRun `json:"autoplan_runs,omitempty" validate:"dive"`
}

// NewDocument returns an empty document
func NewDocument() *Document {
	return &Document{
		Employees: []Employee{},
		Plan: &PlanDocument{
			DayEntries: map[string]map[string]StatusCell{},
			MondayOpen: []string{},
		},
	}
}

// Entries flattens the document's day entries, ordered by date then employee id
func (d *Document) Entries() []DayEntry {
	var entries []DayEntry
	for date, day := range d.Plan.DayEntries {
		for employeeID, cell := range day {
			if cell.Status == "" || cell.Status == "NONE" {
				continue
			}
			entries = append(entries, DayEntry{Date: date, EmployeeID: employeeID, Status: cell.Status})
		}
	}
	sortEntries(entries)
	return entries
}
