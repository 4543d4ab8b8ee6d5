package services

import (
	"context"
	"slices"
	"strings"

	"github.com/jakechorley/dienstplan/pkg/clients/sheetsclient"
	"github.com/jakechorley/dienstplan/pkg/db"
)

// mockStore is an in-memory stand-in for db.Database covering the
// operations the services use. Set the *Err fields to inject failures.
type mockStore struct {
	employees []db.Employee
	entries   []db.DayEntry
	mondays   []string
	runs      []db.AutoPlanRun
	document  *db.Document

	upserted       [][]db.DayEntry
	deleted        []string
	replaced       *db.Document
	insertedMonday []string
	deletedMonday  []string

	getEmployeesErr error
	upsertErr       error
	updateHoursErr  error
	deleteEmpErr    error
	insertRunErr    error
}

func (m *mockStore) GetEmployees(ctx context.Context) ([]db.Employee, error) {
	if m.getEmployeesErr != nil {
		return nil, m.getEmployeesErr
	}
	return slices.Clone(m.employees), nil
}

func (m *mockStore) InsertEmployee(ctx context.Context, employee *db.Employee) error {
	m.employees = append(m.employees, *employee)
	return nil
}

func (m *mockStore) UpdateEmployeeHours(ctx context.Context, id string, weeklyMinutes int) error {
	if m.updateHoursErr != nil {
		return m.updateHoursErr
	}
	for i := range m.employees {
		if m.employees[i].ID == id {
			m.employees[i].WeeklyMinutes = weeklyMinutes
			return nil
		}
	}
	return db.ErrNotFound
}

func (m *mockStore) DeleteEmployee(ctx context.Context, id string) error {
	if m.deleteEmpErr != nil {
		return m.deleteEmpErr
	}
	before := len(m.employees)
	m.employees = slices.DeleteFunc(m.employees, func(e db.Employee) bool { return e.ID == id })
	if len(m.employees) == before {
		return db.ErrNotFound
	}
	m.entries = slices.DeleteFunc(m.entries, func(e db.DayEntry) bool { return e.EmployeeID == id })
	return nil
}

func (m *mockStore) GetDayEntries(ctx context.Context, from, to string) ([]db.DayEntry, error) {
	var result []db.DayEntry
	for _, e := range m.entries {
		if e.Date >= from && e.Date <= to {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockStore) UpsertDayEntries(ctx context.Context, entries []db.DayEntry) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, slices.Clone(entries))
	for _, e := range entries {
		i := slices.IndexFunc(m.entries, func(x db.DayEntry) bool {
			return x.Date == e.Date && x.EmployeeID == e.EmployeeID
		})
		if i >= 0 {
			m.entries[i] = e
		} else {
			m.entries = append(m.entries, e)
		}
	}
	return nil
}

func (m *mockStore) DeleteDayEntry(ctx context.Context, date, employeeID string) error {
	m.deleted = append(m.deleted, date+"/"+employeeID)
	m.entries = slices.DeleteFunc(m.entries, func(e db.DayEntry) bool {
		return e.Date == date && e.EmployeeID == employeeID
	})
	return nil
}

func (m *mockStore) GetMondayOpenings(ctx context.Context, from, to string) ([]string, error) {
	var result []string
	for _, d := range m.mondays {
		if d >= from && d <= to {
			result = append(result, d)
		}
	}
	slices.Sort(result)
	return result, nil
}

func (m *mockStore) InsertMondayOpening(ctx context.Context, date string) error {
	m.insertedMonday = append(m.insertedMonday, date)
	if !slices.Contains(m.mondays, date) {
		m.mondays = append(m.mondays, date)
	}
	return nil
}

func (m *mockStore) DeleteMondayOpening(ctx context.Context, date string) error {
	m.deletedMonday = append(m.deletedMonday, date)
	m.mondays = slices.DeleteFunc(m.mondays, func(d string) bool { return d == date })
	return nil
}

func (m *mockStore) GetAutoPlanRuns(ctx context.Context) ([]db.AutoPlanRun, error) {
	return m.runs, nil
}

func (m *mockStore) InsertAutoPlanRun(ctx context.Context, run *db.AutoPlanRun) error {
	if m.insertRunErr != nil {
		return m.insertRunErr
	}
	m.runs = append(m.runs, *run)
	return nil
}

func (m *mockStore) ExportDocument(ctx context.Context) (*db.Document, error) {
	return m.document, nil
}

func (m *mockStore) ReplaceDocument(ctx context.Context, doc *db.Document) error {
	m.replaced = doc
	return nil
}

// entry returns the stored status for a day, "" when absent
func (m *mockStore) entry(date, employeeID string) string {
	for _, e := range m.entries {
		if e.Date == date && e.EmployeeID == employeeID {
			return e.Status
		}
	}
	return ""
}

// mockSheetsClient records published plans
type mockSheetsClient struct {
	spreadsheetID string
	published     *sheetsclient.PublishedPlan
	err           error
}

func (m *mockSheetsClient) PublishPlan(spreadsheetID string, plan *sheetsclient.PublishedPlan) error {
	if m.err != nil {
		return m.err
	}
	m.spreadsheetID = spreadsheetID
	m.published = plan
	return nil
}

type sentEmail struct {
	to, subject, body string
}

// mockEmailClient records sent emails and fails for recipients containing failFor
type mockEmailClient struct {
	sent    []sentEmail
	failFor string
	err     error
}

func (m *mockEmailClient) SendEmail(to, subject, body string) error {
	if m.failFor != "" && strings.Contains(to, m.failFor) {
		return m.err
	}
	m.sent = append(m.sent, sentEmail{to: to, subject: subject, body: body})
	return nil
}
