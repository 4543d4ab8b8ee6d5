package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/internal/config"
	"github.com/jakechorley/dienstplan/pkg/core/autoplan"
	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/model"
)

// MonthPlanHint is the second line of the text listing
const MonthPlanHint = "Hinweis: Diese Ansicht zeigt nur die eingeteilten Dienste (S/B) als Tagesliste."

// PlanWorker is one working employee on a day
type PlanWorker struct {
	EmployeeID string
	Name       string
	Status     model.DayStatus
}

// Label returns "Name (S)" or "Name (B)"
func (w PlanWorker) Label() string {
	return fmt.Sprintf("%s (%s)", w.Name, w.Status.Short())
}

// MonthPlanRow is one day of the month plan
type MonthPlanRow struct {
	Date   time.Time
	Closed bool

	// Workers in registry order
	Workers []PlanWorker
}

// DateLabel returns "TT.MM.JJJJ (Wd)"
func (r MonthPlanRow) DateLabel() string {
	return fmt.Sprintf("%s (%s)", calendar.FormatGerman(r.Date), calendar.WeekdayShort(r.Date))
}

// Staffing returns "geschlossen", the comma separated worker labels, or "—" when nobody works
func (r MonthPlanRow) Staffing() string {
	if r.Closed {
		return "geschlossen"
	}
	if len(r.Workers) == 0 {
		return "—"
	}
	labels := make([]string, len(r.Workers))
	for i, w := range r.Workers {
		labels[i] = w.Label()
	}
	return strings.Join(labels, ", ")
}

// MonthPlan lists the working employees of every day in a month
type MonthPlan struct {
	Month calendar.YearMonth
	Rows  []MonthPlanRow
}

// Title returns the German month label, e.g. "März 2026"
func (p *MonthPlan) Title() string {
	return calendar.MonthName(p.Month.Year, p.Month.Month)
}

// Text renders the plan as the plain-text day list
func (p *MonthPlan) Text() string {
	lines := make([]string, 0, len(p.Rows)+3)
	lines = append(lines, "Monat: "+p.Title(), MonthPlanHint, "")
	for _, row := range p.Rows {
		lines = append(lines, fmt.Sprintf("%s: %s", row.DateLabel(), row.Staffing()))
	}
	return strings.Join(lines, "\n")
}

// BuildMonthPlan loads the month and lists the working employees per day
func BuildMonthPlan(
	ctx context.Context,
	database PlanReader,
	cfg *config.Config,
	logger *zap.Logger,
	year int,
	month int,
) (*MonthPlan, error) {
	ym, err := calendar.NewYearMonth(year, month)
	if err != nil {
		return nil, err
	}

	store, err := loadMonthPlan(ctx, database, cfg, logger, ym)
	if err != nil {
		return nil, err
	}

	rows := make([]MonthPlanRow, 0, calendar.DaysInMonth(ym.Year, ym.Month))
	for _, day := range ym.Days() {
		row := MonthPlanRow{Date: day}
		if !autoplan.IsOpenDay(store, day) {
			row.Closed = true
			rows = append(rows, row)
			continue
		}

		date := calendar.ISODate(day)
		for _, employee := range store.Employees() {
			status := store.GetStatus(date, employee.ID)
			if !status.IsWorking() {
				continue
			}
			row.Workers = append(row.Workers, PlanWorker{
				EmployeeID: employee.ID,
				Name:       employee.Name,
				Status:     status,
			})
		}
		rows = append(rows, row)
	}

	logger.Debug("Built month plan", zap.String("month", ym.String()), zap.Int("days", len(rows)))
	return &MonthPlan{Month: ym, Rows: rows}, nil
}
