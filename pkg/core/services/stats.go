package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/internal/config"
	"github.com/jakechorley/dienstplan/pkg/core/autoplan"
	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/model"
)

// TrafficLight classifies how far an employee is from their monthly target
type TrafficLight string

const (
	TrafficLightGreen  TrafficLight = "green"
	TrafficLightYellow TrafficLight = "yellow"
	TrafficLightRed    TrafficLight = "red"
)

// ClassifyDiff is green within one shift of the target, yellow within two, red beyond
func ClassifyDiff(diffMinutes int) TrafficLight {
	if diffMinutes < 0 {
		diffMinutes = -diffMinutes
	}
	switch {
	case diffMinutes <= model.ShiftMinutes:
		return TrafficLightGreen
	case diffMinutes <= 2*model.ShiftMinutes:
		return TrafficLightYellow
	default:
		return TrafficLightRed
	}
}

// FormatMinutes formats minutes as [-]H:MM
func FormatMinutes(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%d:%02d", sign, minutes/60, minutes%60)
}

// EmployeeMonthStats is one employee's month in minutes
type EmployeeMonthStats struct {
	EmployeeID string
	Name       string

	// TargetMinutes is the prorated monthly target (Soll)
	TargetMinutes int

	// CreditedMinutes is credited days times the shift length (Ist)
	CreditedMinutes int

	// DiffMinutes is CreditedMinutes - TargetMinutes
	DiffMinutes int

	// Sundays worked in the month
	Sundays int

	Light TrafficLight
}

// MonthStats computes target, credited time and Sundays for every employee in registry order
func MonthStats(
	ctx context.Context,
	database PlanReader,
	cfg *config.Config,
	logger *zap.Logger,
	year int,
	month int,
) ([]EmployeeMonthStats, error) {
	ym, err := calendar.NewYearMonth(year, month)
	if err != nil {
		return nil, err
	}

	store, err := loadMonthPlan(ctx, database, cfg, logger, ym)
	if err != nil {
		return nil, err
	}

	stats := make([]EmployeeMonthStats, 0, len(store.Employees()))
	for _, employee := range store.Employees() {
		target := autoplan.TargetMinutes(store, employee, ym.Year, ym.Month)
		credited := autoplan.CreditedShiftsInMonth(store, employee.ID, ym.Year, ym.Month) * model.ShiftMinutes

		sundays := 0
		for _, day := range ym.Days() {
			if calendar.IsSunday(day) && store.GetStatus(calendar.ISODate(day), employee.ID).IsWorking() {
				sundays++
			}
		}

		diff := credited - target
		stats = append(stats, EmployeeMonthStats{
			EmployeeID:      employee.ID,
			Name:            employee.Name,
			TargetMinutes:   target,
			CreditedMinutes: credited,
			DiffMinutes:     diff,
			Sundays:         sundays,
			Light:           ClassifyDiff(diff),
		})
	}

	logger.Debug("Computed month stats", zap.String("month", ym.String()), zap.Int("employees", len(stats)))
	return stats, nil
}
