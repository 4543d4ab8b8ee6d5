package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/internal/config"
	"github.com/jakechorley/dienstplan/pkg/clients/sheetsclient"
	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/model"
)

// PlanSheetsClient defines the operations needed to publish a plan to Google Sheets
type PlanSheetsClient interface {
	PublishPlan(spreadsheetID string, plan *sheetsclient.PublishedPlan) error
}

// PublishPlan builds the month plan and writes it to the configured spreadsheet
func PublishPlan(
	ctx context.Context,
	database PlanReader,
	sheetsClient PlanSheetsClient,
	cfg *config.Config,
	logger *zap.Logger,
	year int,
	month int,
) (*sheetsclient.PublishedPlan, error) {
	if cfg == nil || !cfg.CanPublish() {
		return nil, fmt.Errorf("%w: planSheetID is not set", ErrNotConfigured)
	}

	monthPlan, err := BuildMonthPlan(ctx, database, cfg, logger, year, month)
	if err != nil {
		return nil, err
	}

	published := toPublishedPlan(monthPlan)

	logger.Debug("Publishing plan",
		zap.String("sheet_id", cfg.PlanSheetID),
		zap.String("tab", sheetsclient.TabTitle(published.Month)))

	if err := sheetsClient.PublishPlan(cfg.PlanSheetID, published); err != nil {
		return nil, fmt.Errorf("failed to publish plan: %w", err)
	}

	logger.Info("Plan published",
		zap.String("month", monthPlan.Month.String()),
		zap.Int("days", len(published.Rows)))

	return published, nil
}

func toPublishedPlan(monthPlan *MonthPlan) *sheetsclient.PublishedPlan {
	rows := make([]sheetsclient.PublishedPlanRow, 0, len(monthPlan.Rows))
	for _, row := range monthPlan.Rows {
		published := sheetsclient.PublishedPlanRow{
			Date:    calendar.FormatGerman(row.Date),
			Weekday: calendar.WeekdayShort(row.Date),
			Closed:  row.Closed,
			Schloss: []string{},
			Buerger: []string{},
		}
		for _, w := range row.Workers {
			if w.Status == model.StatusBuerger {
				published.Buerger = append(published.Buerger, w.Name)
			} else {
				published.Schloss = append(published.Schloss, w.Name)
			}
		}
		rows = append(rows, published)
	}

	return &sheetsclient.PublishedPlan{
		Month: monthPlan.Title(),
		Rows:  rows,
	}
}
