package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/internal/config"
	"github.com/jakechorley/dienstplan/pkg/core/calendar"
)

// Sources of an open Monday
const (
	MondaySourcePlan   = "plan"
	MondaySourceConfig = "config"
)

// MondayReader defines the database read needed to check Monday openings
type MondayReader interface {
	GetMondayOpenings(ctx context.Context, from, to string) ([]string, error)
}

// OpenMondayStore defines the database operations needed to open a Monday
type OpenMondayStore interface {
	InsertMondayOpening(ctx context.Context, date string) error
}

// CloseMondayStore defines the database operations needed to close a Monday
type CloseMondayStore interface {
	GetMondayOpenings(ctx context.Context, from, to string) ([]string, error)
	DeleteMondayOpening(ctx context.Context, date string) error
}

// OpenMondayInfo is one open Monday and where the opening comes from
type OpenMondayInfo struct {
	Date   string
	Source string
}

// isMondayOpen reports whether the Monday is opened in the plan or by a config rule
func isMondayOpen(ctx context.Context, database MondayReader, cfg *config.Config, day time.Time) (bool, error) {
	date := calendar.ISODate(day)
	stored, err := database.GetMondayOpenings(ctx, date, date)
	if err != nil {
		return false, fmt.Errorf("failed to fetch monday openings: %w", err)
	}
	if slices.Contains(stored, date) {
		return true, nil
	}
	if cfg == nil {
		return false, nil
	}
	ruled, err := cfg.OpenMondays(day, day)
	if err != nil {
		return false, fmt.Errorf("failed to expand monday openings: %w", err)
	}
	return slices.Contains(ruled, date), nil
}

// parseMonday parses date and requires it to be a Monday
func parseMonday(date string) (time.Time, string, error) {
	day, err := ParseDate(date)
	if err != nil {
		return time.Time{}, "", err
	}
	iso := calendar.ISODate(day)
	if !calendar.IsMonday(day) {
		return time.Time{}, "", fmt.Errorf("%w: %s is a %s", ErrNotMonday, iso, day.Weekday())
	}
	return day, iso, nil
}

// OpenMonday opens a normally closed Monday. Accepts YYYY-MM-DD or TT.MM.JJJJ
// and returns the ISO date opened.
func OpenMonday(
	ctx context.Context,
	database OpenMondayStore,
	logger *zap.Logger,
	date string,
) (string, error) {
	_, iso, err := parseMonday(date)
	if err != nil {
		return "", err
	}

	if err := database.InsertMondayOpening(ctx, iso); err != nil {
		return "", fmt.Errorf("failed to open monday: %w", err)
	}

	logger.Info("Monday opened", zap.String("date", iso))
	return iso, nil
}

// CloseMonday removes a Monday opening from the plan. Mondays opened by a
// config rule cannot be closed here. Existing entries on the day are kept
// but no longer count.
func CloseMonday(
	ctx context.Context,
	database CloseMondayStore,
	cfg *config.Config,
	logger *zap.Logger,
	date string,
) (string, error) {
	day, iso, err := parseMonday(date)
	if err != nil {
		return "", err
	}

	if cfg != nil {
		ruled, err := cfg.OpenMondays(day, day)
		if err != nil {
			return "", fmt.Errorf("failed to expand monday openings: %w", err)
		}
		if slices.Contains(ruled, iso) {
			return "", fmt.Errorf("monday %s is opened by a mondayOpenings rule in the config", iso)
		}
	}

	stored, err := database.GetMondayOpenings(ctx, iso, iso)
	if err != nil {
		return "", fmt.Errorf("failed to fetch monday openings: %w", err)
	}
	if !slices.Contains(stored, iso) {
		logger.Debug("Monday already closed", zap.String("date", iso))
		return iso, nil
	}

	if err := database.DeleteMondayOpening(ctx, iso); err != nil {
		return "", fmt.Errorf("failed to close monday: %w", err)
	}

	logger.Info("Monday closed", zap.String("date", iso))
	return iso, nil
}

// ListOpenMondays returns the open Mondays of a month with their source.
// A Monday opened both ways is reported once, as a plan opening.
func ListOpenMondays(
	ctx context.Context,
	database MondayReader,
	cfg *config.Config,
	logger *zap.Logger,
	year int,
	month int,
) ([]OpenMondayInfo, error) {
	ym, err := calendar.NewYearMonth(year, month)
	if err != nil {
		return nil, err
	}
	from := calendar.FirstOfMonth(ym.Year, ym.Month)
	to := calendar.LastOfMonth(ym.Year, ym.Month)

	stored, err := database.GetMondayOpenings(ctx, calendar.ISODate(from), calendar.ISODate(to))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch monday openings: %w", err)
	}

	var ruled []string
	if cfg != nil {
		ruled, err = cfg.OpenMondays(from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to expand monday openings: %w", err)
		}
	}

	result := make([]OpenMondayInfo, 0, len(stored)+len(ruled))
	for _, d := range stored {
		result = append(result, OpenMondayInfo{Date: d, Source: MondaySourcePlan})
	}
	for _, d := range ruled {
		if !slices.Contains(stored, d) {
			result = append(result, OpenMondayInfo{Date: d, Source: MondaySourceConfig})
		}
	}
	slices.SortFunc(result, func(a, b OpenMondayInfo) int {
		return strings.Compare(a.Date, b.Date)
	})

	logger.Debug("Listed open mondays", zap.String("month", ym.String()), zap.Int("count", len(result)))
	return result, nil
}
