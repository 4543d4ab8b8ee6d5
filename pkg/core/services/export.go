package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/pkg/db"
)

// ExportStore defines the database operations needed to export the data set
type ExportStore interface {
	ExportDocument(ctx context.Context) (*db.Document, error)
}

// ImportStore defines the database operations needed to import a data set
type ImportStore interface {
	ReplaceDocument(ctx context.Context, doc *db.Document) error
}

// ImportSummary counts what an import replaced the data set with
type ImportSummary struct {
	Employees   int
	DayEntries  int
	OpenMondays int
}

// ExportPlan writes employees and plan as indented JSON.
// Run records are not part of the export.
func ExportPlan(
	ctx context.Context,
	database ExportStore,
	logger *zap.Logger,
	w io.Writer,
) error {
	doc, err := database.ExportDocument(ctx)
	if err != nil {
		return fmt.Errorf("failed to export document: %w", err)
	}
	doc.AutoPlanRuns = nil

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	logger.Debug("Plan exported",
		zap.Int("employees", len(doc.Employees)),
		zap.Int("days", len(doc.Plan.DayEntries)),
		zap.Int("open_mondays", len(doc.Plan.MondayOpen)))
	return nil
}

// ImportPlan replaces employees, entries and Monday openings with the JSON
// document read from r. The document must have an employees array and a plan object.
func ImportPlan(
	ctx context.Context,
	database ImportStore,
	logger *zap.Logger,
	r io.Reader,
) (*ImportSummary, error) {
	var raw struct {
		Employees json.RawMessage `json:"employees"`
		Plan      json.RawMessage `json:"plan"`
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import: %w", err)
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse import: %w", err)
	}
	if !isJSONKind(raw.Employees, '[') {
		return nil, fmt.Errorf("invalid import: employees must be an array")
	}
	if !isJSONKind(raw.Plan, '{') {
		return nil, fmt.Errorf("invalid import: plan must be an object")
	}

	doc := db.NewDocument()
	if err := json.Unmarshal(raw.Employees, &doc.Employees); err != nil {
		return nil, fmt.Errorf("invalid import employees: %w", err)
	}
	if err := json.Unmarshal(raw.Plan, doc.Plan); err != nil {
		return nil, fmt.Errorf("invalid import plan: %w", err)
	}
	if err := db.ValidateDocument(doc); err != nil {
		return nil, fmt.Errorf("invalid import: %w", err)
	}

	if err := database.ReplaceDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to replace document: %w", err)
	}

	summary := &ImportSummary{
		Employees:   len(doc.Employees),
		DayEntries:  len(doc.Entries()),
		OpenMondays: len(doc.Plan.MondayOpen),
	}
	logger.Info("Plan imported",
		zap.Int("employees", summary.Employees),
		zap.Int("day_entries", summary.DayEntries),
		zap.Int("open_mondays", summary.OpenMondays))

	return summary, nil
}

// isJSONKind reports whether the raw value starts with the given delimiter
func isJSONKind(raw json.RawMessage, delim byte) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b == delim
	}
	return false
}
