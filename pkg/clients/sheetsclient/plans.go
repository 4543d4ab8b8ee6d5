package sheetsclient

import (
	"fmt"
	"strings"
)

// Header of a published plan tab
var planHeader = []interface{}{"Datum", "Tag", "Schloss", "Bürger", "Besetzt"}

// PublishedPlanRow represents a single day in the published plan
type PublishedPlanRow struct {
	Date    string   // Format: "02.01.2006"
	Weekday string   // Two-letter German weekday
	Closed  bool     // Closed Monday
	Schloss []string // Names working SCHLOSS
	Buerger []string // Names working BUERGER
}

// PublishedPlan represents a month plan ready to be written to a tab
type PublishedPlan struct {
	Month string // Format: "März 2026"
	Rows  []PublishedPlanRow
}

// TabTitle returns the tab title for a month, e.g. "Dienstplan März 2026"
func TabTitle(month string) string {
	return "Dienstplan " + month
}

// PublishPlan writes a month plan to the tab "Dienstplan <Monat Jahr>".
// A missing tab is created; an existing tab is cleared and rewritten.
func (c *Client) PublishPlan(spreadsheetID string, plan *PublishedPlan) error {
	if plan == nil {
		return fmt.Errorf("plan is required")
	}
	tabTitle := TabTitle(plan.Month)

	exists, err := c.HasSheet(spreadsheetID, tabTitle)
	if err != nil {
		return err
	}

	if exists {
		if err := c.ClearValues(spreadsheetID, fmt.Sprintf("'%s'!A1:ZZ", tabTitle)); err != nil {
			return fmt.Errorf("failed to clear existing tab: %w", err)
		}
	} else {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create tab: %w", err)
		}
	}

	if err := c.UpdateValues(spreadsheetID, fmt.Sprintf("'%s'!A1", tabTitle), buildPlanValues(plan)); err != nil {
		return fmt.Errorf("failed to write plan to tab: %w", err)
	}

	return nil
}

// buildPlanValues lays out the title row, a blank row, the header and one row per day
func buildPlanValues(plan *PublishedPlan) [][]interface{} {
	rows := [][]interface{}{
		{TabTitle(plan.Month)},
		{},
		planHeader,
	}

	for _, row := range plan.Rows {
		if row.Closed {
			rows = append(rows, []interface{}{row.Date, row.Weekday, "geschlossen", "", ""})
			continue
		}
		rows = append(rows, []interface{}{
			row.Date,
			row.Weekday,
			strings.Join(row.Schloss, ", "),
			strings.Join(row.Buerger, ", "),
			len(row.Schloss) + len(row.Buerger),
		})
	}

	return rows
}
