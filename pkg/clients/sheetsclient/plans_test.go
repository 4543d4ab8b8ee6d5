package sheetsclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabTitle(t *testing.T) {
	assert.Equal(t, "Dienstplan März 2026", TabTitle("März 2026"))
}

func TestBuildPlanValues(t *testing.T) {
	plan := &PublishedPlan{
		Month: "März 2026",
		Rows: []PublishedPlanRow{
			{Date: "01.03.2026", Weekday: "So", Schloss: []string{"Anna"}, Buerger: []string{"Ben"}},
			{Date: "02.03.2026", Weekday: "Mo", Closed: true},
			{Date: "03.03.2026", Weekday: "Di", Schloss: []string{"Anna", "Carl"}},
			{Date: "04.03.2026", Weekday: "Mi"},
		},
	}

	values := buildPlanValues(plan)
	require.Len(t, values, 7)

	assert.Equal(t, []interface{}{"Dienstplan März 2026"}, values[0])
	assert.Empty(t, values[1])
	assert.Equal(t, []interface{}{"Datum", "Tag", "Schloss", "Bürger", "Besetzt"}, values[2])
	assert.Equal(t, []interface{}{"01.03.2026", "So", "Anna", "Ben", 2}, values[3])
	assert.Equal(t, []interface{}{"02.03.2026", "Mo", "geschlossen", "", ""}, values[4])
	assert.Equal(t, []interface{}{"03.03.2026", "Di", "Anna, Carl", "", 2}, values[5])
	assert.Equal(t, []interface{}{"04.03.2026", "Mi", "", "", 0}, values[6])
}

func TestBuildPlanValues_Empty(t *testing.T) {
	values := buildPlanValues(&PublishedPlan{Month: "Januar 2026"})
	require.Len(t, values, 3)
	assert.Equal(t, []interface{}{"Dienstplan Januar 2026"}, values[0])
}
