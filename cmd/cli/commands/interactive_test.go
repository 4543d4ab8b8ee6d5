package commands

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCommandLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"empty", "", nil},
		{"plain", "setStatus 2026-03-02 anna SCHLOSS", []string{"setStatus", "2026-03-02", "anna", "SCHLOSS"}},
		{"double quotes", `addEmployee "Anna Maria" 40`, []string{"addEmployee", "Anna Maria", "40"}},
		{"single quotes", `addEmployee 'Jo' 20 30`, []string{"addEmployee", "Jo", "20", "30"}},
		{"empty quoted arg", `addEmployee "" 40`, []string{"addEmployee", "", "40"}},
		{"extra spaces", "  stats   2026-03 ", []string{"stats", "2026-03"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitCommandLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitCommandLine_UnclosedQuote(t *testing.T) {
	_, err := splitCommandLine(`addEmployee "Anna 40`)
	assert.ErrorContains(t, err, "unclosed quote")
}

func TestRunInSession_ResetsFlags(t *testing.T) {
	var seen []bool
	cmd := &cobra.Command{
		Use:  "autoplan [month]",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			seen = append(seen, dryRun)
			return nil
		},
	}
	cmd.Flags().Bool("dry-run", false, "")

	require.NoError(t, runInSession(cmd, []string{"--dry-run", "2026-03"}))
	require.NoError(t, runInSession(cmd, []string{"2026-03"}))
	assert.Equal(t, []bool{true, false}, seen)

	assert.Error(t, runInSession(cmd, []string{"2026-03", "2026-04"}))
}

func TestSessionCommands_SkipsSessionAndHelp(t *testing.T) {
	root := &cobra.Command{Use: "dienstplan"}
	root.AddCommand(
		&cobra.Command{Use: "stats", Run: func(*cobra.Command, []string) {}},
		&cobra.Command{Use: "interactive", Run: func(*cobra.Command, []string) {}},
		&cobra.Command{Use: "help", Run: func(*cobra.Command, []string) {}},
	)

	commands := sessionCommands(root)
	assert.Len(t, commands, 1)
	assert.Contains(t, commands, "stats")
}

type rejectingValue struct{}

func (rejectingValue) String() string   { return "" }
func (rejectingValue) Set(string) error { return errors.New("rejected") }
func (rejectingValue) Type() string     { return "rejecting" }

func TestRunInSession_FlagResetError(t *testing.T) {
	ran := false
	cmd := &cobra.Command{
		Use: "stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			return nil
		},
	}
	cmd.Flags().Var(rejectingValue{}, "mode", "")

	err := runInSession(cmd, nil)
	assert.ErrorContains(t, err, "invalid flags")
	assert.ErrorContains(t, err, "--mode")
	assert.False(t, ran)
}
