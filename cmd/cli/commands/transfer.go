package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jakechorley/dienstplan/pkg/core/services"
)

// ExportCmd creates the export command
func ExportCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export employees and plan as JSON (stdout if no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var w io.Writer = os.Stdout
			if len(args) > 0 {
				f, err := os.Create(args[0])
				if err != nil {
					return fmt.Errorf("failed to create export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if err := services.ExportPlan(app.Ctx, app.Database, app.Logger, w); err != nil {
				return err
			}

			if len(args) > 0 {
				fmt.Printf("\n✓ Exported to %s\n\n", args[0])
			}
			return nil
		},
	}
}

// ImportCmd creates the import command
func ImportCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace employees and plan with a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer f.Close()

			summary, err := services.ImportPlan(app.Ctx, app.Database, app.Logger, f)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Import completed!\n\n")
			fmt.Printf("Employees:    %d\n", summary.Employees)
			fmt.Printf("Day entries:  %d\n", summary.DayEntries)
			fmt.Printf("Open Mondays: %d\n\n", summary.OpenMondays)
			return nil
		},
	}
}
