package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/dienstplan/pkg/postgres"
)

// ListRunsCmd creates the listRuns command
func ListRunsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRuns",
		Short: "List the saved AutoPlan runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := app.Database.GetAutoPlanRuns(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}

			fmt.Printf("\nFound %d AutoPlan runs:\n\n", len(runs))
			for _, r := range runs {
				fmt.Printf("- %s  %04d-%02d  filled %d, short-staffed days %d  (%s)\n",
					r.ID, r.Year, r.Month, r.Filled, r.Underfilled, r.CreatedAt.Local().Format("2006-01-02 15:04"))
			}
			fmt.Println()

			return nil
		},
	}
}

// MigrateCmd creates the migrate command
func MigrateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending PostgreSQL migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pg, ok := app.Database.(*postgres.DB)
			if !ok {
				return fmt.Errorf("migrate needs storage %q, configured storage is %q", "postgres", app.Cfg.Storage)
			}

			applied, err := pg.RunMigrations(app.Ctx)
			if err != nil {
				return err
			}

			if len(applied) == 0 {
				fmt.Println("\nDatabase is up to date.")
				return nil
			}

			fmt.Printf("\n✓ Applied %d migrations:\n", len(applied))
			for _, name := range applied {
				fmt.Printf("  ✓ %s\n", name)
			}
			fmt.Println()
			return nil
		},
	}
}
