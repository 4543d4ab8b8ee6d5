package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/pkg/core/services"
)

// AutoPlanCmd creates the autoplan command
func AutoPlanCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autoplan [month]",
		Short: "Fill the month's empty shift slots fairly",
		Long: `Fill every empty slot of the month (YYYY-MM or MM.YYYY, defaults to the current month).
Existing entries are never changed. Open days need 5 employees, Sundays 2.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ym, err := monthArg(args, 0)
			if err != nil {
				return err
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			app.Logger.Debug("autoplan command", zap.String("month", ym.String()), zap.Bool("dry_run", dryRun))

			outcome, err := services.RunAutoPlan(app.Ctx, app.Database, app.Cfg, app.Logger, ym.Year, int(ym.Month), dryRun)
			if err != nil {
				return fmt.Errorf("failed to run autoplan: %w", err)
			}
			result := outcome.Result

			fmt.Printf("\n%s\n", result.Summary())
			if result.NoEmployees {
				return nil
			}
			if outcome.DryRun {
				fmt.Println("(dry run, nothing saved)")
			}
			if outcome.Run != nil {
				fmt.Printf("Run ID: %s\n", outcome.Run.ID)
			}
			fmt.Println()

			if len(result.Underfilled) > 0 {
				fmt.Printf("⚠️  %d days are short-staffed:\n", len(result.Underfilled))
				for _, day := range result.Underfilled {
					fmt.Printf("  %s  %d/%d (missing %d)\n", day.Date, day.Working, day.Required, day.Missing())
				}
				fmt.Println()
			}

			if len(result.Issues) > 0 {
				fmt.Printf("Notes:\n")
				for _, issue := range result.Issues {
					fmt.Printf("  - %s %-12s [%s] %s\n", issue.Date, issue.EmployeeID, issue.CriterionName, issue.Description)
				}
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Compute the plan without saving it")

	return cmd
}
