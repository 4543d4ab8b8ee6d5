package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/pkg/clients/sheetsclient"
	"github.com/jakechorley/dienstplan/pkg/core/services"
)

// PublishPlanCmd creates the publishPlan command
func PublishPlanCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishPlan [month]",
		Short: "Write the month plan to the plan spreadsheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ym, err := monthArg(args, 0)
			if err != nil {
				return err
			}

			sheetsClient, err := app.SheetsClient()
			if err != nil {
				return err
			}

			published, err := services.PublishPlan(app.Ctx, app.Database, sheetsClient, app.Cfg, app.Logger, ym.Year, int(ym.Month))
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Plan published!\n\n")
			fmt.Printf("Sheet: %s\n", app.Cfg.PlanSheetID)
			fmt.Printf("Tab:   %s\n", sheetsclient.TabTitle(published.Month))
			fmt.Printf("Days:  %d\n\n", len(published.Rows))
			return nil
		},
	}
}

// SendPlanCmd creates the sendPlan command
func SendPlanCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sendPlan [month]",
		Short: "Email the month plan to the configured recipients",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ym, err := monthArg(args, 0)
			if err != nil {
				return err
			}

			gmailClient, err := app.GmailClient()
			if err != nil {
				return err
			}

			app.Logger.Debug("sendPlan command", zap.String("month", ym.String()))

			result, err := services.SendPlan(app.Ctx, app.Database, gmailClient, app.Cfg, app.Logger, ym.Year, int(ym.Month))
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ %s sent\n\n", result.Subject)

			if len(result.Sent) > 0 {
				fmt.Printf("Sent to %d recipients:\n", len(result.Sent))
				for _, to := range result.Sent {
					fmt.Printf("  ✓ %s\n", to)
				}
				fmt.Println()
			}

			if len(result.Failed) > 0 {
				fmt.Printf("⚠️  Failed to send %d emails:\n", len(result.Failed))
				for _, fe := range result.Failed {
					fmt.Printf("  ✗ %s: %v\n", fe.Recipient, fe.Err)
				}
				fmt.Println()
			}

			return nil
		},
	}
}
