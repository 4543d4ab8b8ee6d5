package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/pkg/core/model"
	"github.com/jakechorley/dienstplan/pkg/core/services"
)

// SetStatusCmd creates the setStatus command
func SetStatusCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "setStatus <date> <employee_id> <status>",
		Short: "Set a day status (SCHLOSS, BUERGER, KRANK, URLAUB, AUSGL or NONE)",
		Long: `Set an employee's status for one day (YYYY-MM-DD or TT.MM.JJJJ).
Setting the status the day already has clears it again, as does NONE.
Closed Mondays cannot be changed.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := model.ParseDayStatus(strings.ToUpper(args[2]))
			if err != nil {
				return err
			}

			app.Logger.Debug("setStatus command",
				zap.String("date", args[0]),
				zap.String("employee_id", args[1]),
				zap.String("status", string(status)))

			next, err := services.SetDayStatus(app.Ctx, app.Database, app.Cfg, app.Logger, args[0], args[1], status)
			if err != nil {
				return err
			}

			if next == model.StatusNone {
				fmt.Printf("\n✓ %s: entry for %s cleared\n\n", args[0], args[1])
			} else {
				fmt.Printf("\n✓ %s: %s is now %s\n\n", args[0], args[1], next)
			}
			return nil
		},
	}
}

// ClearDutiesCmd creates the clearDuties command
func ClearDutiesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clearDuties <employee_id> [month]",
		Short: "Remove an employee's SCHLOSS and BUERGER entries for a month",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ym, err := monthArg(args, 1)
			if err != nil {
				return err
			}

			cleared, err := services.ClearMonthDuties(app.Ctx, app.Database, app.Logger, args[0], ym.Year, int(ym.Month))
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Cleared %d duties of %s in %s\n\n", cleared, args[0], ym)
			return nil
		},
	}
}
