package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/services"
)

// OpenMondayCmd creates the openMonday command
func OpenMondayCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "openMonday <date>",
		Short: "Open a Monday so it can be staffed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := services.OpenMonday(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Monday %s is open\n\n", date)
			return nil
		},
	}
}

// CloseMondayCmd creates the closeMonday command
func CloseMondayCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "closeMonday <date>",
		Short: "Close a previously opened Monday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := services.CloseMonday(app.Ctx, app.Database, app.Cfg, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Monday %s is closed\n\n", date)
			return nil
		},
	}
}

// ListMondaysCmd creates the listMondays command
func ListMondaysCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listMondays [month]",
		Short: "List the open Mondays of a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ym, err := monthArg(args, 0)
			if err != nil {
				return err
			}

			mondays, err := services.ListOpenMondays(app.Ctx, app.Database, app.Cfg, app.Logger, ym.Year, int(ym.Month))
			if err != nil {
				return err
			}

			if len(mondays) == 0 {
				fmt.Printf("\nNo open Mondays in %s\n\n", calendar.MonthName(ym.Year, ym.Month))
				return nil
			}

			fmt.Printf("\nOpen Mondays in %s:\n\n", calendar.MonthName(ym.Year, ym.Month))
			for _, m := range mondays {
				fmt.Printf("  %s  (%s)\n", m.Date, m.Source)
			}
			fmt.Println()

			return nil
		},
	}
}
