package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/dienstplan/pkg/core/calendar"
	"github.com/jakechorley/dienstplan/pkg/core/services"
)

// ShowPlanCmd creates the showPlan command
func ShowPlanCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "showPlan [month]",
		Short: "Print the day list of a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ym, err := monthArg(args, 0)
			if err != nil {
				return err
			}

			monthPlan, err := services.BuildMonthPlan(app.Ctx, app.Database, app.Cfg, app.Logger, ym.Year, int(ym.Month))
			if err != nil {
				return err
			}

			fmt.Printf("\n%s\n\n", monthPlan.Text())
			return nil
		},
	}
}

// StatsCmd creates the stats command
func StatsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [month]",
		Short: "Show target, worked time and Sundays per employee",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ym, err := monthArg(args, 0)
			if err != nil {
				return err
			}

			stats, err := services.MonthStats(app.Ctx, app.Database, app.Cfg, app.Logger, ym.Year, int(ym.Month))
			if err != nil {
				return err
			}

			if len(stats) == 0 {
				fmt.Println("\nNo employees registered.")
				return nil
			}

			// ANSI color codes
			const (
				colorReset  = "\033[0m"
				colorGreen  = "\033[32m"
				colorYellow = "\033[33m"
				colorRed    = "\033[31m"
				colorBold   = "\033[1m"
			)
			colors := map[services.TrafficLight]string{
				services.TrafficLightGreen:  colorGreen,
				services.TrafficLightYellow: colorYellow,
				services.TrafficLightRed:    colorRed,
			}

			fmt.Printf("\n%sStatistik %s%s\n\n", colorBold, calendar.MonthName(ym.Year, ym.Month), colorReset)
			fmt.Printf("%-24s  %8s  %8s  %8s  %s\n", "Name", "Soll", "Ist", "Diff", "So")
			for _, s := range stats {
				fmt.Printf("%-24s  %8s  %8s  %s%8s%s  %d\n",
					s.Name,
					services.FormatMinutes(s.TargetMinutes),
					services.FormatMinutes(s.CreditedMinutes),
					colors[s.Light],
					services.FormatMinutes(s.DiffMinutes),
					colorReset,
					s.Sundays,
				)
			}
			fmt.Println()

			return nil
		},
	}
}
