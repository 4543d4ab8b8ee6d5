package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/pkg/core/model"
	"github.com/jakechorley/dienstplan/pkg/core/services"
)

// AddEmployeeCmd creates the addEmployee command
func AddEmployeeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addEmployee <name> <hours> [minutes]",
		Short: "Register an employee with a weekly target (minutes: 0, 15, 30 or 45)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			weeklyMinutes, err := weeklyMinutesArgs(args, 1)
			if err != nil {
				return err
			}

			app.Logger.Debug("addEmployee command", zap.String("name", args[0]), zap.Int("weekly_minutes", weeklyMinutes))

			employee, err := services.AddEmployee(app.Ctx, app.Database, app.Logger, args[0], weeklyMinutes)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Employee added: %s (%s), %s h/week\n\n",
				employee.Name, employee.ID, services.FormatMinutes(employee.WeeklyMinutes))
			return nil
		},
	}
}

// SetHoursCmd creates the setHours command
func SetHoursCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "setHours <employee_id> <hours> [minutes]",
		Short: "Change an employee's weekly target",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			weeklyMinutes, err := weeklyMinutesArgs(args, 1)
			if err != nil {
				return err
			}

			if err := services.UpdateEmployeeHours(app.Ctx, app.Database, app.Logger, args[0], weeklyMinutes); err != nil {
				return err
			}

			fmt.Printf("\n✓ %s now has %s h/week\n\n", args[0], services.FormatMinutes(weeklyMinutes))
			return nil
		},
	}
}

// DeleteEmployeeCmd creates the deleteEmployee command
func DeleteEmployeeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteEmployee <employee_id>",
		Short: "Remove an employee and all their plan entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeleteEmployee(app.Ctx, app.Database, app.Logger, args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Employee %s deleted\n\n", args[0])
			return nil
		},
	}
}

// ListEmployeesCmd creates the listEmployees command
func ListEmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listEmployees",
		Short: "List all employees with their weekly targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := app.Database.GetEmployees(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list employees: %w", err)
			}

			app.Logger.Debug("Employees fetched", zap.Int("count", len(employees)))

			fmt.Printf("\nFound %d employees:\n\n", len(employees))
			fmt.Printf("%-26s  %-24s  %8s  %s\n", "ID", "Name", "h/week", "Shifts/week")
			for _, e := range employees {
				shifts := model.RoundDiv(e.WeeklyMinutes, model.ShiftMinutes)
				fmt.Printf("%-26s  %-24s  %8s  %d\n", e.ID, e.Name, services.FormatMinutes(e.WeeklyMinutes), shifts)
			}
			fmt.Println()

			return nil
		},
	}
}
