package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/dienstplan/cmd/cli/commands"
	"github.com/jakechorley/dienstplan/internal/config"
	"github.com/jakechorley/dienstplan/pkg/db"
	"github.com/jakechorley/dienstplan/pkg/postgres"
	"github.com/jakechorley/dienstplan/pkg/utils/logging"
)

var (
	env     string
	verbose bool
)

func main() {
	app := &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "dienstplan",
		Short: "Dienstplan - monthly shift plan with fair AutoPlan",
		Long: `A CLI tool for keeping the monthly shift plan of the shop: employees,
day statuses, opened Mondays, the AutoPlan fill, statistics and publishing.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Database != nil {
				app.Database.Close()
			}
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (loads dienstplan_config.<env>.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")

	rootCmd.AddCommand(commands.AddEmployeeCmd(app))
	rootCmd.AddCommand(commands.SetHoursCmd(app))
	rootCmd.AddCommand(commands.DeleteEmployeeCmd(app))
	rootCmd.AddCommand(commands.ListEmployeesCmd(app))
	rootCmd.AddCommand(commands.SetStatusCmd(app))
	rootCmd.AddCommand(commands.ClearDutiesCmd(app))
	rootCmd.AddCommand(commands.OpenMondayCmd(app))
	rootCmd.AddCommand(commands.CloseMondayCmd(app))
	rootCmd.AddCommand(commands.ListMondaysCmd(app))
	rootCmd.AddCommand(commands.AutoPlanCmd(app))
	rootCmd.AddCommand(commands.ListRunsCmd(app))
	rootCmd.AddCommand(commands.ShowPlanCmd(app))
	rootCmd.AddCommand(commands.StatsCmd(app))
	rootCmd.AddCommand(commands.ExportCmd(app))
	rootCmd.AddCommand(commands.ImportCmd(app))
	rootCmd.AddCommand(commands.PublishPlanCmd(app))
	rootCmd.AddCommand(commands.SendPlanCmd(app))
	rootCmd.AddCommand(commands.MigrateCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config and the data store
func initApp(app *commands.AppContext) error {
	var err error
	app.Env = env
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Starting application", zap.String("environment", env))

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded",
		zap.String("storage", app.Cfg.Storage),
		zap.Int("monday_rules", len(app.Cfg.MondayOpenings)))

	database, err := openDatabase(app)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", app.Cfg.Storage, err)
	}
	app.Database = database

	return nil
}

func openDatabase(app *commands.AppContext) (db.Database, error) {
	if app.Cfg.Storage == config.StoragePostgres {
		app.Logger.Debug("Connecting to postgres")
		return postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	}

	app.Logger.Debug("Opening data file", zap.String("path", app.Cfg.DataFile))
	return db.NewDB(app.Cfg.DataFile)
}
