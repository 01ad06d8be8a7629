package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/cotracker/cotracker/internal/infrastructure/config"
	"github.com/cotracker/cotracker/internal/infrastructure/database"
	"github.com/cotracker/cotracker/internal/infrastructure/migration"
	"github.com/cotracker/cotracker/internal/interfaces/cli/bootstrap"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

var (
	opts  bootstrap.Options
	name  string
	steps int
	dir   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long: `Manage the database schema. MySQL uses the versioned goose scripts;
SQLite uses gorm AutoMigrate and only supports "up".`,
	}

	bootstrap.AddFlags(cmd, &opts)

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new SQL migration script",
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVarP(&dir, "dir", "d", migration.ScriptsDir, "Directory to write the script to")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func withManager(fn func(m *migration.Manager, cfg *config.Config, db *gorm.DB) error) error {
	cfg, db, err := bootstrap.Open(&opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	return fn(migration.NewManager(cfg.Database.Driver), cfg, db)
}

func runUp(cmd *cobra.Command, args []string) error {
	return withManager(func(m *migration.Manager, cfg *config.Config, db *gorm.DB) error {
		log := logger.WithComponent("migrate")
		log.Infow("running up migrations", "environment", opts.Env, "strategy", m.GetStrategy().GetName())

		if err := m.Migrate(db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		log.Infow("migrations completed successfully")
		return nil
	})
}

func runDown(cmd *cobra.Command, args []string) error {
	return withManager(func(m *migration.Manager, cfg *config.Config, db *gorm.DB) error {
		log := logger.WithComponent("migrate")
		log.Infow("running down migrations", "environment", opts.Env, "steps", steps)

		if err := m.Down(db, steps); err != nil {
			return fmt.Errorf("down migration failed: %w", err)
		}

		log.Infow("down migration completed successfully")
		return nil
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withManager(func(m *migration.Manager, cfg *config.Config, db *gorm.DB) error {
		version, err := m.Version(db)
		if err != nil {
			return fmt.Errorf("failed to get migration version: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\nMigration Status:\n")
		fmt.Fprintf(out, "  Environment:     %s\n", opts.Env)
		fmt.Fprintf(out, "  Driver:          %s\n", cfg.Database.Driver)
		fmt.Fprintf(out, "  Current Version: %d\n", version)

		return m.Status(db)
	})
}

func runCreate(cmd *cobra.Command, args []string) error {
	if _, err := bootstrap.LoadConfig(&opts); err != nil {
		return err
	}

	if err := migration.Create(dir, name); err != nil {
		return err
	}

	logger.Info("migration created", "name", name, "dir", dir)
	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, dir)
	return nil
}
