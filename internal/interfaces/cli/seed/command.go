package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cotracker/cotracker/internal/infrastructure/database"
	"github.com/cotracker/cotracker/internal/infrastructure/persistence/seeds"
	"github.com/cotracker/cotracker/internal/infrastructure/repository"
	"github.com/cotracker/cotracker/internal/interfaces/cli/bootstrap"
	"github.com/cotracker/cotracker/internal/shared/db"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

var (
	opts bootstrap.Options
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load pilots, airstrips, aircraft types and checkouts from YAML",
		Long: `Load reference data from a fixture file. Rows that already exist are
left untouched, so the same file can be loaded repeatedly.`,
		RunE: run,
	}

	bootstrap.AddFlags(cmd, &opts)
	cmd.Flags().StringVarP(&file, "file", "f", "configs/fixtures.yaml", "Fixture file to load")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	fixtures, err := seeds.LoadFile(file)
	if err != nil {
		return err
	}

	_, gdb, err := bootstrap.Open(&opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	seeder := seeds.NewSeeder(
		repository.NewPilotRepository(gdb),
		repository.NewAirstripRepository(gdb),
		repository.NewAircraftTypeRepository(gdb),
		repository.NewCheckoutRepository(gdb),
		db.NewTransactionManager(gdb),
		logger.WithComponent("seed"),
	)

	res, err := seeder.Seed(cmd.Context(), fixtures)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", file, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"Loaded %s: %d pilots, %d airstrips, %d base attachments, %d aircraft types, %d checkouts\n",
		file, res.Pilots, res.Airstrips, res.Attachments, res.AircraftTypes, res.Checkouts)
	return nil
}
