package report

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/cotracker/cotracker/internal/application/checkout/usecases"
	"github.com/cotracker/cotracker/internal/infrastructure/database"
	"github.com/cotracker/cotracker/internal/infrastructure/repository"
	"github.com/cotracker/cotracker/internal/interfaces/cli/bootstrap"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

var opts bootstrap.Options

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print checkout matrices to the terminal",
	}

	bootstrap.AddFlags(cmd, &opts)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "pilot <username>",
			Short: "Show the airstrips and aircraft types a pilot is checked out on",
			Args:  cobra.ExactArgs(1),
			RunE:  runPilot,
		},
		&cobra.Command{
			Use:   "airstrip <ident>",
			Short: "Show the pilots checked out at an airstrip",
			Args:  cobra.ExactArgs(1),
			RunE:  runAirstrip,
		},
	)

	return cmd
}

func withDB(fn func(gdb *gorm.DB) error) error {
	_, gdb, err := bootstrap.Open(&opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	return fn(gdb)
}

func runPilot(cmd *cobra.Command, args []string) error {
	return withDB(func(gdb *gorm.DB) error {
		uc := usecases.NewGetPilotDetailUseCase(
			repository.NewPilotRepository(gdb),
			repository.NewAircraftTypeRepository(gdb),
			repository.NewCheckoutRepository(gdb),
			logger.WithComponent("report"),
		)
		detail, err := uc.Execute(cmd.Context(), usecases.GetPilotDetailQuery{Username: args[0]})
		if err != nil {
			return err
		}
		return RenderPilot(cmd.OutOrStdout(), detail)
	})
}

func runAirstrip(cmd *cobra.Command, args []string) error {
	return withDB(func(gdb *gorm.DB) error {
		uc := usecases.NewGetAirstripDetailUseCase(
			repository.NewAirstripRepository(gdb),
			repository.NewAircraftTypeRepository(gdb),
			repository.NewCheckoutRepository(gdb),
			logger.WithComponent("report"),
		)
		detail, err := uc.Execute(cmd.Context(), usecases.GetAirstripDetailQuery{Ident: args[0]})
		if err != nil {
			return err
		}
		return RenderAirstrip(cmd.OutOrStdout(), detail)
	})
}
