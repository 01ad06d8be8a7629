package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/cotracker/cotracker/internal/interfaces/cli/admin"
	"github.com/cotracker/cotracker/internal/interfaces/cli/migrate"
	"github.com/cotracker/cotracker/internal/interfaces/cli/report"
	"github.com/cotracker/cotracker/internal/interfaces/cli/seed"
	"github.com/cotracker/cotracker/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "cotracker",
		Short:        "Pilot checkout tracker",
		Long:         `cotracker records which pilots are checked out at which airstrips in which aircraft types.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		report.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
