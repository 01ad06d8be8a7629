// Package bootstrap holds the start-up steps shared by every CLI command:
// config, logger and database.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/cotracker/cotracker/internal/infrastructure/config"
	"github.com/cotracker/cotracker/internal/infrastructure/database"
	"github.com/cotracker/cotracker/internal/shared/constants"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

// Options are the flags every command accepts.
type Options struct {
	Env        string
	ConfigPath string
}

// AddFlags registers --env and --config as persistent flags on cmd.
func AddFlags(cmd *cobra.Command, opts *Options) {
	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
}

// env returns the environment, letting $ENV override the flag.
func (o *Options) env() string {
	if v := os.Getenv("ENV"); v != "" {
		return v
	}
	return o.Env
}

// LoadConfig loads configuration and initializes the process logger.
func LoadConfig(opts *Options) (*config.Config, error) {
	env := opts.env()

	cfg, err := config.Load(env, opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == "debug"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, nil
}

// Open loads configuration and connects to the database. The caller must
// call database.Close.
func Open(opts *Options) (*config.Config, *gorm.DB, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, database.Get(), nil
}
