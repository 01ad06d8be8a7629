package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/cotracker/cotracker/internal/infrastructure/database"
	"github.com/cotracker/cotracker/internal/infrastructure/migration"
	httpRouter "github.com/cotracker/cotracker/internal/interfaces/http"
	"github.com/cotracker/cotracker/internal/interfaces/cli/bootstrap"
	"github.com/cotracker/cotracker/internal/shared/constants"
	"github.com/cotracker/cotracker/internal/shared/goroutine"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

const shutdownTimeout = 30 * time.Second

var (
	opts        bootstrap.Options
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Serve the checkout reports and the admin site.`,
		RunE:  run,
	}

	bootstrap.AddFlags(cmd, &opts)
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, db, err := bootstrap.Open(&opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	log := logger.WithComponent("server")
	log.Infow("starting server",
		"environment", opts.Env,
		"driver", cfg.Database.Driver,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := handleMigrations(db, cfg.Database.Driver, log); err != nil {
		return err
	}

	router, err := httpRouter.NewRouter(db, cfg, logger.NewLogger())
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	defer router.Shutdown()
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	goroutine.SafeGo(log, "http-server", func() {
		log.Infow("server listening", "address", srv.Addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(db *gorm.DB, driver string, log logger.Interface) error {
	manager := migration.NewManager(driver)

	if autoMigrate {
		if opts.Env == constants.EnvProduction {
			log.Warnw("auto-migration is enabled in production")
		}
		if err := manager.Migrate(db); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}

	version, err := manager.Version(db)
	switch {
	case errors.Is(err, migration.ErrNotVersioned):
		log.Infow("schema is not versioned, run with --auto-migrate to create tables", "strategy", manager.GetStrategy().GetName())
	case err != nil:
		log.Warnw("failed to check migration status", "error", err)
	default:
		log.Infow("current migration version", "version", version)
	}
	return nil
}
