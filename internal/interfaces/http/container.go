package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminUsecases "github.com/cotracker/cotracker/internal/application/admin/usecases"
	checkoutUsecases "github.com/cotracker/cotracker/internal/application/checkout/usecases"
	"github.com/cotracker/cotracker/internal/infrastructure/auth"
	"github.com/cotracker/cotracker/internal/infrastructure/config"
	"github.com/cotracker/cotracker/internal/infrastructure/permission"
	"github.com/cotracker/cotracker/internal/infrastructure/ratelimit"
	adminHandlers "github.com/cotracker/cotracker/internal/interfaces/http/handlers/admin"
	checkoutHandlers "github.com/cotracker/cotracker/internal/interfaces/http/handlers/checkout"
	"github.com/cotracker/cotracker/internal/interfaces/http/middleware"
	"github.com/cotracker/cotracker/internal/interfaces/http/routes"
	"github.com/cotracker/cotracker/internal/shared/db"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

const redisPingTimeout = 5 * time.Second

// Container wires infrastructure, repositories, use cases and handlers
// together. Shutdown releases what it opened.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	jwtSvc      *auth.JWTService
	enforcer    *permission.Enforcer
	rateLimiter ratelimit.RateLimiter

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginRateLimiter     *middleware.RateLimitMiddleware
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
	}

	// ClientIP only honours forwarding headers from these addresses.
	if err := c.engine.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	cfg := c.cfg

	c.repos = newRepositories(c.db)
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := permission.NewEnforcer(c.db, c.log.With("component", "permission"))
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.InitAdminPermissions(enforcer); err != nil {
		return fmt.Errorf("failed to seed admin permissions: %w", err)
	}
	c.enforcer = enforcer

	if cfg.Redis.Enabled {
		client, err := initRedis(cfg, c.log)
		if err != nil {
			return err
		}
		c.redis = client
		c.rateLimiter = ratelimit.NewRedisRateLimiter(client)
	} else {
		c.log.Infow("redis disabled, using in-process login rate limiter")
		c.rateLimiter = ratelimit.NewMemoryRateLimiter()
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
	c.loginRateLimiter = middleware.NewRateLimitMiddleware(c.rateLimiter, ratelimit.RateLimitConfig{
		RequestsPerMinute: cfg.Auth.LoginRate.RequestsPerMinute,
		RequestsPerHour:   cfg.Auth.LoginRate.RequestsPerHour,
	}, "login", c.log)

	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())

	return client, nil
}

func (c *Container) initUseCases() {
	r := c.repos
	txMgr := db.NewTransactionManager(c.db)
	reportLog := c.log.With("component", "reports")
	adminLog := c.log.With("component", "admin")

	c.ucs = &allUseCases{
		listPilotsUC:        checkoutUsecases.NewListPilotsUseCase(r.pilotRepo, reportLog),
		getPilotDetailUC:    checkoutUsecases.NewGetPilotDetailUseCase(r.pilotRepo, r.aircraftTypeRepo, r.checkoutRepo, reportLog),
		listAirstripsUC:     checkoutUsecases.NewListAirstripsUseCase(r.airstripRepo, reportLog),
		getAirstripDetailUC: checkoutUsecases.NewGetAirstripDetailUseCase(r.airstripRepo, r.aircraftTypeRepo, r.checkoutRepo, reportLog),
		listBasesUC:         checkoutUsecases.NewListBasesUseCase(r.airstripRepo, reportLog),
		getBaseDetailUC:     checkoutUsecases.NewGetBaseDetailUseCase(r.airstripRepo, r.checkoutRepo, reportLog),
		filterCheckoutsUC:   checkoutUsecases.NewFilterCheckoutsUseCase(r.pilotRepo, r.airstripRepo, r.aircraftTypeRepo, r.checkoutRepo, reportLog),

		loginUC: adminUsecases.NewLoginUseCase(
			r.adminUserRepo,
			auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost),
			c.jwtSvc,
			adminLog,
		),
		adminIndexUC:    adminUsecases.NewAdminIndexUseCase(c.enforcer, routes.AdminRoutePrefix),
		managePilotsUC:  adminUsecases.NewManagePilotsUseCase(r.pilotRepo, adminLog),
		manageAirstrips: adminUsecases.NewManageAirstripsUseCase(r.airstripRepo, txMgr, adminLog),
		manageTypesUC:   adminUsecases.NewManageAircraftTypesUseCase(r.aircraftTypeRepo, adminLog),
		manageCheckouts: adminUsecases.NewManageCheckoutsUseCase(
			r.pilotRepo, r.airstripRepo, r.aircraftTypeRepo, r.checkoutRepo, txMgr, adminLog,
		),
	}
}

func (c *Container) initHandlers() {
	u := c.ucs
	c.hdlrs = &allHandlers{
		checkoutHandler: checkoutHandlers.NewHandler(
			u.listPilotsUC,
			u.getPilotDetailUC,
			u.listAirstripsUC,
			u.getAirstripDetailUC,
			u.listBasesUC,
			u.getBaseDetailUC,
			u.filterCheckoutsUC,
			c.log,
		),
		adminAuthHandler: adminHandlers.NewAuthHandler(u.loginUC, u.adminIndexUC, c.log),
		adminResourceHandler: adminHandlers.NewResourceHandler(
			u.managePilotsUC,
			u.manageAirstrips,
			u.manageTypesUC,
			u.manageCheckouts,
			c.log,
		),
	}
}

// Shutdown closes the redis client when one was opened.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
