package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cotracker/cotracker/internal/infrastructure/config"
	"github.com/cotracker/cotracker/internal/interfaces/http/middleware"
	"github.com/cotracker/cotracker/internal/interfaces/http/routes"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

// Router owns the gin engine and the container behind it.
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	routes.SetupCheckoutRoutes(r.engine, &routes.CheckoutRouteConfig{
		Handler:     r.hdlrs.checkoutHandler,
		ServeStatic: r.cfg.Server.ServeStatic,
		StaticRoot:  r.cfg.Server.StaticRoot,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AuthHandler:          r.hdlrs.adminAuthHandler,
		ResourceHandler:      r.hdlrs.adminResourceHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		LoginRateLimiter:     r.loginRateLimiter,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
