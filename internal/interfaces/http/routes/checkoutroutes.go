package routes

import (
	"github.com/gin-gonic/gin"

	checkouthandlers "github.com/cotracker/cotracker/internal/interfaces/http/handlers/checkout"
)

type CheckoutRouteConfig struct {
	Handler     *checkouthandlers.Handler
	ServeStatic bool
	StaticRoot  string
}

// SetupCheckoutRoutes registers the public report views.
func SetupCheckoutRoutes(engine *gin.Engine, cfg *CheckoutRouteConfig) {
	engine.GET("/health", cfg.Handler.HealthCheck)

	pilots := engine.Group("/pilots")
	{
		pilots.GET("/", cfg.Handler.ListPilots)
		pilots.GET("/:username/", cfg.Handler.GetPilot)
	}

	airstrips := engine.Group("/airstrips")
	{
		airstrips.GET("/", cfg.Handler.ListAirstrips)
		airstrips.GET("/:ident/", cfg.Handler.GetAirstrip)
	}

	bases := engine.Group("/bases")
	{
		bases.GET("/", cfg.Handler.ListBases)
		bases.GET("/:ident/attached/", cfg.Handler.GetBaseAttached)
		bases.GET("/:ident/unattached/", cfg.Handler.GetBaseUnattached)
	}

	engine.GET("/checkouts/", cfg.Handler.FilterCheckouts)

	if cfg.ServeStatic {
		engine.Static("/static", cfg.StaticRoot)
	}
}
