package routes

import (
	"github.com/gin-gonic/gin"

	adminhandlers "github.com/cotracker/cotracker/internal/interfaces/http/handlers/admin"
	"github.com/cotracker/cotracker/internal/interfaces/http/middleware"
	"github.com/cotracker/cotracker/internal/shared/constants"
)

// AdminRoutePrefix is where the admin site is mounted.
const AdminRoutePrefix = "/emerald"

type AdminRouteConfig struct {
	AuthHandler          *adminhandlers.AuthHandler
	ResourceHandler      *adminhandlers.ResourceHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	LoginRateLimiter     *middleware.RateLimitMiddleware
}

// SetupAdminRoutes registers the admin site. Login is the only route that
// does not require a token.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	site := engine.Group(AdminRoutePrefix)

	site.POST("/login", cfg.LoginRateLimiter.Limit(), cfg.AuthHandler.Login)

	authed := site.Group("")
	authed.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		authed.GET("/", cfg.AuthHandler.Index)

		h := cfg.ResourceHandler
		perm := cfg.PermissionMiddleware.RequirePermission

		pilots := authed.Group("/pilots")
		{
			pilots.GET("/", perm(constants.ResourcePilots, constants.ActionRead), h.ListPilots)
			pilots.POST("/", perm(constants.ResourcePilots, constants.ActionWrite), h.CreatePilot)
			pilots.DELETE("/:id/", perm(constants.ResourcePilots, constants.ActionWrite), h.DeletePilot)
		}

		airstrips := authed.Group("/airstrips")
		{
			airstrips.GET("/", perm(constants.ResourceAirstrips, constants.ActionRead), h.ListAirstrips)
			airstrips.POST("/", perm(constants.ResourceAirstrips, constants.ActionWrite), h.CreateAirstrip)
			airstrips.DELETE("/:id/", perm(constants.ResourceAirstrips, constants.ActionWrite), h.DeleteAirstrip)
			airstrips.POST("/:id/bases/:base_id/", perm(constants.ResourceAirstrips, constants.ActionWrite), h.AttachToBase)
			airstrips.DELETE("/:id/bases/:base_id/", perm(constants.ResourceAirstrips, constants.ActionWrite), h.DetachFromBase)
		}

		types := authed.Group("/aircraft-types")
		{
			types.GET("/", perm(constants.ResourceAircraftTypes, constants.ActionRead), h.ListAircraftTypes)
			types.POST("/", perm(constants.ResourceAircraftTypes, constants.ActionWrite), h.CreateAircraftType)
			types.DELETE("/:id/", perm(constants.ResourceAircraftTypes, constants.ActionWrite), h.DeleteAircraftType)
		}

		checkouts := authed.Group("/checkouts")
		{
			checkouts.GET("/", perm(constants.ResourceCheckouts, constants.ActionRead), h.ListCheckouts)
			checkouts.POST("/", perm(constants.ResourceCheckouts, constants.ActionWrite), h.CreateCheckout)
			checkouts.DELETE("/:id/", perm(constants.ResourceCheckouts, constants.ActionWrite), h.DeleteCheckout)
		}
	}
}
