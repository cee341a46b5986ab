package pricing

import (
	"courtside/internal/shared/config"
	"courtside/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupPricingRoutes configures admin pricing routes
func SetupPricingRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	group := rg.Group("/pricing")
	group.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		group.GET("", controller.ListRules)                 // GET    /api/v1/pricing
		group.POST("", controller.UpsertRule)               // POST   /api/v1/pricing
		group.DELETE("/:courtId", controller.DeactivateRule) // DELETE /api/v1/pricing/:courtId
	}
}
