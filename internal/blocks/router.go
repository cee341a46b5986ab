package blocks

import (
	"courtside/internal/shared/config"
	"courtside/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBlockRoutes configures admin blocked-slot routes
func SetupBlockRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	group := rg.Group("/blocks")
	group.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		group.POST("", controller.BlockSlot)     // POST   /api/v1/blocks
		group.DELETE("", controller.UnblockSlot) // DELETE /api/v1/blocks
		group.GET("", controller.ListBlocked)    // GET    /api/v1/blocks
	}
}
