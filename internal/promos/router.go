package promos

import (
	"courtside/internal/shared/config"
	"courtside/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupPromoRoutes configures promo code routes
func SetupPromoRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	promos := rg.Group("/promos")
	{
		promos.POST("/preview", controller.Preview) // POST /api/v1/promos/preview
	}

	admin := promos.Group("")
	admin.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		admin.GET("", controller.ListCodes)                 // GET    /api/v1/promos
		admin.POST("", controller.CreateCode)               // POST   /api/v1/promos
		admin.PUT("/:code", controller.UpdateCode)          // PUT    /api/v1/promos/:code
		admin.DELETE("/:code", controller.DeactivateCode)   // DELETE /api/v1/promos/:code
	}
}
