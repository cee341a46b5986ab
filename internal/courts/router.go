package courts

import (
	"github.com/gin-gonic/gin"
)

// SetupCourtRoutes configures all court catalog routes
func SetupCourtRoutes(rg *gin.RouterGroup, controller *Controller) {
	group := rg.Group("/courts")
	{
		group.GET("", controller.ListCourts)                      // GET  /api/v1/courts
		group.GET("/:id", controller.GetCourt)                    // GET  /api/v1/courts/:id
		group.POST("/:id/booked-slots", controller.GetBookedSlots) // POST /api/v1/courts/:id/booked-slots
	}
}
