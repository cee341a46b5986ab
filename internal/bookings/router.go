package bookings

import (
	"courtside/internal/shared/config"
	"courtside/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures booking routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	public := rg.Group("/bookings")
	{
		public.POST("/quote", controller.Quote)              // POST /api/v1/bookings/quote
		public.POST("/availability", controller.Availability) // POST /api/v1/bookings/availability
		public.POST("", controller.CreateBooking)            // POST /api/v1/bookings
		public.GET("/:id", controller.GetBooking)            // GET  /api/v1/bookings/:id
		public.POST("/:id/cancel", controller.CancelBooking) // POST /api/v1/bookings/:id/cancel
	}

	admin := rg.Group("/bookings")
	admin.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		admin.GET("", controller.ListBookings)                 // GET   /api/v1/bookings
		admin.POST("/:id/confirm", controller.ConfirmBooking)  // POST  /api/v1/bookings/:id/confirm
		admin.POST("/:id/decline", controller.DeclineBooking)  // POST  /api/v1/bookings/:id/decline
		admin.PATCH("/:id", controller.UpdateBooking)          // PATCH /api/v1/bookings/:id
	}
}
