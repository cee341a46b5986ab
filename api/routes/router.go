// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"courtside/internal/audit"
	"courtside/internal/availability"
	"courtside/internal/blocks"
	"courtside/internal/bookings"
	"courtside/internal/courts"
	"courtside/internal/pricing"
	"courtside/internal/promos"
	"courtside/internal/schedule"
	"courtside/internal/shared/config"
	"courtside/internal/shared/database"
	"courtside/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config        *config.Config
	db            *database.DB
	cache         cache.Service
	auditProducer audit.Producer

	workday         *schedule.Workday
	courtService    courts.Service
	availability    availability.Service
	pricingService  pricing.Service
	promoService    promos.Service
	bookingService  bookings.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, cacheSvc cache.Service, auditProducer audit.Producer) (*Router, error) {
	workday, err := schedule.NewWorkday(cfg.Venue.Timezone, cfg.Venue.WorkdayEndMinute)
	if err != nil {
		return nil, err
	}

	return &Router{
		config:        cfg,
		db:            db,
		cache:         cacheSvc,
		auditProducer: auditProducer,
		workday:       workday,
	}, nil
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	bookings.RegisterValidators()
	r.buildServices()

	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupCourtRoutes(api)
		r.setupBookingRoutes(api)
		r.setupBlockRoutes(api)
		r.setupPricingRoutes(api)
		r.setupPromoRoutes(api)
	}
}

// buildServices wires the service graph. Ordering matters: bookings sits
// on top of every other service.
func (r *Router) buildServices() {
	pg := r.db.GetPostgreSQL()

	courtRepo := courts.NewRepository(pg)
	r.courtService = courts.NewService(courtRepo, r.cache, r.config.Redis.CatalogTTL)

	availabilityRepo := availability.NewRepository(pg)
	r.availability = availability.NewService(availabilityRepo, r.courtService, r.workday)

	pricingRepo := pricing.NewRepository(pg)
	r.pricingService = pricing.NewService(pricingRepo, r.workday, r.cache, r.config.Redis.PricingTTL)

	promoRepo := promos.NewRepository(pg)
	r.promoService = promos.NewService(promoRepo, r.workday)

	bookingRepo := bookings.NewRepository(pg)
	r.bookingService = bookings.NewService(bookingRepo, r.courtService, r.availability,
		r.pricingService, r.promoService, r.workday, audit.NewSink(r.auditProducer))
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "courtside-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "courtside-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupCourtRoutes configures court catalog routes
func (r *Router) setupCourtRoutes(rg *gin.RouterGroup) {
	courtController := courts.NewController(r.courtService, r.availability)
	courts.SetupCourtRoutes(rg, courtController)
}

// setupBookingRoutes configures booking routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingController := bookings.NewController(r.bookingService)
	bookings.SetupBookingRoutes(rg, bookingController, r.config)
}

// setupBlockRoutes configures admin slot block routes
func (r *Router) setupBlockRoutes(rg *gin.RouterGroup) {
	blockRepo := blocks.NewRepository(r.db.GetPostgreSQL())
	blockService := blocks.NewService(blockRepo, r.workday)
	blockController := blocks.NewController(blockService)
	blocks.SetupBlockRoutes(rg, blockController, r.config)
}

// setupPricingRoutes configures admin pricing routes
func (r *Router) setupPricingRoutes(rg *gin.RouterGroup) {
	pricingController := pricing.NewController(r.pricingService)
	pricing.SetupPricingRoutes(rg, pricingController, r.config)
}

// setupPromoRoutes configures promo code routes
func (r *Router) setupPromoRoutes(rg *gin.RouterGroup) {
	promoController := promos.NewController(r.promoService, r.workday)
	promos.SetupPromoRoutes(rg, promoController, r.config)
}
