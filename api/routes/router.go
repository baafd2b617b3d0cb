// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gatherly/internal/auth"
	"gatherly/internal/bookings"
	"gatherly/internal/discovery"
	"gatherly/internal/events"
	"gatherly/internal/notifications"
	"gatherly/internal/seats"
	"gatherly/internal/shared/config"
	"gatherly/internal/shared/database"
	"gatherly/internal/shared/middleware"
	"gatherly/internal/uploads"
	"gatherly/internal/users"
	"gatherly/pkg/cache"
	"gatherly/pkg/jwt"
	"gatherly/pkg/logger"
)

// Router wires every module's repository/service/controller chain and
// registers the HTTP surface.
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher notifications.Publisher
	log       *logger.Logger

	authMiddleware *middleware.AuthMiddleware
	cacheService   cache.Service

	userService  users.Service
	eventService events.Service
	seatService  seats.Service
}

func NewRouter(cfg *config.Config, db *database.DB, publisher notifications.Publisher, log *logger.Logger) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
		log:       log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	tokens := jwt.NewManager(r.config.JWT.Secret, r.config.JWT.JWTExpiresIn, r.config.JWT.RefreshExpiresIn)
	r.authMiddleware = middleware.NewAuthMiddleware(tokens, r.log)
	r.cacheService = cache.NewService(r.db.GetRedisClient())

	r.setupHealthRoutes(engine)

	// Uploaded event images are served straight off disk
	engine.Static(r.config.Upload.BaseURL, r.config.Upload.Path)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api, tokens)
		r.setupUserRoutes(api)
		r.setupEventRoutes(api)
		r.setupDiscoveryRoutes(api)
		r.setupSeatRoutes(api)
		r.setupBookingRoutes(api)
		r.setupUploadRoutes(api)
	}
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "gatherly-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "gatherly-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup, tokens *jwt.Manager) {
	userRepo := users.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(userRepo, tokens, r.log)
	authController := auth.NewController(authService)

	auth.RegisterRoutes(rg, authController, r.authMiddleware)
}

func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	userRepo := users.NewRepository(r.db.GetPostgreSQL())
	r.userService = users.NewService(userRepo, r.log)
	userController := users.NewController(r.userService)

	users.RegisterRoutes(rg, userController, r.authMiddleware)
}

func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	eventRepo := events.NewRepository(r.db.GetPostgreSQL())
	r.eventService = events.NewService(eventRepo, r.cacheService, r.log)
	eventController := events.NewController(r.eventService, r.userService)

	events.RegisterRoutes(rg, eventController, r.authMiddleware)
}

func (r *Router) setupDiscoveryRoutes(rg *gin.RouterGroup) {
	discoveryController := discovery.NewController(r.eventService, r.cacheService, r.log)
	discovery.RegisterRoutes(rg, discoveryController)
}

func (r *Router) setupSeatRoutes(rg *gin.RouterGroup) {
	seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
	r.seatService = seats.NewService(seatRepo, r.cacheService, r.config.Hall, r.log)
	seatController := seats.NewController(r.seatService)

	seats.RegisterRoutes(rg, seatController)
}

func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	seatClaims := seats.NewAtomicRedisOperations(r.db.GetRedisClient())

	bookingService := bookings.NewService(
		bookingRepo,
		r.eventService,
		r.userService,
		r.seatService,
		seatClaims,
		r.publisher,
		r.config.Redis.SeatClaimTTL,
		r.log,
	)
	bookingController := bookings.NewController(bookingService)

	bookings.RegisterRoutes(rg, bookingController, r.authMiddleware)
}

func (r *Router) setupUploadRoutes(rg *gin.RouterGroup) {
	uploadController := uploads.NewController(r.config.Upload, r.log)
	uploads.RegisterRoutes(rg, uploadController, r.authMiddleware)
}
