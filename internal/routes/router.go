package routes

import (
	"net/http"

	"postal-pickup-api/internal/config"
	"postal-pickup-api/internal/delivery/http/handler"
	"postal-pickup-api/internal/infrastructure/database/postgres"
	"postal-pickup-api/internal/logger"
	"postal-pickup-api/internal/middleware"
	"postal-pickup-api/internal/tracking"
	"postal-pickup-api/internal/usecase/pickup"
	"postal-pickup-api/internal/usecase/user"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB, publisher tracking.Publisher) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst)

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeMiddleware())
	router.Use(rateLimiter.Middleware())

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	pickupRepository := postgres.NewPickupRepository(db)

	pickupService := pickup.NewService(pickupRepository, userRepository, publisher)
	userService := user.NewService(userRepository, cfg)

	pickupHandler := handler.NewPickupHandler(pickupService)
	userHandler := handler.NewUserHandler(userService, pickupService)

	v1 := router.Group("/api/v1")
	{
		userHandler.RegisterPublicRoutes(v1)
		pickupHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHandler.RegisterProtectedRoutes(protected)
			pickupHandler.RegisterCustomerRoutes(protected)

			operator := protected.Group("")
			operator.Use(middleware.OperatorOnly())
			{
				pickupHandler.RegisterOperatorRoutes(operator)
			}

			admin := protected.Group("")
			admin.Use(middleware.AdminOnly())
			{
				pickupHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
