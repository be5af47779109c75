package routes

import (
	"net/http"

	"claims-analytics-backend/internal/api/handlers"
	"claims-analytics-backend/internal/api/middleware"
	"claims-analytics-backend/internal/auth"
	"claims-analytics-backend/internal/config"
	"claims-analytics-backend/internal/repository"
	"claims-analytics-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	claimRepo := repository.NewClaimRepository(db)
	sessionRepo := repository.NewUploadSessionRepository(db)
	configurationRepo := repository.NewConfigurationRepository(db)
	highCostRepo := repository.NewHighCostClaimantRepository(db)

	// Initialize services
	identityService := service.NewIdentityService(profileRepo)
	claimService := service.NewClaimService(claimRepo)
	sessionService := service.NewUploadSessionService(sessionRepo)
	configurationService := service.NewConfigurationService(configurationRepo, validator)
	dashboardService := service.NewDashboardService(claimRepo, sessionRepo)
	ingestService := service.NewIngestService(sessionRepo, claimRepo)
	highCostService := service.NewHighCostClaimantService(highCostRepo)
	progressHub := service.NewProgressHub(sessionRepo, cfg.ProgressPollInterval(), cfg.ProgressRecentSessions)

	// Initialize session auth
	authService, err := auth.NewService(cfg.SessionSecret, cfg.SessionCookieName, cfg.SessionTTL(), profileRepo)
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewHandler(authService, cfg.IsProduction())
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	claimsHandler := handlers.NewClaimsHandler(identityService, claimService)
	sessionsHandler := handlers.NewSessionsHandler(identityService, sessionService)
	configurationsHandler := handlers.NewConfigurationsHandler(identityService, configurationService)
	dashboardHandler := handlers.NewDashboardHandler(identityService, dashboardService)
	uploadHandler := handlers.NewUploadHandler(identityService, ingestService)
	progressHandler := handlers.NewProgressHandler(identityService, progressHub, cfg.ProgressMaxStreamAge())
	highCostHandler := handlers.NewHighCostClaimantsHandler(identityService, highCostService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Session routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
	}

	// API routes, all behind the session cookie
	api := router.Group("/api")
	api.Use(authMiddleware.RequireSession())
	{
		api.GET("/claims", claimsHandler.List)

		api.GET("/sessions", sessionsHandler.List)

		api.GET("/configurations", configurationsHandler.List)
		api.POST("/configurations", configurationsHandler.Create)

		api.GET("/dashboard/stats", dashboardHandler.Stats)

		api.POST("/upload", uploadHandler.Upload)
		api.GET("/upload/progress", progressHandler.Stream)

		api.GET("/high-cost-claimants", highCostHandler.List)
		api.POST("/high-cost-claimants", highCostHandler.Import)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
	})

	return router, nil
}
