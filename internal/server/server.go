// Package server assembles services, handlers and middleware into the HTTP router.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"bankapp/internal/config"
	_ "bankapp/internal/docs" // Import swagger docs
	"bankapp/internal/handlers"
	"bankapp/internal/middleware"
	"bankapp/internal/notify"
	"bankapp/internal/quotes"
	"bankapp/internal/services"
	"bankapp/internal/strava"
	"bankapp/internal/validator"
)

// Services holds every dependency the router needs.
type Services struct {
	Users      services.UserServicer
	Goals      services.GoalServicer
	Settings   services.SettingsServicer
	Onboarding services.OnboardingServicer
	Strava     services.StravaServicer
	Audit      services.AuditServicer
	Stocks     handlers.QuoteProvider
	Crypto     handlers.QuoteProvider
}

// NewServices wires the production services onto db. Outbound calls share httpClient.
func NewServices(cfg *config.Config, db *gorm.DB, publisher notify.Publisher, httpClient *http.Client) (Services, error) {
	crypto, err := quotes.NewCryptoProvider(httpClient, cfg.Market.USDZARRate)
	if err != nil {
		return Services{}, fmt.Errorf("failed to create crypto provider: %w", err)
	}

	stravaClient := strava.NewClient(httpClient, cfg.Strava)

	return Services{
		Users:      services.NewUserService(db),
		Goals:      services.NewGoalService(db, publisher),
		Settings:   services.NewSettingsService(db),
		Onboarding: services.NewOnboardingService(db),
		Strava:     services.NewStravaService(db, stravaClient, cfg.JWT.Secret),
		Audit:      services.NewAuditService(db),
		Stocks:     quotes.NewJSEProvider(httpClient),
		Crypto:     crypto,
	}, nil
}

// NewRouter builds the Gin engine with all routes mounted under /api.
func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	validator.Register()

	authHandler := handlers.NewAuthHandler(svc.Users, svc.Audit, cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	goalHandler := handlers.NewGoalHandler(svc.Goals, svc.Audit)
	settingsHandler := handlers.NewSettingsHandler(svc.Settings, svc.Audit)
	onboardingHandler := handlers.NewOnboardingHandler(svc.Onboarding, svc.Audit)
	stravaHandler := handlers.NewStravaHandler(svc.Strava, svc.Audit, cfg.FrontendURL)
	marketHandler := handlers.NewMarketHandler(svc.Stocks, svc.Crypto)
	configHandler := handlers.NewConfigHandler(cfg.Strava)
	auditHandler := handlers.NewAuditHandler(svc.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	api.GET("/onboarding/username-available/:username", onboardingHandler.UsernameAvailable)
	api.GET("/strava/callback", stravaHandler.Callback)
	api.GET("/stocks/jse", marketHandler.JSEStocks)
	api.GET("/crypto/prices", marketHandler.CryptoPrices)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret))

	protected.GET("/auth/me", authHandler.Me)

	goals := protected.Group("/goals")
	goals.GET("", goalHandler.ListGoals)
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.POST("/:id/save", goalHandler.SaveToGoal)

	settings := protected.Group("/settings")
	settings.GET("", settingsHandler.GetSettings)
	settings.PUT("", settingsHandler.UpdateSettings)
	settings.POST("/initialize", settingsHandler.InitializeSettings)

	onboarding := protected.Group("/onboarding")
	onboarding.GET("/status", onboardingHandler.GetStatus)
	onboarding.POST("/step1", onboardingHandler.SaveProfile)
	onboarding.POST("/step2", onboardingHandler.SaveAddress)
	onboarding.POST("/complete", onboardingHandler.Complete)

	stravaRoutes := protected.Group("/strava")
	stravaRoutes.GET("/auth", stravaHandler.Auth)
	stravaRoutes.POST("/disconnect", stravaHandler.Disconnect)
	stravaRoutes.GET("/status", stravaHandler.Status)
	stravaRoutes.GET("/activities", stravaHandler.Activities)
	stravaRoutes.GET("/stats", stravaHandler.Stats)

	protected.GET("/config/strava", configHandler.StravaConfig)
	protected.GET("/audit-logs", auditHandler.ListLogs)

	return router
}
