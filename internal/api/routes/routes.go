package routes

import (
	"log"
	"time"

	"band-scheduler-backend/internal/api/handlers"
	"band-scheduler-backend/internal/api/middleware"
	"band-scheduler-backend/internal/auth"
	"band-scheduler-backend/internal/config"
	"band-scheduler-backend/internal/hub"
	"band-scheduler-backend/internal/repository"
	"band-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
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
	gigRepo := repository.NewGigRepository(db)
	bandMemberRepo := repository.NewBandMemberRepository(db)
	instrumentRepo := repository.NewInstrumentRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Start the event hub
	eventHub := hub.NewHub()
	go eventHub.Run()

	// Initialize services
	policyService := service.NewPolicyService(bandMemberRepo, roleRepo)
	gigService := service.NewGigService(gigRepo, bandMemberRepo, policyService, validator, eventHub)
	bandService := service.NewBandService(bandMemberRepo, instrumentRepo, policyService, validator, eventHub)
	roleService := service.NewRoleService(roleRepo, policyService, validator)

	// Initialize auth services
	authService, err := auth.NewAuthService(userRepo, bandService, auth.NewLogMailer(), auth.Options{
		JWTSecret:           cfg.JWTSecret,
		TokenTTL:            time.Duration(cfg.JWTTTLMinutes) * time.Minute,
		VerificationTTL:     time.Duration(cfg.VerificationTTLHours) * time.Hour,
		VerificationBaseURL: cfg.VerificationBaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService, userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	gigHandler := handlers.NewGigHandler(gigService)
	bandMemberHandler := handlers.NewBandMemberHandler(bandService)
	instrumentHandler := handlers.NewInstrumentHandler(bandService)
	roleHandler := handlers.NewRoleHandler(roleService)
	calendarHandler := handlers.NewCalendarHandler(gigService)
	eventsHandler := handlers.NewEventsHandler(eventHub)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Authentication routes
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/signup", authHandler.SignUp)
			authRoutes.POST("/signin", authHandler.SignIn)
			authRoutes.POST("/refresh", authHandler.Refresh)
			authRoutes.POST("/signout", authHandler.SignOut)
			authRoutes.POST("/verify", authHandler.VerifyEmail)
			authRoutes.POST("/verification-email", authMiddleware.RequireAuth(), authHandler.SendVerificationEmail)
			authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		}

		// Profile routes
		profile := v1.Group("/profile")
		profile.Use(authMiddleware.RequireAuth())
		{
			profile.PUT("/display-name", authHandler.UpdateDisplayName)
			profile.PUT("/password", authHandler.UpdatePassword)
		}

		// Gig routes
		gigs := v1.Group("/gigs")
		gigs.Use(authMiddleware.RequireAuth())
		{
			gigs.GET("", gigHandler.ListGigs)
			gigs.POST("", gigHandler.CreateGig)
			gigs.GET("/:id", gigHandler.GetGig)
			gigs.PUT("/:id", gigHandler.UpdateGig)
			gigs.PUT("/:id/availability", gigHandler.SetAvailability)
			gigs.GET("/:id/calendar.ics", calendarHandler.DownloadICS)
			gigs.GET("/:id/calendar/google", calendarHandler.GoogleLink)
			gigs.GET("/:id/calendar/outlook", calendarHandler.OutlookLink)
		}

		// Roster routes
		members := v1.Group("/band-members")
		members.Use(authMiddleware.RequireAuth())
		{
			members.GET("", bandMemberHandler.ListMembers)
			members.POST("", bandMemberHandler.AddMember)
			members.DELETE("/:id", bandMemberHandler.RemoveMember)
			members.PUT("/:id/name", bandMemberHandler.RenameMember)
			members.PUT("/:id/instrument", bandMemberHandler.SetInstrument)
		}

		// Instrument registry routes
		instruments := v1.Group("/instruments")
		instruments.Use(authMiddleware.RequireAuth())
		{
			instruments.GET("", instrumentHandler.ListInstruments)
			instruments.POST("", instrumentHandler.AddInstrument)
			instruments.DELETE("/:name", instrumentHandler.RemoveInstrument)
		}

		// Role routes
		roles := v1.Group("/roles")
		roles.Use(authMiddleware.RequireAuth())
		{
			roles.GET("/me", roleHandler.GetMyRoles)
			roles.GET("", roleHandler.ListRoles)
			roles.PUT("/:memberId", roleHandler.SetRole)
		}

		// Live event stream
		v1.GET("/events", authMiddleware.RequireAuth(), eventsHandler.Stream)
	}

	return router
}
