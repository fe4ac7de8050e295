package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/adelphi-health/companion-api/docs"
	"github.com/adelphi-health/companion-api/internal/api/handler"
	"github.com/adelphi-health/companion-api/internal/api/middleware"
	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
	"github.com/adelphi-health/companion-api/internal/core/service"
	mongodb "github.com/adelphi-health/companion-api/internal/infrastructure/db/mongo"
	redisdb "github.com/adelphi-health/companion-api/internal/infrastructure/db/redis"
)

// RouterConfig carries what the router needs beyond its datastores.
type RouterConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	Dispatcher ports.CarePingDispatcher
	Logger     zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("companion"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	partnerRepo := mongodb.NewPartnerRepository(db)
	logRepo := mongodb.NewLogRepository(db)
	contentRepo := mongodb.NewContentRepository(db)
	communityRepo := mongodb.NewCommunityRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)

	codeRegistry := redisdb.NewInviteCodeRegistry(rdb)
	carePingDedup := redisdb.NewCarePingDedup(rdb)

	// --- Services ---
	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, profileRepo, issuer, cfg.Logger)
	profileService := service.NewProfileService(userRepo, profileRepo, cfg.Logger)
	partnerService := service.NewPartnerService(partnerRepo, codeRegistry, cfg.Logger)
	trackingService := service.NewTrackingService(logRepo, cfg.Dispatcher, cfg.Logger)
	dashboardService := service.NewDashboardService(partnerRepo, logRepo, cfg.Logger)
	insightService := service.NewInsightService(logRepo, cfg.Logger)
	contentService := service.NewContentService(contentRepo, cfg.Logger)
	communityService := service.NewCommunityService(communityRepo, cfg.Logger)
	notificationService := service.NewCarePingService(partnerRepo, notificationRepo, carePingDedup, cfg.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	trackingHandler := handler.NewTrackingHandler(trackingService, insightService)
	partnerHandler := handler.NewPartnerHandler(partnerService, notificationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	contentHandler := handler.NewContentHandler(contentService)
	communityHandler := handler.NewCommunityHandler(communityService)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated routes ---
	auth := middleware.Auth(issuer, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	primaryOnly := middleware.RBAC(domain.RolePrimary)

	v1 := e.Group("/v1", auth)

	v1.GET("/me", authHandler.Me)
	v1.POST("/onboarding", profileHandler.CompleteOnboarding)
	v1.GET("/profile", profileHandler.GetProfile)
	v1.PUT("/profile", profileHandler.UpdateProfile)

	v1.POST("/reminders", profileHandler.CreateReminder)
	v1.GET("/reminders", profileHandler.ListReminders)
	v1.PUT("/reminders/:id", profileHandler.UpdateReminder)
	v1.DELETE("/reminders/:id", profileHandler.DeleteReminder)
	v1.POST("/push-token", profileHandler.RegisterPushToken)

	v1.POST("/logs/symptoms", trackingHandler.LogSymptom)
	v1.GET("/logs/symptoms", trackingHandler.ListSymptomLogs)
	v1.GET("/logs/symptoms/today", trackingHandler.TodaySymptomLogs)
	v1.POST("/logs/mood", trackingHandler.LogMood)
	v1.GET("/logs/mood", trackingHandler.ListMoodLogs)
	v1.GET("/logs/mood/today", trackingHandler.TodayMood)
	v1.POST("/logs/lifestyle", trackingHandler.LogLifestyle)
	v1.GET("/logs/lifestyle", trackingHandler.ListLifestyleLogs)
	v1.GET("/logs/lifestyle/today", trackingHandler.TodayLifestyle)
	v1.GET("/insights", trackingHandler.Insights)
	v1.GET("/checkin", dashboardHandler.CheckinSummary)

	v1.POST("/partner/invite", partnerHandler.CreateInvite, primaryOnly)
	v1.POST("/partner/accept/:code", partnerHandler.AcceptInvite)
	v1.GET("/partner/link", partnerHandler.GetLink)
	v1.DELETE("/partner/link", partnerHandler.RevokeLink, primaryOnly)
	v1.PUT("/partner/link/settings", partnerHandler.UpdateLinkSettings, primaryOnly)
	v1.GET("/partner/dashboard", dashboardHandler.PartnerDashboard)
	v1.GET("/partner/notifications", partnerHandler.Notifications)

	v1.GET("/symptoms", contentHandler.ListSymptoms)
	v1.POST("/symptoms", contentHandler.ProposeSymptom)
	v1.GET("/articles", contentHandler.ListArticles)
	v1.POST("/articles", contentHandler.CreateArticle, adminOnly)
	v1.GET("/articles/:id", contentHandler.GetArticle)
	v1.POST("/articles/:id/bookmark", contentHandler.Bookmark)
	v1.DELETE("/articles/:id/bookmark", contentHandler.RemoveBookmark)
	v1.GET("/bookmarks", contentHandler.Bookmarks)

	v1.GET("/events", contentHandler.ListEvents)
	v1.POST("/events", contentHandler.CreateEvent, adminOnly)
	v1.GET("/events/:id", contentHandler.GetEvent)
	v1.GET("/specialists", contentHandler.ListSpecialists)
	v1.POST("/specialists", contentHandler.CreateSpecialist, adminOnly)
	v1.GET("/specialists/:id", contentHandler.GetSpecialist)

	v1.GET("/groups", communityHandler.ListGroups)
	v1.GET("/groups/joined", communityHandler.JoinedGroups)
	v1.POST("/groups/:id/join", communityHandler.JoinGroup)
	v1.POST("/groups/:id/leave", communityHandler.LeaveGroup)
	v1.GET("/groups/:id/posts", communityHandler.GroupPosts)
	v1.POST("/groups/:id/posts", communityHandler.CreatePost)
	v1.POST("/posts/:id/react", communityHandler.ReactToPost)
	v1.GET("/posts/:id/comments", communityHandler.PostComments)
	v1.POST("/posts/:id/comments", communityHandler.CreateComment)

	return e
}
