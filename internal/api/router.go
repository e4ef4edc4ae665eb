package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	"github.com/devfolio/portfolio-api/internal/api/handler"
	"github.com/devfolio/portfolio-api/internal/api/middleware"
	"github.com/devfolio/portfolio-api/internal/core/ports"
	"github.com/devfolio/portfolio-api/internal/core/service"
	mongorepo "github.com/devfolio/portfolio-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/devfolio/portfolio-api/internal/infrastructure/db/redis"
	"github.com/devfolio/portfolio-api/internal/infrastructure/http/handlers"
)

// RouterConfig carries everything the router needs to assemble the service
// graph. Infrastructure clients are built in main and injected here.
type RouterConfig struct {
	DB    *mongodrv.Database
	Redis *redis.Client

	Mailer ports.Mailer
	Images ports.ObjectStore
	Icons  ports.ObjectStore

	Token service.TokenConfig

	// PublicDir is served at /public for locally stored icons.
	PublicDir string
	// FrontendURL, when set, restricts CORS to the portfolio frontend.
	FrontendURL string

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	corsOrigins := []string{"*"}
	if cfg.FrontendURL != "" {
		corsOrigins = []string{cfg.FrontendURL}
	}
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(cfg.DB)
	skillRepo := mongorepo.NewSkillRepository(cfg.DB)
	experienceRepo := mongorepo.NewExperienceRepository(cfg.DB)
	projectRepo := mongorepo.NewProjectRepository(cfg.DB)
	contactRepo := mongorepo.NewContactRepository(cfg.DB)
	deduper := redisinfra.NewSubmissionDeduper(cfg.Redis)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.Token)
	skillService := service.NewSkillService(skillRepo)
	experienceService := service.NewExperienceService(experienceRepo)
	projectService := service.NewProjectService(projectRepo)
	contactService := service.NewContactService(contactRepo, cfg.Mailer, deduper, cfg.Log)
	uploadService := service.NewUploadService(cfg.Images, cfg.Icons)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	skillHandler := handler.NewSkillHandler(skillService, uploadService)
	experienceHandler := handler.NewExperienceHandler(experienceService)
	projectHandler := handler.NewProjectHandler(projectService)
	contactHandler := handler.NewContactHandler(contactService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	authn := middleware.Authenticate(authService)

	// --- Auth ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/verify", authHandler.Verify)
	auth.POST("/refresh", authHandler.Refresh)

	// --- Skills ---
	skills := e.Group("/api/skills")
	skills.GET("", skillHandler.List)
	skills.GET("/:id", skillHandler.Get)
	skills.POST("", skillHandler.Create, authn)
	skills.POST("/with-icon", skillHandler.CreateWithIcon, authn)
	skills.PUT("/:id", skillHandler.Update, authn)
	skills.PUT("/:id/with-icon", skillHandler.UpdateWithIcon, authn)
	skills.PATCH("/:id/toggle-publish", skillHandler.TogglePublish, authn)
	skills.DELETE("/:id", skillHandler.Delete, authn)

	// --- Experiences ---
	experiences := e.Group("/api/experiences")
	experiences.GET("", experienceHandler.List)
	experiences.GET("/:id", experienceHandler.Get)
	experiences.POST("", experienceHandler.Create, authn)
	experiences.PUT("/:id", experienceHandler.Update, authn)
	experiences.PATCH("/:id/toggle-publish", experienceHandler.TogglePublish, authn)
	experiences.DELETE("/:id", experienceHandler.Delete, authn)

	// --- Projects ---
	projects := e.Group("/api/projects")
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.POST("", projectHandler.Create, authn)
	projects.PUT("/:id", projectHandler.Update, authn)
	projects.PATCH("/:id/toggle-publish", projectHandler.TogglePublish, authn)
	projects.PATCH("/:id/toggle-featured", projectHandler.ToggleFeatured, authn)
	projects.DELETE("/:id", projectHandler.Delete, authn)

	// --- Contact (form submission is public) ---
	contact := e.Group("/api/contact")
	contact.GET("", contactHandler.List)
	contact.GET("/stats/summary", contactHandler.Stats)
	contact.GET("/:id", contactHandler.Get)
	contact.POST("", contactHandler.Create)
	contact.PATCH("/:id/mark-read", contactHandler.MarkRead, authn)
	contact.PATCH("/:id/mark-unread", contactHandler.MarkUnread, authn)
	contact.DELETE("/:id", contactHandler.Delete, authn)

	// --- Uploads ---
	upload := e.Group("/api/upload", authn)
	upload.POST("", uploadHandler.Image)
	upload.POST("/multiple", uploadHandler.Multiple)
	upload.POST("/project-image", uploadHandler.ProjectImage)
	upload.POST("/skill-icon", uploadHandler.SkillIcon)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(cfg.DB, cfg.Redis)

	e.GET("/api/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/api/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if cfg.PublicDir != "" {
		e.Static("/public", cfg.PublicDir)
	}

	return e
}
