package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/devsolutions/intake-api/docs"
	"github.com/devsolutions/intake-api/internal/api/handler"
	"github.com/devsolutions/intake-api/internal/api/middleware"
	"github.com/devsolutions/intake-api/internal/core/service"
	mongodb "github.com/devsolutions/intake-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devsolutions/intake-api/internal/infrastructure/db/redis"
	"github.com/devsolutions/intake-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// All collaborators are passed in explicitly; nothing here reads globals.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("intake"))

	// --- Dependencies ---
	sessions := redisdb.NewSessionStore(rdb)

	submissionRepo := mongodb.NewSubmissionRepository(db)
	submissionService := service.NewSubmissionService(submissionRepo, log)

	authRepo := mongodb.NewAuthRepository(db)
	profileRepo := mongodb.NewAdminProfileRepository(db)
	authService := service.NewAuthService(authRepo, profileRepo, sessions, cfg.JWTSecret, cfg.TokenTTL)

	submissionHandler := handler.NewSubmissionHandler(submissionService)
	adminHandler := handler.NewAdminHandler(submissionService)
	authHandler := handler.NewAuthHandler(authService)

	authMiddleware := middleware.Auth(cfg.JWTSecret, sessions)
	adminGate := middleware.AdminGate(authService, log)

	// --- Public routes ---
	e.POST("/v1/submissions", submissionHandler.Create)
	e.GET("/v1/intake-options", submissionHandler.IntakeOptions)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Admin routes (auth gate: valid session + admin profile) ---
	admin := e.Group("/v1/admin", authMiddleware, adminGate)
	admin.GET("/submissions", adminHandler.List)
	admin.GET("/submissions/:id", adminHandler.Get)
	admin.PATCH("/submissions/:id", adminHandler.Update)
	admin.GET("/me", adminHandler.Me)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
