package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/genconfi/groomify-api/docs"
	"github.com/genconfi/groomify-api/internal/api/handler"
	"github.com/genconfi/groomify-api/internal/api/middleware"
	"github.com/genconfi/groomify-api/internal/core/ports"
	"github.com/genconfi/groomify-api/internal/core/security"
	"github.com/genconfi/groomify-api/internal/core/service"
	"github.com/genconfi/groomify-api/internal/infrastructure/config"
	mongodb "github.com/genconfi/groomify-api/internal/infrastructure/db/mongo"
	redisdb "github.com/genconfi/groomify-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The mailer is injected so the caller controls delivery (and its lifecycle,
// when it is the async dispatcher).
func NewRouter(db *mongo.Database, rdb *redis.Client, mailer ports.ResetMailer, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("groomify_auth"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	nonceStore := redisdb.NewResetNonceStore(rdb)
	hasher := security.NewPasswordHasher(0)
	accessCodec := security.NewTokenCodec(cfg.AccessTokenSecret, cfg.AccessTokenTTL())
	resetCodec := security.NewResetTokenCodec(cfg.ResetTokenSecret, cfg.ResetTokenTTL())

	authService := service.NewAuthService(userRepo, nonceStore, mailer, hasher, accessCodec, resetCodec, log)
	authHandler := handler.NewAuthHandler(authService)
	authMiddleware := middleware.Auth(authService)

	// --- Auth routes ---
	v1 := e.Group("/api/v1")
	v1.POST("/auth/signup", authHandler.Signup)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/me", authHandler.Me, authMiddleware)
	v1.POST("/auth/forgot-password", authHandler.ForgotPassword)
	v1.POST("/auth/reset-password", authHandler.ResetPassword)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
