package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloghub/microservices/internal/api/handler"
	"github.com/bloghub/microservices/internal/api/middleware"
	"github.com/bloghub/microservices/internal/auth"
	"github.com/bloghub/microservices/internal/core/ports"
	"github.com/bloghub/microservices/internal/core/service"
	mongodb "github.com/bloghub/microservices/internal/infrastructure/db/mongo"
)

// NewUserRouter builds the Echo instance for the user service with all
// routes registered.
func NewUserRouter(
	db *mongo.Database,
	issuer *auth.Issuer,
	verifier *auth.Verifier,
	posts ports.PostFetcher,
	audit ports.AuthEventRecorder,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userservice"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, issuer, verifier, log)
	userService := service.NewUserService(userRepo, posts, log)

	authHandler := handler.NewAuthHandler(authService, audit)
	userHandler := handler.NewUserHandler(userService)
	authGate := middleware.Auth(verifier)

	// --- Auth routes (open) ---
	e.POST("/auth/sign-up", authHandler.SignUp)
	e.POST("/auth/sign-in", authHandler.SignIn)
	e.GET("/auth/validate-token", authHandler.ValidateToken)

	// --- User routes (authenticated) ---
	users := e.Group("/users", authGate)
	users.GET("/", userHandler.List, middleware.RequireAdmin())
	users.GET("/detail", userHandler.Detail)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, nil)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
