package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloghub/microservices/internal/api/handler"
	"github.com/bloghub/microservices/internal/api/middleware"
	"github.com/bloghub/microservices/internal/core/ports"
	"github.com/bloghub/microservices/internal/core/service"
	mongodb "github.com/bloghub/microservices/internal/infrastructure/db/mongo"
)

// NewPostRouter builds the Echo instance for the post service with all
// routes registered. Every post route sits behind the remote authentication
// gate backed by the user service.
func NewPostRouter(
	db *mongo.Database,
	rdb *redis.Client,
	validator ports.TokenValidator,
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
	e.Use(echoprometheus.NewMiddleware("postservice"))

	// --- Dependencies ---
	postRepo := mongodb.NewPostRepository(db)
	postService := service.NewPostService(postRepo, log)
	postHandler := handler.NewPostHandler(postService)

	// --- Post routes (authenticated via the user service) ---
	posts := e.Group("/posts", middleware.RemoteAuth(validator))
	posts.GET("/", postHandler.List)
	posts.POST("/create", postHandler.Create)
	posts.GET("/details", postHandler.Details)
	posts.PATCH("/edit", postHandler.Edit)
	posts.DELETE("/", postHandler.Delete)
	posts.GET("/user-posts", postHandler.UserPosts)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
