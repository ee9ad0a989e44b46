package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloghub/microservices/internal/api"
	"github.com/bloghub/microservices/internal/config"
	"github.com/bloghub/microservices/internal/core/ports"
	"github.com/bloghub/microservices/internal/infrastructure/client"
	mongodb "github.com/bloghub/microservices/internal/infrastructure/db/mongo"
	redisdb "github.com/bloghub/microservices/internal/infrastructure/db/redis"
	"github.com/bloghub/microservices/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadPost()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "postservice",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	postRepo := mongodb.NewPostRepository(db)
	if err := postRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("post index creation failed")
	}

	// Redis is an optimisation, not a dependency: without it every request
	// pays a full round trip to the user service.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, token validation is uncached")
		rdb = nil
	}

	var validator ports.TokenValidator = client.NewAuthClient(
		cfg.UserServiceURL,
		time.Duration(cfg.ValidateTimeoutSeconds)*time.Second,
		log,
	)
	if rdb != nil && cfg.TokenCacheTTLSeconds > 0 {
		validator = redisdb.NewCachingValidator(validator, rdb, time.Duration(cfg.TokenCacheTTLSeconds)*time.Second)
	}

	e := api.NewPostRouter(db, rdb, validator, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("post service listening")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
