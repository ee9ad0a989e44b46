package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloghub/microservices/internal/api"
	"github.com/bloghub/microservices/internal/auth"
	"github.com/bloghub/microservices/internal/config"
	"github.com/bloghub/microservices/internal/core/service"
	"github.com/bloghub/microservices/internal/infrastructure/client"
	mongodb "github.com/bloghub/microservices/internal/infrastructure/db/mongo"
	"github.com/bloghub/microservices/internal/infrastructure/queue"
	"github.com/bloghub/microservices/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadUser()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "userservice",
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

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	issuer, err := auth.NewIssuer(cfg.JWTSecret, cfg.JWTAlgorithm, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	if err != nil {
		log.Fatal().Err(err).Msg("token issuer configuration invalid")
	}
	verifier, err := auth.NewVerifier(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		log.Fatal().Err(err).Msg("token verifier configuration invalid")
	}

	posts := client.NewPostClient(cfg.PostServiceURL, time.Duration(cfg.ClientTimeoutSeconds)*time.Second, log)

	// Auth events flow through a sharded background pool so request latency
	// never waits on the audit write.
	auditService := service.NewAuditService(mongodb.NewAuthEventRepository(db), log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewUserRouter(db, issuer, verifier, posts, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("user service listening")
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
