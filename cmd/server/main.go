package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/adelphi-health/companion-api/internal/api"
	"github.com/adelphi-health/companion-api/internal/core/service"
	mongodb "github.com/adelphi-health/companion-api/internal/infrastructure/db/mongo"
	redisdb "github.com/adelphi-health/companion-api/internal/infrastructure/db/redis"
	"github.com/adelphi-health/companion-api/internal/infrastructure/queue"
	"github.com/adelphi-health/companion-api/internal/pkg/config"
	"github.com/adelphi-health/companion-api/pkg/logger"
)

// @title        Companion API
// @version      1.0
// @description  Menopause health tracking and partner support backend.
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	userRepo := mongodb.NewUserRepository(db)
	partnerRepo := mongodb.NewPartnerRepository(db)
	logRepo := mongodb.NewLogRepository(db)
	contentRepo := mongodb.NewContentRepository(db)
	communityRepo := mongodb.NewCommunityRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)

	for _, idx := range []interface {
		EnsureIndexes(context.Context) error
	}{userRepo, partnerRepo, logRepo, contentRepo, communityRepo, profileRepo, notificationRepo} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Care ping workers ---
	carePingService := service.NewCarePingService(
		partnerRepo,
		notificationRepo,
		redisdb.NewCarePingDedup(rdb),
		log,
	)
	dispatcher := queue.NewDispatcher(cfg.CarePingWorkers, carePingService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, api.RouterConfig{
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   time.Duration(cfg.TokenTTLHours) * time.Hour,
		Dispatcher: dispatcher,
		Logger:     log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
