package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devsolutions/intake-api/internal/api"
	"github.com/devsolutions/intake-api/internal/core/service"
	mongodb "github.com/devsolutions/intake-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devsolutions/intake-api/internal/infrastructure/db/redis"
	"github.com/devsolutions/intake-api/internal/pkg/config"
	"github.com/devsolutions/intake-api/pkg/logger"
)

// @title           DevSolutions Intake API
// @version         1.0
// @description     Lead-intake and admin review API for the DevSolutions site.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	submissionRepo := mongodb.NewSubmissionRepository(db)
	if err := submissionRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure submission indexes")
	}
	authRepo := mongodb.NewAuthRepository(db)
	if err := authRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure user indexes")
	}

	// Sync the bootstrap admin account from config. Admin profiles are never
	// created through the API, so without this (or rows provisioned directly
	// in the store) the admin area is unreachable.
	if cfg.Admin.Email != "" {
		profileRepo := mongodb.NewAdminProfileRepository(db)
		sessions := redisdb.NewSessionStore(rdb)
		authService := service.NewAuthService(authRepo, profileRepo, sessions, cfg.JWTSecret, cfg.TokenTTL)
		if err := authService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
			log.Fatal().Err(err).Msg("failed to sync bootstrap admin")
		}
		log.Info().Str("email", cfg.Admin.Email).Msg("bootstrap admin synced")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
