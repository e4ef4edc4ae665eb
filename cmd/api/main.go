package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "github.com/devfolio/portfolio-api/docs"
	"github.com/devfolio/portfolio-api/internal/api"
	"github.com/devfolio/portfolio-api/internal/core/service"
	mongoinfra "github.com/devfolio/portfolio-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/devfolio/portfolio-api/internal/infrastructure/db/redis"
	"github.com/devfolio/portfolio-api/internal/infrastructure/email"
	"github.com/devfolio/portfolio-api/internal/infrastructure/storage"
	"github.com/devfolio/portfolio-api/internal/pkg/config"
	"github.com/devfolio/portfolio-api/pkg/logger"
)

// @title        Portfolio API
// @version      1.0
// @description  REST backend for a personal portfolio site.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		lg := logger.Init("info", "development", nil)
		lg.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(cfg.LogLevel, cfg.Env, nil)

	mongoClient, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := mongoinfra.NewUserRepository(db).EnsureIndexes(indexCtx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := mongoinfra.NewSkillRepository(db).EnsureIndexes(indexCtx); err != nil {
		log.Fatal().Err(err).Msg("skill indexes failed")
	}

	images, err := storage.NewS3Store(ctx, storage.S3Config{
		Region:          cfg.S3.Region,
		Bucket:          cfg.S3.Bucket,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("s3 store failed")
	}
	icons := storage.NewLocalStore(filepath.Join(cfg.PublicDir, "icons"), "/public/icons")

	mailer := email.NewMailer(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.User,
		To:       cfg.SMTP.ContactTo,
	})

	e := api.NewRouter(api.RouterConfig{
		DB:    db,
		Redis: rdb,

		Mailer: mailer,
		Images: images,
		Icons:  icons,

		Token: service.TokenConfig{
			Secret: cfg.JWTSecret,
			TTL:    cfg.TokenTTL,
			Grace:  cfg.RefreshGrace,
		},

		PublicDir:   cfg.PublicDir,
		FrontendURL: cfg.FrontendURL,

		Log: log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("portfolio api listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
