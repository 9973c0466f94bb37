package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brijesh-0/job-board-backend/internal/api"
	"github.com/brijesh-0/job-board-backend/internal/infrastructure/config"
	mongoinfra "github.com/brijesh-0/job-board-backend/internal/infrastructure/db/mongo"
	redisinfra "github.com/brijesh-0/job-board-backend/internal/infrastructure/db/redis"
	"github.com/brijesh-0/job-board-backend/internal/infrastructure/email"
	"github.com/brijesh-0/job-board-backend/internal/infrastructure/queue"
	"github.com/brijesh-0/job-board-backend/internal/infrastructure/storage"
	"github.com/brijesh-0/job-board-backend/internal/notification"
	"github.com/brijesh-0/job-board-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Job Board API
// @version         1.0
// @description     REST API for job postings, applications and hiring pipeline management.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	ensureIndexes(ctx, db, log)

	// --- Redis (rate limiting) ---
	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Object storage (resume uploads) ---
	signer, err := storage.NewS3Signer(ctx, storage.Config{
		Region: cfg.S3.Region,
		Bucket: cfg.S3.Bucket,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("s3 signer initialisation failed")
	}

	// --- Email notifications ---
	mailer := email.NewSMTPMailer(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	notifier := notification.NewService(mongoinfra.NewUserRepository(db), mailer, log)
	dispatcher := queue.NewDispatcher(0, notifier, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, cfg, dispatcher, signer, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("api started")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}

// ensureIndexes creates the unique and search indexes at startup. Index
// creation is idempotent; a failure is fatal because the duplicate
// application guard depends on the unique index existing.
func ensureIndexes(ctx context.Context, db *mongo.Database, log zerolog.Logger) {
	repos := []interface {
		EnsureIndexes(context.Context) error
	}{
		mongoinfra.NewUserRepository(db),
		mongoinfra.NewJobRepository(db),
		mongoinfra.NewApplicationRepository(db),
	}
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}
}
