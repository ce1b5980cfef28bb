package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/coliride/backend/internal/cache"
	"github.com/coliride/backend/internal/config"
	"github.com/coliride/backend/internal/db"
	"github.com/coliride/backend/internal/kafka"
	"github.com/coliride/backend/internal/logger"
	"github.com/coliride/backend/internal/repository/postgresql"
	"github.com/coliride/backend/internal/server"
	"github.com/coliride/backend/internal/storage"
	"github.com/coliride/backend/internal/upload"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	l := logger.New()
	defer l.Sync()

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("config load failed", zap.Error(err))
	}

	database, err := db.NewDb(ctx, cfg.DSN())
	if err != nil {
		zap.L().Fatal("database init failed", zap.Error(err))
	}
	defer database.Close()

	userRepo := postgresql.NewUserRepo(database)
	packageRepo := postgresql.NewPackageRepo(database)
	rideRepo := postgresql.NewRideRepo(database)
	matchRepo := postgresql.NewMatchRepo(database)
	paymentRepo := postgresql.NewPaymentRepo(database)
	messageRepo := postgresql.NewMessageRepo(database)
	notificationRepo := postgresql.NewNotificationRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	rideCache := cache.NewRideCache(rideRepo)
	if err := rideCache.LoadInitialData(ctx); err != nil {
		zap.L().Fatal("ride cache warm-up failed", zap.Error(err))
	}

	stg := storage.NewPostgresStorage(
		database,
		userRepo, packageRepo, rideRepo, matchRepo,
		paymentRepo, messageRepo, notificationRepo, outboxRepo,
		rideCache,
		cfg.NotificationTopic,
	)

	if err := stg.EnsureAdminUser(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		zap.L().Fatal("admin seed failed", zap.Error(err))
	}

	var producer kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewWriterProducer(cfg.KafkaBrokers)
	} else {
		producer = kafka.NewConsoleProducer()
	}

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{})
	go publisher.Run(ctx)

	uploads, err := upload.NewStore(cfg.UploadDir, cfg.UploadMaxBytes)
	if err != nil {
		zap.L().Fatal("upload store init failed", zap.Error(err))
	}

	auditManager := server.NewAuditManager(producer, cfg.AuditTopic, 2, 5, 500*time.Millisecond)

	srv := server.New(stg, uploads, auditManager, cfg)

	go func() {
		if err := srv.Run(ctx, cfg.HTTPPort); err != nil {
			zap.L().Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}
	publisher.Shutdown(shutdownCtx)

	zap.L().Info("server gracefully stopped")
}
