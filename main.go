package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	intconfig "busline/internal/config"
	"busline/internal/email"
	"busline/internal/events"
	router "busline/internal/http"
	"busline/internal/http/handlers"
	"busline/internal/repositories"
	"busline/internal/utils"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	logger, err := utils.InitLogger(env.GinMode == gin.DebugMode)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ledger, err := buildLedger(env, logger)
	if err != nil {
		logger.Fatal("failed to open ledger store", zap.Error(err))
	}

	var cache *redis.Client
	if env.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     env.RedisAddr,
			Password: env.RedisPassword,
			DB:       env.RedisDB,
		})
		if err := cache.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis unreachable, user cache disabled", zap.Error(err))
			cache = nil
		}
	}

	pubSub := events.NewPubSub(logger)
	notifier := &events.Notifier{
		Ledger: ledger,
		Mailer: email.LogMailer{Logger: logger},
		Logger: logger,
	}
	messageRouter, err := events.NewNotificationRouter(pubSub, notifier, logger)
	if err != nil {
		logger.Fatal("failed to build notification router", zap.Error(err))
	}
	go func() {
		if err := messageRouter.Run(context.Background()); err != nil {
			logger.Error("notification router stopped", zap.Error(err))
		}
	}()

	apiHandlers := &handlers.API{
		Ledger:    ledger,
		Cache:     cache,
		Publisher: pubSub,
		JWTSecret: []byte(env.JWTSecret),
	}
	r := router.NewRouter(apiHandlers, logger)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}
	if err := messageRouter.Close(); err != nil {
		logger.Error("notification router close failed", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}

func buildLedger(env intconfig.Env, logger *zap.Logger) (repositories.Ledger, error) {
	if env.DataDir != "" {
		ledger, err := repositories.NewFileLedger(env.DataDir)
		if err != nil {
			return nil, err
		}
		logger.Info("using file-backed store", zap.String("dir", env.DataDir))
		if env.SeedDemo && ledger.Empty() {
			if err := repositories.SeedDemo(ledger); err != nil {
				return nil, err
			}
			logger.Info("seeded demo dataset")
		}
		return ledger, nil
	}

	ledger := repositories.NewMemoryLedger()
	logger.Info("using in-memory store")
	if env.SeedDemo {
		if err := repositories.SeedDemo(ledger); err != nil {
			return nil, err
		}
		logger.Info("seeded demo dataset")
	}
	return ledger, nil
}
