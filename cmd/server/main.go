package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"kisanmitra/internal/cache"
	"kisanmitra/internal/config"
	"kisanmitra/internal/logger"
	"kisanmitra/internal/notify"
	"kisanmitra/internal/repository"
	"kisanmitra/internal/service"
	"kisanmitra/internal/transport/rest"
	"kisanmitra/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat, "kisanmitra-api")
	if err != nil {
		log.Fatal("failed to build logger:", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		zlog.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		zlog.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	zlog.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		zlog.Fatal("failed to ping Redis", zap.Error(err))
	}
	zlog.Info("connected to Redis")

	// WebSocket hub
	wsHub := ws.NewHub(zlog)

	// Repositories
	farmerRepo := repository.NewFarmerRepo(db)
	adminRepo := repository.NewAdminRepo(db)
	checkInRepo := repository.NewCheckInRepo(db)
	alertRepo := repository.NewAlertRepo(db)

	// Caches and limiters (keys are prefixed per concern, one limiter serves both)
	otpCache := cache.NewOTPCache(rdb, cfg.OTPTTL, cfg.OTPMaxAttempts)
	limiter := cache.NewRedisRateLimiter(rdb, cfg.RateLimitWindow, cfg.RateLimitMax)

	// Notifier (log-backed; the SMS gateway hangs off this seam)
	notifier := notify.NewLogNotifier(zlog)

	// Services
	authSvc := service.NewAuthService(farmerRepo, adminRepo, otpCache, limiter, notifier, cfg.JWTSecret, zlog)
	checkInSvc := service.NewCheckInService(checkInRepo, alertRepo, farmerRepo, adminRepo, notifier, wsHub, zlog)
	alertSvc := service.NewAlertService(alertRepo, zlog)
	farmerSvc := service.NewFarmerService(farmerRepo, adminRepo, notifier, zlog)

	// Background alert reconciliation
	reconcileCtx, stopReconciler := context.WithCancel(ctx)
	defer stopReconciler()
	checkInSvc.StartReconciler(reconcileCtx, cfg.ReconcileInterval)

	// Router
	router := rest.NewRouter(&rest.Container{
		AuthService:    authSvc,
		CheckInService: checkInSvc,
		AlertService:   alertSvc,
		FarmerService:  farmerSvc,
		RateLimiter:    limiter,
		WSHub:          wsHub,
		Logger:         zlog,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("listen and serve failed", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")

	stopReconciler()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited")
}
