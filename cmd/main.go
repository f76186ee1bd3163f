package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ayodiya/hux-assessment-backend/config"
	"github.com/ayodiya/hux-assessment-backend/internal/handler"
	"github.com/ayodiya/hux-assessment-backend/internal/middleware"
	"github.com/ayodiya/hux-assessment-backend/internal/repository"
	"github.com/ayodiya/hux-assessment-backend/internal/router"
	"github.com/ayodiya/hux-assessment-backend/internal/service"
	"github.com/ayodiya/hux-assessment-backend/pkg/database"
	"github.com/ayodiya/hux-assessment-backend/pkg/logger"
	"github.com/ayodiya/hux-assessment-backend/pkg/redis"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.InitLogger(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLogger := logger.GetLogger()
	appLogger.Info("Starting service",
		zap.String("name", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
		zap.String("port", cfg.App.Port),
	)

	db, err := database.NewPostgresDB(database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.CloseDB(db); err != nil {
			appLogger.Error("Failed to close database", zap.Error(err))
		}
	}()

	if err := database.AutoMigrate(db); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	redisClient := redis.NewClient(redis.Config{
		Enabled:      cfg.Redis.Enabled,
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.Database,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			appLogger.Error("Failed to close Redis client", zap.Error(err))
		}
	}()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Services
	credentialStore := service.NewCredentialStore()
	tokenService := service.NewTokenService(cfg.JWT, tokenRepo)
	userService := service.NewUserService(userRepo, credentialStore, tokenService)
	contactCache := service.NewContactCache(redisClient, cfg.Redis.CacheTTL)
	contactService := service.NewContactService(contactRepo, contactCache)

	// HTTP surface
	authHandler := handler.NewAuthHandler(userService)
	contactHandler := handler.NewContactHandler(contactService)
	healthHandler := handler.NewHealthHandler(db, redisClient)
	jwtMiddleware := middleware.NewJWTMiddleware(tokenService)

	r := router.NewRouter(cfg, authHandler, contactHandler, healthHandler, jwtMiddleware)
	r.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r.Engine(),
		ReadTimeout:  cfg.App.Timeout,
		WriteTimeout: cfg.App.Timeout,
		IdleTimeout:  2 * cfg.App.Timeout,
	}

	go func() {
		appLogger.Info("HTTP server listening", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	appLogger.Info("Shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Forced shutdown", zap.Error(err))
	}

	appLogger.Info("Server stopped")
}
