package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/database"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/jobquery"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/metrics"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env == "development")

	logger.Info("Connecting to database...")
	gormDB, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	defer sqlDB.Close()
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, sqlDB)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Server starting", "address", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
}

// SetupRouter wires services, handlers and middleware into a gin engine.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	customValidator := validator.New()

	// 1. Сервисы
	serviceContainer := services.NewServiceContainer(customValidator, services.JobSettings{
		RequireApproval: cfg.Jobs.RequireApproval,
		Limits: jobquery.Limits{
			Default: cfg.Jobs.DefaultLimit,
			Max:     cfg.Jobs.MaxLimit,
		},
	})

	// 2. Хэндлеры
	appHandlers := handlers.NewAppHandlers(serviceContainer, customValidator, sqlDB)
	// Tokens are issued by the identity provider; this service only verifies them.
	guards := handlers.NewGuards(auth.NewTokenService(cfg.JWT.Secret, 0))

	// 3. Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 4. Маршруты
	routes.RegisterRoutes(ginRouter, appHandlers, guards, apiMiddleware(cfg)...)

	return ginRouter
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(metrics.GinMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// apiMiddleware returns the rate limiter when a Redis address is configured.
func apiMiddleware(cfg *config.Config) []gin.HandlerFunc {
	if cfg.RateLimit.RedisAddr == "" {
		logger.Warn("Rate limiting disabled: rate_limit.redis_addr is empty")
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RateLimit.RedisAddr})
	logger.Info("Rate limiting enabled", "requests", cfg.RateLimit.Requests, "window_seconds", cfg.RateLimit.WindowSeconds)
	return []gin.HandlerFunc{
		middleware.RateLimitMiddleware(client, cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second),
	}
}
