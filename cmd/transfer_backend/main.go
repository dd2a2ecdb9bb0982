package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SscSPs/money_transfer_app/internal/adapters/memory"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_transfer_app/internal/core/services"
	"github.com/SscSPs/money_transfer_app/internal/handlers"
	"github.com/SscSPs/money_transfer_app/internal/middleware"
	"github.com/SscSPs/money_transfer_app/internal/platform/config"
)

// @title Money Transfer API
// @version 1.0
// @description In-memory accounts and transfers between them.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := portsrepo.RepositoryProvider{
		AccountStore:   memory.NewAccountStore(),
		TransferLedger: memory.NewTransferLedger(),
	}
	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AddAllowHeaders(middleware.RequestIDHeader)
	r.Use(cors.New(corsConfig))

	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewMemoryLimiter(cfg.RateLimit)
		if err != nil {
			logger.Error("Failed to build rate limiter", slog.String("error", err.Error()))
			os.Exit(1)
		}
		r.Use(middleware.RateLimit(limiterInstance))
	}

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
