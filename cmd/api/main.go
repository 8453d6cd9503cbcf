package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-firesafety-backend/config"
	_ "go-firesafety-backend/docs" // Important for Swagger
	v1 "go-firesafety-backend/internal/delivery/http/v1"
	"go-firesafety-backend/internal/domain"
	"go-firesafety-backend/internal/metrics"
	"go-firesafety-backend/internal/repository/postgres"
	"go-firesafety-backend/internal/usecase"
	"go-firesafety-backend/pkg/auth"
	"go-firesafety-backend/pkg/database"
	"go-firesafety-backend/pkg/logger"
	"go-firesafety-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Fire Safety Contact API
// @version         1.0
// @description     Contact-message lifecycle backend for the marketing site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger & Metrics
	logger.Init()
	logger.Log.Info("Starting firesafety backend", "port", cfg.Port)
	metrics.Init()

	// 3. Setup Redis (optional, backs rate limiting)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(cfg.RedisURL, cfg.RedisPassword); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
		}
	}
	defer redis.Close()

	// 4. Setup Database. A missing DATABASE_URL is answered per request
	// with a configuration error instead of refusing to start, so the
	// site itself stays up while the backend is being provisioned.
	var contactRepo domain.ContactRepository
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		contactRepo = postgres.NewContactRepository(dbPool)

		// Idempotent, safe to re-run on every start.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := contactRepo.EnsureSchema(ctx); err != nil {
			cancel()
			logger.Log.Error("Failed to provision schema", "error", err)
			os.Exit(1)
		}
		cancel()
		logger.Log.Info("Database ready")
	}

	// 5. Setup UseCases
	validate := validator.New()
	contactUC := usecase.NewContactUsecase(contactRepo, validate)

	// 6. Moderation credential
	cred := auth.NewCredential(cfg.AdminSecret, cfg.AdminTokenSecret,
		time.Duration(cfg.AdminTokenTTLMin)*time.Minute)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:  contactUC,
		Credential: cred,
		Config:     cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
