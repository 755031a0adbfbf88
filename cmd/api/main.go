package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ritter-digital-backend/config"
	_ "ritter-digital-backend/docs" // Important for Swagger
	v1 "ritter-digital-backend/internal/delivery/http/v1"
	"ritter-digital-backend/internal/domain"
	"ritter-digital-backend/internal/repository/postgres"
	"ritter-digital-backend/internal/usecase"
	"ritter-digital-backend/pkg/brevo"
	"ritter-digital-backend/pkg/database"
	"ritter-digital-backend/pkg/logger"
	"ritter-digital-backend/pkg/redis"
)

// @title           Ritter Digital Backend API
// @version         1.0
// @description     Form submission backend for the Ritter Digital website (contact form and newsletter signup).
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting form backend", "port", cfg.Port)

	// 3. Setup Database (optional; submissions still notify by email without it)
	var contactRepo domain.ContactRepository
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database, continuing without persistence", "error", err)
		} else {
			defer dbPool.Close()
			contactRepo = postgres.NewContactRepository(dbPool)
		}
	}

	// 4. Setup Redis for rate limiting (in-memory fallback if unavailable)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis not available, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Mailer
	mailer := brevo.NewClient(cfg)
	if !mailer.IsConfigured() {
		logger.Log.Warn("Brevo API key not configured - form submissions will be unavailable")
	}

	// 6. Setup UseCases
	contactUC := usecase.NewContactUsecase(contactRepo, mailer)
	newsletterUC := usecase.NewNewsletterUsecase(mailer)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:    contactUC,
		NewsletterUC: newsletterUC,
		Config:       cfg,
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
