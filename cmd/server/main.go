package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dashboard-user-import/internal/authority"
	"dashboard-user-import/internal/config"
	"dashboard-user-import/internal/handler"
	"dashboard-user-import/internal/logger"
	"dashboard-user-import/internal/middleware"
	"dashboard-user-import/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Client for the dashboard backend that owns all durable state
	authorityClient := authority.NewClient(
		cfg.AuthorityBaseURL,
		cfg.AuthorityTimeout,
		cfg.AuthorityMaxRetries,
		cfg.AuthorityRetryBase,
	)

	// Initialize the session service
	sessionService := session.NewService(
		authorityClient,
		cfg.MaxBatchSize,
		cfg.SessionIdleTTL,
		cfg.SessionSweepInterval,
	)

	// Initialize handlers
	importHandler := handler.NewImportHandler(sessionService)
	healthHandler := handler.NewHealthHandler(authorityClient)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		imports := v1.Group("/imports")
		{
			imports.POST("", importHandler.CreateImport)
			imports.GET("/:id", importHandler.GetImport)
			imports.POST("/:id/next", importHandler.Next)
			imports.POST("/:id/skip", importHandler.Skip)
			imports.POST("/:id/back", importHandler.Back)
			imports.POST("/:id/verification/regenerate", importHandler.RegenerateToken)
			imports.DELETE("/:id", importHandler.DeleteImport)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop the session service first; in-flight sessions are discarded
	logger.Info("Closing session service")
	sessionService.Close()

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
