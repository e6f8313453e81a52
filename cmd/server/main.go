// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andresuchdata/dss-backend/internal/api"
	"github.com/andresuchdata/dss-backend/internal/cache"
	"github.com/andresuchdata/dss-backend/internal/config"
	"github.com/andresuchdata/dss-backend/internal/observability"
	"github.com/andresuchdata/dss-backend/internal/service"
	"github.com/andresuchdata/dss-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
		logger.UseJSON()
	}
	logger.SetLevel(cfg.Log.Level)

	// Cache is optional; fall back to generating every request
	metricsCache, err := cache.NewMetricsCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("metrics cache unavailable, continuing without cache")
		metricsCache = cache.NewNoopMetricsCache()
	}

	metrics := observability.NewMetrics()
	services := &api.Services{
		MetricsService: service.NewMetricsService(metricsCache, metrics),
	}

	router := api.NewRouter(services, metrics, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Bool("cache", cfg.Cache.Enabled).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
