// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/andresuchdata/dss-backend/internal/api/handlers"
	"github.com/andresuchdata/dss-backend/internal/api/middleware"
	"github.com/andresuchdata/dss-backend/internal/observability"
	"github.com/andresuchdata/dss-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Services struct {
	MetricsService *service.MetricsService
}

func NewRouter(services *Services, metrics *observability.Metrics, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	if metrics == nil {
		metrics = observability.NewMetrics()
	}

	router.Use(
		middleware.Logger(),
		middleware.Recovery(),
		middleware.Metrics(metrics),
	)

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	apiGroup := router.Group("/api")

	if services != nil && services.MetricsService != nil {
		metricsHandler := handlers.NewMetricsHandler(services.MetricsService)
		metricsGroup := apiGroup.Group("/metrics")
		{
			metricsGroup.GET("", metricsHandler.GetMetrics)
			metricsGroup.GET("/recommendation", metricsHandler.GetRecommendation)
			metricsGroup.GET("/report", metricsHandler.GetReport)
			metricsGroup.GET("/accuracy", metricsHandler.GetAccuracy)
		}
		apiGroup.GET("/components", metricsHandler.GetComponents)
		apiGroup.POST("/chat", metricsHandler.Chat)
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
