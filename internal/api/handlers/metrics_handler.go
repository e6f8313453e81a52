package handlers

import (
	"net/http"
	"strings"

	"github.com/andresuchdata/dss-backend/internal/domain"
	"github.com/andresuchdata/dss-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type MetricsHandler struct {
	service *service.MetricsService
}

func NewMetricsHandler(service *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{service: service}
}

func (h *MetricsHandler) parseParams(c *gin.Context) (string, string) {
	component := c.DefaultQuery("component", domain.DefaultComponent)
	month := strings.TrimSpace(c.DefaultQuery("month", domain.DefaultMonth))
	return component, month
}

// GetMetrics serves the generated payload for ?component=&month=.
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	component, month := h.parseParams(c)

	metrics, err := h.service.GetMetrics(c.Request.Context(), component, month)
	if err != nil {
		respondError(c, err, "failed to generate metrics")
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func (h *MetricsHandler) GetRecommendation(c *gin.Context) {
	component, month := h.parseParams(c)

	rec, err := h.service.GetRecommendation(c.Request.Context(), component, month)
	if err != nil {
		respondError(c, err, "failed to build recommendation")
		return
	}

	c.JSON(http.StatusOK, rec)
}

// GetAccuracy serves forecast accuracy over the twelve periods.
func (h *MetricsHandler) GetAccuracy(c *gin.Context) {
	component, month := h.parseParams(c)

	acc, err := h.service.GetAccuracy(c.Request.Context(), component, month)
	if err != nil {
		respondError(c, err, "failed to evaluate accuracy")
		return
	}

	c.JSON(http.StatusOK, acc)
}

// GetReport serves the CSV export as a download.
func (h *MetricsHandler) GetReport(c *gin.Context) {
	component, month := h.parseParams(c)

	rep, err := h.service.GetReport(c.Request.Context(), component, month)
	if err != nil {
		respondError(c, err, "failed to build report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+rep.FileName+`"`)
	c.Data(http.StatusOK, rep.ContentType, rep.Data)
}

func (h *MetricsHandler) GetComponents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"components": h.service.Components()})
}

func (h *MetricsHandler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	reply, err := h.service.Chat(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "failed to answer")
		return
	}

	c.JSON(http.StatusOK, reply)
}

func respondError(c *gin.Context, err error, message string) {
	if v, ok := domain.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": v.Error(), "field": v.Field})
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(message)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
}
