package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andresuchdata/dss-backend/internal/accuracy"
	"github.com/andresuchdata/dss-backend/internal/advisor"
	"github.com/andresuchdata/dss-backend/internal/cache"
	"github.com/andresuchdata/dss-backend/internal/domain"
	"github.com/andresuchdata/dss-backend/internal/generator"
	"github.com/andresuchdata/dss-backend/internal/observability"
	"github.com/andresuchdata/dss-backend/internal/recommendation"
	"github.com/andresuchdata/dss-backend/internal/report"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Report is a rendered CSV export.
type Report struct {
	FileName    string
	ContentType string
	Data        []byte
}

type MetricsService struct {
	cache   cache.MetricsCache
	metrics *observability.Metrics
	group   singleflight.Group
}

func NewMetricsService(cacheImpl cache.MetricsCache, metrics *observability.Metrics) *MetricsService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopMetricsCache()
	}
	if metrics == nil {
		metrics = observability.NewMetrics()
	}
	return &MetricsService{cache: cacheImpl, metrics: metrics}
}

func normalizeInputs(component, month string) (string, string) {
	component = domain.NormalizeComponent(component)
	month = strings.TrimSpace(month)
	if month == "" {
		month = domain.DefaultMonth
	}
	return component, month
}

// GetMetrics returns the payload for component and month, generating it on a cache miss.
// Callers must treat the result as read-only; it may be shared with concurrent callers.
func (s *MetricsService) GetMetrics(ctx context.Context, component, month string) (*domain.MetricsResponse, error) {
	component, month = normalizeInputs(component, month)

	if cached, ok, err := s.cache.Get(ctx, component, month); err == nil && ok {
		s.metrics.IncrCacheHit()
		return cached, nil
	} else if err != nil {
		s.metrics.IncrCacheError("get")
		log.Warn().Err(err).Str("component", component).Str("month", month).Msg("metrics: cache get failed")
	}
	s.metrics.IncrCacheMiss()

	v, err, _ := s.group.Do(component+"|"+month, func() (interface{}, error) {
		start := time.Now()
		generated, err := generator.Generate(component, month)
		if err != nil {
			return nil, err
		}
		s.metrics.RecordGeneration(time.Since(start))

		if err := s.cache.Set(ctx, component, month, generated); err != nil {
			s.metrics.IncrCacheError("set")
			log.Warn().Err(err).Str("component", component).Str("month", month).Msg("metrics: cache set failed")
		}
		return generated, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.MetricsResponse), nil
}

func (s *MetricsService) GetRecommendation(ctx context.Context, component, month string) (*domain.Recommendation, error) {
	m, err := s.GetMetrics(ctx, component, month)
	if err != nil {
		return nil, err
	}

	rec := recommendation.Recommend(m)
	return &rec, nil
}

// GetAccuracy scores the forecast of each period against its units sold.
func (s *MetricsService) GetAccuracy(ctx context.Context, component, month string) (*domain.Accuracy, error) {
	m, err := s.GetMetrics(ctx, component, month)
	if err != nil {
		return nil, err
	}

	acc := accuracy.Evaluate(m)
	return &acc, nil
}

func (s *MetricsService) GetReport(ctx context.Context, component, month string) (*Report, error) {
	m, err := s.GetMetrics(ctx, component, month)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, m); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	return &Report{
		FileName:    report.FileName(m),
		ContentType: report.ContentType,
		Data:        buf.Bytes(),
	}, nil
}

// Chat answers a question, attaching metrics when the request names a component or month.
func (s *MetricsService) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatReply, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, &domain.ErrValidation{Field: "message", Value: req.Message, Message: "must not be empty"}
	}

	var m *domain.MetricsResponse
	if strings.TrimSpace(req.Component) != "" || strings.TrimSpace(req.Month) != "" {
		var err error
		m, err = s.GetMetrics(ctx, req.Component, req.Month)
		if err != nil {
			return nil, err
		}
	}

	reply := advisor.Reply(req.Message, m)
	return &reply, nil
}

// Invalidate drops the cached payload for component and month.
func (s *MetricsService) Invalidate(ctx context.Context, component, month string) error {
	component, month = normalizeInputs(component, month)
	if err := s.cache.Invalidate(ctx, component, month); err != nil {
		return fmt.Errorf("invalidate %s %s: %w", component, month, err)
	}
	return nil
}

// InvalidateAll drops every cached payload.
func (s *MetricsService) InvalidateAll(ctx context.Context) error {
	if err := s.cache.InvalidateAll(ctx); err != nil {
		return fmt.Errorf("invalidate metrics cache: %w", err)
	}
	return nil
}

func (s *MetricsService) Components() []string {
	return domain.ComponentTypes()
}
