package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/andresuchdata/dss-backend/internal/domain"
	"github.com/andresuchdata/dss-backend/internal/report"
	"github.com/andresuchdata/dss-backend/internal/storage"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const defaultArchiveConcurrency = 4

// ArchivedReport describes one uploaded report.
type ArchivedReport struct {
	Component string
	Key       string
	Size      int
}

// ArchiveService renders reports and uploads them to object storage.
type ArchiveService struct {
	metrics     *MetricsService
	store       storage.ObjectStorage
	prefix      string
	concurrency int
}

func NewArchiveService(metrics *MetricsService, store storage.ObjectStorage, prefix string) *ArchiveService {
	return &ArchiveService{
		metrics:     metrics,
		store:       store,
		prefix:      prefix,
		concurrency: defaultArchiveConcurrency,
	}
}

// Archive uploads one report per component for month. An empty component list
// archives the whole catalogue. The first failure cancels the remaining uploads.
func (s *ArchiveService) Archive(ctx context.Context, month string, components []string) ([]ArchivedReport, error) {
	if len(components) == 0 {
		components = domain.ComponentTypes()
	}

	parsed, err := domain.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	month = parsed.String()

	results := make([]ArchivedReport, len(components))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, component := range components {
		g.Go(func() error {
			m, err := s.metrics.GetMetrics(gctx, component, month)
			if err != nil {
				return fmt.Errorf("archive %s: %w", component, err)
			}

			var buf bytes.Buffer
			if err := report.WriteCSV(&buf, m); err != nil {
				return fmt.Errorf("archive %s: %w", component, err)
			}

			key := report.ObjectKey(s.prefix, m)
			if err := s.store.UploadObject(gctx, key, buf.Bytes(), report.ContentType); err != nil {
				return fmt.Errorf("archive %s: %w", component, err)
			}

			log.Info().Str("component", m.Component).Str("key", key).Int("bytes", buf.Len()).Msg("report archived")
			results[i] = ArchivedReport{Component: m.Component, Key: key, Size: buf.Len()}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// List returns the archived reports for month.
func (s *ArchiveService) List(ctx context.Context, month string) ([]storage.ObjectInfo, error) {
	parsed, err := domain.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	return s.store.ListObjects(ctx, report.MonthPrefix(s.prefix, parsed.String()))
}
