package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/andresuchdata/dss-backend/internal/config"
	"github.com/andresuchdata/dss-backend/internal/service"
	"github.com/andresuchdata/dss-backend/pkg/logger"
	"github.com/urfave/cli/v2"
)

func runGenerate(c *cli.Context) error {
	svc := service.NewMetricsService(nil, nil)

	metrics, err := svc.GetMetrics(c.Context, c.String("component"), c.String("month"))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.App.Writer)
	if c.Bool("pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(metrics)
}

func runReport(c *cli.Context) error {
	svc := service.NewMetricsService(nil, nil)

	rep, err := svc.GetReport(c.Context, c.String("component"), c.String("month"))
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "-" {
		_, err := c.App.Writer.Write(rep.Data)
		return err
	}
	if out == "" {
		out = rep.FileName
	}

	if err := os.WriteFile(out, rep.Data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logger.Log.Info().Str("file", out).Int("bytes", len(rep.Data)).Msg("report written")
	return nil
}

func newArchiver(c *cli.Context) (*service.ArchiveService, error) {
	cfg := config.Load()

	store, err := newStorage(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	prefix := cfg.Storage.Prefix
	if c.IsSet("prefix") {
		prefix = c.String("prefix")
	}

	return service.NewArchiveService(service.NewMetricsService(nil, nil), store, prefix), nil
}

func runArchive(c *cli.Context) error {
	archiver, err := newArchiver(c)
	if err != nil {
		return err
	}

	archived, err := archiver.Archive(c.Context, c.String("month"), c.StringSlice("component"))
	if err != nil {
		return err
	}

	for _, a := range archived {
		fmt.Fprintf(c.App.Writer, "%s\t%d\n", a.Key, a.Size)
	}
	return nil
}

func runArchiveList(c *cli.Context) error {
	archiver, err := newArchiver(c)
	if err != nil {
		return err
	}

	objects, err := archiver.List(c.Context, c.String("month"))
	if err != nil {
		return err
	}

	for _, o := range objects {
		fmt.Fprintf(c.App.Writer, "%s\t%d\n", o.Key, o.Size)
	}
	return nil
}

func runCacheFlush(c *cli.Context) error {
	metricsCache, err := newCache(config.Load().Cache)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	svc := service.NewMetricsService(metricsCache, nil)

	if !c.IsSet("component") && !c.IsSet("month") {
		if err := svc.InvalidateAll(c.Context); err != nil {
			return err
		}
		logger.Log.Info().Msg("metrics cache flushed")
		return nil
	}

	if err := svc.Invalidate(c.Context, c.String("component"), c.String("month")); err != nil {
		return err
	}
	logger.Log.Info().Str("component", c.String("component")).Str("month", c.String("month")).Msg("cached payload dropped")
	return nil
}
