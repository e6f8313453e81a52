package main

import (
	"errors"
	"io"
	"os"

	"github.com/andresuchdata/dss-backend/internal/cache"
	"github.com/andresuchdata/dss-backend/internal/config"
	"github.com/andresuchdata/dss-backend/internal/storage"
	"github.com/andresuchdata/dss-backend/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// newStorage and newCache are swapped in tests.
var (
	newStorage = func(cfg config.StorageConfig) (storage.ObjectStorage, error) {
		return storage.NewMinioClient(cfg)
	}
	newCache = func(cfg config.CacheConfig) (cache.MetricsCache, error) {
		if !cfg.Enabled {
			return nil, errors.New("metrics cache is disabled, set CACHE_ENABLED=true")
		}
		return cache.NewMetricsCache(cfg)
	}
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		logger.Log.Warn().Err(err).Msg("could not load .env file")
	}

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("dss failed")
	}
}

func newComponentFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "component",
		Aliases: []string{"c"},
		Usage:   "Component type, e.g. Resistor",
		Value:   "Resistor",
		EnvVars: []string{"DSS_COMPONENT"},
	}
}

func newMonthFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "month",
		Aliases: []string{"m"},
		Usage:   "Month in YYYY-MM format",
		Value:   "2025-09",
		EnvVars: []string{"DSS_MONTH"},
	}
}

func newPrefixFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "prefix",
		Usage: "Key prefix inside the bucket (default: STORAGE_PREFIX)",
	}
}

func newApp(stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "dss",
		Usage:     "Generate decision support metrics and reports",
		Writer:    stdout,
		ErrWriter: stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.SetLevel(c.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Print the metrics payload as JSON",
				Flags: []cli.Flag{
					newComponentFlag(),
					newMonthFlag(),
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Indent the JSON output",
					},
				},
				Action: runGenerate,
			},
			{
				Name:  "report",
				Usage: "Write the CSV report",
				Flags: []cli.Flag{
					newComponentFlag(),
					newMonthFlag(),
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output file, '-' for stdout (default: report-<component>-<Month-Year>.csv)",
					},
				},
				Action: runReport,
			},
			{
				Name:  "archive",
				Usage: "Upload the reports of a month to object storage",
				Flags: []cli.Flag{
					newMonthFlag(),
					&cli.StringSliceFlag{
						Name:  "component",
						Usage: "Component to archive, repeatable (default: whole catalogue)",
					},
					newPrefixFlag(),
				},
				Action: runArchive,
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List the reports archived for a month",
						Flags: []cli.Flag{
							newMonthFlag(),
							newPrefixFlag(),
						},
						Action: runArchiveList,
					},
				},
			},
			{
				Name:  "cache",
				Usage: "Manage the metrics cache",
				Subcommands: []*cli.Command{
					{
						Name:  "flush",
						Usage: "Drop one cached payload, or all of them when no component or month is given",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "component",
								Aliases: []string{"c"},
								Usage:   "Component type of the payload to drop",
							},
							&cli.StringFlag{
								Name:    "month",
								Aliases: []string{"m"},
								Usage:   "Month of the payload to drop, in YYYY-MM format",
							},
						},
						Action: runCacheFlush,
					},
				},
			},
		},
	}
}
