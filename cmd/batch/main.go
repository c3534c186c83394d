package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/config"
	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/infrastructure"
	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/pipeline"
)

// Drop-in batch tool: analyzes every XML file in one folder, writes a
// summary table next to each, then aggregates them into a workbook in
// the same folder.
func main() {
	dirFlag := flag.String("dir", ".", "folder holding the tracking XML files")
	flag.Parse()

	dir := *dirFlag
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    config.DefaultLogLevel,
				Format:   config.DefaultLogFormat,
				Output:   "console",
				FilePath: paths.GetLogPath("tracking.log"),
			},
		}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.EnsureRunID(context.Background())

	logger.InfoContext(ctx, "starting batch run",
		slog.String("app", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("dir", dir))

	p := pipeline.New(logger)
	stats, consolidated, err := p.Batch(ctx, pipeline.BatchOptions{
		Dir: dir,
		Progress: func(current, total int, path string) {
			fmt.Printf("Processing file %d of %d: %s\n", current, total, filepath.Base(path))
		},
	})
	if err != nil {
		logger.ErrorContext(ctx, "batch run failed", slog.String("error", err.Error()))
		slog.Error("Batch run failed", "error", err)
		os.Exit(1)
	}

	if stats.Found == 0 {
		fmt.Println("No XML files found")
		return
	}

	fmt.Printf("Processing complete: %d processed, %d skipped\n", stats.Processed, stats.Skipped)
	if consolidated == nil || len(consolidated.Rows) == 0 {
		fmt.Println("No summary tables to aggregate")
		return
	}
	fmt.Printf("Aggregated %d summaries into %s\n",
		len(consolidated.Rows), filepath.Join(dir, config.BatchAggregateXLSXName))
}
