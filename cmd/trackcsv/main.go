package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/config"
	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/infrastructure"
	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/pipeline"
)

func main() {
	in := flag.String("in", "", "input XML file or directory (defaults to data/xml relative to executable)")
	out := flag.String("out", "", "output directory for analysis tables (defaults to alongside each XML file)")
	pattern := flag.String("pattern", config.DefaultXMLPattern, "glob pattern for XML files in directory input")
	recursive := flag.Bool("recursive", false, "search the input directory recursively")
	suffix := flag.String("suffix", config.DefaultAnalysisSuffix, "suffix appended to output table names")
	flag.Parse()

	// Initialize paths first to get default directories
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *in == "" {
		*in = paths.XMLDir
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
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
			Analysis: config.AnalysisConfig{
				Pattern: config.DefaultXMLPattern,
				Suffix:  config.DefaultAnalysisSuffix,
			},
		}
	}

	// Flags left at their defaults fall back to the configured values
	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	if !setFlags["pattern"] && cfg.Analysis.Pattern != "" {
		*pattern = cfg.Analysis.Pattern
	}
	if !setFlags["recursive"] {
		*recursive = cfg.Analysis.Recursive
	}
	if !setFlags["suffix"] && cfg.Analysis.Suffix != "" {
		*suffix = cfg.Analysis.Suffix
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.EnsureRunID(context.Background())

	// A .csv path passed as -out means its directory
	if strings.HasSuffix(strings.ToLower(*out), ".csv") {
		dir := filepath.Dir(*out)
		logger.InfoContext(ctx, "output path names a csv file, using its directory",
			slog.String("out", *out),
			slog.String("dir", dir))
		*out = dir
	}

	logger.InfoContext(ctx, "starting track analysis",
		slog.String("input", *in),
		slog.String("output_dir", *out),
		slog.String("pattern", *pattern),
		slog.Bool("recursive", *recursive),
		slog.String("executable_dir", paths.ExecutableDir))

	p := pipeline.New(logger)
	_, stats, err := p.Analyze(ctx, pipeline.AnalyzeOptions{
		Input:     *in,
		OutputDir: *out,
		Pattern:   *pattern,
		Recursive: *recursive,
		Suffix:    *suffix,
		Progress: func(current, total int, path string) {
			fmt.Printf("Processing file %d of %d: %s\n", current, total, filepath.Base(path))
		},
	})
	if err != nil {
		logger.ErrorContext(ctx, "analysis run failed", slog.String("error", err.Error()))
		slog.Error("Analysis run failed", "error", err)
		os.Exit(1)
	}

	if stats.Found == 0 {
		fmt.Println("No XML files found")
		return
	}
	fmt.Printf("Processing complete: %d processed, %d skipped\n", stats.Processed, stats.Skipped)
}
