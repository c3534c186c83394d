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
	in := flag.String("in", "", "directory holding the analysis tables (defaults to data/analysis relative to executable)")
	out := flag.String("out", "", "output directory for the consolidated summary (defaults to data/summary relative to executable)")
	pattern := flag.String("pattern", config.DefaultAnalysisCSVPattern, "glob pattern for analysis tables")
	columns := flag.String("columns", "", "comma-separated summary columns to consolidate (defaults to the five per-file statistics)")
	suffix := flag.String("suffix", config.DefaultAnalysisSuffix, "suffix stripped from table names in the filename column")
	xlsx := flag.Bool("xlsx", false, "also write the consolidated summary as an xlsx workbook")
	flag.Parse()

	// Initialize paths first to get default directories
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *in == "" {
		*in = paths.AnalysisDir
	}
	if *out == "" {
		*out = paths.SummaryDir
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
			Consolidate: config.ConsolidateConfig{
				Pattern:  config.DefaultAnalysisCSVPattern,
				CSVName:  config.DefaultSummaryCSVName,
				XLSXName: config.DefaultSummaryXLSXName,
			},
		}
	}

	// Flags left at their defaults fall back to the configured values
	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	if !setFlags["pattern"] && cfg.Consolidate.Pattern != "" {
		*pattern = cfg.Consolidate.Pattern
	}
	if !setFlags["suffix"] && cfg.Analysis.Suffix != "" {
		*suffix = cfg.Analysis.Suffix
	}
	makeXLSX := cfg.Consolidate.MakeXLSX
	if setFlags["xlsx"] {
		makeXLSX = *xlsx
	}

	selected := splitColumns(*columns)
	if len(selected) == 0 {
		selected = cfg.Consolidate.Columns
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.EnsureRunID(context.Background())

	csvName := cfg.Consolidate.CSVName
	if csvName == "" {
		csvName = config.DefaultSummaryCSVName
	}
	xlsxName := cfg.Consolidate.XLSXName
	if xlsxName == "" {
		xlsxName = config.DefaultSummaryXLSXName
	}

	csvPath := filepath.Join(*out, csvName)
	xlsxPath := ""
	if makeXLSX {
		xlsxPath = filepath.Join(*out, xlsxName)
	}

	logger.InfoContext(ctx, "starting summary consolidation",
		slog.String("input_dir", *in),
		slog.String("output_dir", *out),
		slog.String("pattern", *pattern),
		slog.Bool("make_xlsx", makeXLSX),
		slog.String("executable_dir", paths.ExecutableDir))

	p := pipeline.New(logger)
	consolidated, err := p.Consolidate(ctx, pipeline.ConsolidateOptions{
		InputDir: *in,
		Pattern:  *pattern,
		Columns:  selected,
		Suffix:   *suffix,
		CSVPath:  csvPath,
		XLSXPath: xlsxPath,
	})
	if err != nil {
		logger.ErrorContext(ctx, "consolidation failed", slog.String("error", err.Error()))
		slog.Error("Consolidation failed", "error", err)
		os.Exit(1)
	}

	if len(consolidated.Rows) == 0 {
		if consolidated.Skipped > 0 {
			fmt.Printf("No readable analysis tables (skipped %d)\n", consolidated.Skipped)
		} else {
			fmt.Println("No analysis tables found")
		}
		return
	}

	fmt.Printf("Consolidated %d files into %s\n", len(consolidated.Rows), csvPath)
	if makeXLSX {
		fmt.Printf("Workbook written to %s\n", xlsxPath)
	}
	if consolidated.Skipped > 0 {
		fmt.Printf("Skipped %d unreadable files\n", consolidated.Skipped)
	}
}

// splitColumns parses the -columns flag into a clean column list.
func splitColumns(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	columns := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			columns = append(columns, trimmed)
		}
	}
	return columns
}
