package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/aggregator"
	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/config"
	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/exporter"
	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/files"
	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/trackdata"
)

// AnalyzeOptions control one analysis run over tracking XML input.
type AnalyzeOptions struct {
	// Input is a single XML file or a directory to search.
	Input string

	// OutputDir receives the analysis tables. Empty stores each table
	// next to its source file.
	OutputDir string

	// Pattern filters directory input. Defaults to "*.xml".
	Pattern string

	// Recursive extends the directory search into subdirectories.
	Recursive bool

	// Suffix is appended to the source stem when naming output tables.
	// Defaults to "_analysis".
	Suffix string

	// Progress, when set, is called before each file is processed.
	Progress func(current, total int, path string)
}

// ConsolidateOptions control one consolidation run over analysis tables.
type ConsolidateOptions struct {
	// InputDir is the directory holding the analysis tables.
	InputDir string

	// Pattern selects the tables. Defaults to "*_analysis.csv".
	Pattern string

	// Columns are the summary columns to pull from each table, in
	// output order. Defaults to the five per-file summary columns.
	Columns []string

	// Suffix is stripped from table names to recover the source name.
	// Defaults to "_analysis".
	Suffix string

	// CSVPath receives the consolidated CSV. Empty disables it.
	CSVPath string

	// XLSXPath receives the consolidated workbook. Empty disables it.
	XLSXPath string
}

// BatchOptions control a single-folder batch run.
type BatchOptions struct {
	Dir      string
	Progress func(current, total int, path string)
}

// FileResult records the outcome of one input file.
type FileResult struct {
	Input      string
	Output     string
	TrackCount int
	Err        error
}

// Processed reports whether the file produced an analysis table.
func (r FileResult) Processed() bool {
	return r.Err == nil && r.Output != ""
}

// RunStats summarizes an analysis run.
type RunStats struct {
	Found     int
	Processed int
	Skipped   int
}

// Pipeline wires discovery, extraction, summarization, and export into
// the tracking workflow. Files are processed sequentially; a failing
// file is skipped and the run continues.
type Pipeline struct {
	logger     *slog.Logger
	discovery  *files.Discovery
	extractor  *trackdata.Extractor
	analysis   *exporter.AnalysisExporter
	aggregator *aggregator.Aggregator
	csvWriter  *exporter.CSVWriter
	workbook   *exporter.WorkbookWriter
}

// New creates a Pipeline. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		logger:     logger,
		discovery:  files.NewDiscovery(""),
		extractor:  trackdata.NewExtractor(logger),
		analysis:   exporter.NewAnalysisExporter(logger),
		aggregator: aggregator.New(logger),
		csvWriter:  exporter.NewCSVWriter(logger),
		workbook:   exporter.NewWorkbookWriter(logger),
	}
}

// Analyze discovers the XML input, extracts tracks from each file, and
// writes one analysis table per file. Discovery failure aborts the run;
// any per-file failure is logged, recorded in its FileResult, and
// skipped.
func (p *Pipeline) Analyze(ctx context.Context, opts AnalyzeOptions) ([]FileResult, RunStats, error) {
	if opts.Pattern == "" {
		opts.Pattern = config.DefaultXMLPattern
	}
	if opts.Suffix == "" {
		opts.Suffix = config.DefaultAnalysisSuffix
	}

	inputs, err := p.discovery.FindInputFiles(opts.Input, opts.Pattern, opts.Recursive)
	if err != nil {
		return nil, RunStats{}, err
	}

	stats := RunStats{Found: len(inputs)}
	if len(inputs) == 0 {
		p.logger.InfoContext(ctx, "no xml files found",
			slog.String("input", opts.Input),
			slog.String("pattern", opts.Pattern))
		return nil, stats, nil
	}

	results := make([]FileResult, 0, len(inputs))
	for i, input := range inputs {
		if opts.Progress != nil {
			opts.Progress(i+1, len(inputs), input.Path)
		}

		result := p.analyzeOne(ctx, input.Path, opts)
		results = append(results, result)
		if result.Processed() {
			stats.Processed++
		} else {
			stats.Skipped++
		}
	}

	p.logger.InfoContext(ctx, "analysis run complete",
		slog.Int("found", stats.Found),
		slog.Int("processed", stats.Processed),
		slog.Int("skipped", stats.Skipped))
	return results, stats, nil
}

func (p *Pipeline) analyzeOne(ctx context.Context, path string, opts AnalyzeOptions) FileResult {
	result := FileResult{Input: path}

	tracks, err := p.extractor.ExtractFile(ctx, path)
	if err != nil {
		p.logger.WarnContext(ctx, "skipping file that failed to parse",
			slog.String("file", path),
			slog.String("error", err.Error()))
		result.Err = err
		return result
	}

	if len(tracks) == 0 {
		p.logger.WarnContext(ctx, "skipping file with no tracks",
			slog.String("file", path))
		return result
	}
	result.TrackCount = len(tracks)

	summary := trackdata.Summarize(tracks)
	out := analysisPath(path, opts.OutputDir, opts.Suffix)
	if err := p.analysis.WriteAnalysisTable(out, tracks, summary); err != nil {
		p.logger.ErrorContext(ctx, "failed to write analysis table",
			slog.String("file", out),
			slog.String("error", err.Error()))
		result.Err = err
		return result
	}

	result.Output = out
	return result
}

// Consolidate reads the analysis tables under InputDir and writes the
// consolidated summary in the requested formats. Tables that cannot be
// read are skipped. When no table yields a row, no output is written.
func (p *Pipeline) Consolidate(ctx context.Context, opts ConsolidateOptions) (*aggregator.Consolidated, error) {
	if opts.Pattern == "" {
		opts.Pattern = config.DefaultAnalysisCSVPattern
	}
	if len(opts.Columns) == 0 {
		opts.Columns = trackdata.SummaryColumns()
	}
	if opts.Suffix == "" {
		opts.Suffix = config.DefaultAnalysisSuffix
	}

	tables, err := p.discovery.FindTableFiles(opts.InputDir, opts.Pattern)
	if err != nil {
		return nil, err
	}

	if len(tables) == 0 {
		p.logger.InfoContext(ctx, "no analysis tables found",
			slog.String("dir", opts.InputDir),
			slog.String("pattern", opts.Pattern))
		return &aggregator.Consolidated{
			Headers: append([]string{trackdata.ColFilename}, opts.Columns...),
		}, nil
	}

	paths := make([]string, len(tables))
	for i, table := range tables {
		paths[i] = table.Path
	}

	consolidated := p.aggregator.Consolidate(ctx, paths, opts.Columns, opts.Suffix)
	if len(consolidated.Rows) == 0 {
		p.logger.WarnContext(ctx, "no analysis tables could be read",
			slog.String("dir", opts.InputDir),
			slog.Int("skipped", consolidated.Skipped))
		return consolidated, nil
	}

	if opts.CSVPath != "" {
		if err := p.csvWriter.WriteExcelCSV(opts.CSVPath, consolidated.Headers, consolidated.Rows); err != nil {
			return nil, err
		}
		p.logger.InfoContext(ctx, "wrote consolidated summary",
			slog.String("file", opts.CSVPath),
			slog.Int("rows", len(consolidated.Rows)))
	}

	if opts.XLSXPath != "" {
		if err := p.workbook.WriteSheet(opts.XLSXPath, "Summary", consolidated.Headers, consolidated.Rows); err != nil {
			if opts.CSVPath == "" {
				return nil, err
			}
			// The CSV already landed; losing the workbook copy is not fatal.
			p.logger.WarnContext(ctx, "failed to write workbook export",
				slog.String("file", opts.XLSXPath),
				slog.String("error", err.Error()))
		}
	}

	return consolidated, nil
}

// Batch analyzes every XML file in one folder, writing a summary table
// next to each source, then aggregates those tables into a workbook in
// the same folder.
func (p *Pipeline) Batch(ctx context.Context, opts BatchOptions) (RunStats, *aggregator.Consolidated, error) {
	_, stats, err := p.Analyze(ctx, AnalyzeOptions{
		Input:     opts.Dir,
		OutputDir: opts.Dir,
		Pattern:   config.DefaultXMLPattern,
		Suffix:    config.BatchSummarySuffix,
		Progress:  opts.Progress,
	})
	if err != nil {
		return stats, nil, err
	}
	if stats.Found == 0 {
		return stats, nil, nil
	}
	if stats.Processed == 0 {
		p.logger.WarnContext(ctx, "no files produced summary tables",
			slog.String("dir", opts.Dir))
		return stats, nil, nil
	}

	consolidated, err := p.Consolidate(ctx, ConsolidateOptions{
		InputDir: opts.Dir,
		Pattern:  config.BatchSummaryCSVPattern,
		Suffix:   config.BatchSummarySuffix,
		XLSXPath: filepath.Join(opts.Dir, config.BatchAggregateXLSXName),
	})
	if err != nil {
		return stats, nil, err
	}
	return stats, consolidated, nil
}

// analysisPath names the output table for one input file. An empty
// outputDir places the table alongside its source.
func analysisPath(input, outputDir, suffix string) string {
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, stem+suffix+".csv")
}
