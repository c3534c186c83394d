package exporter

import (
	"log/slog"

	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/trackdata"
)

// AnalysisExporter writes per-file analysis tables: one row per track,
// each row carrying a copy of the file's five aggregate statistics.
type AnalysisExporter struct {
	csvWriter *CSVWriter
}

// NewAnalysisExporter creates a new analysis table exporter
func NewAnalysisExporter(logger *slog.Logger) *AnalysisExporter {
	return &AnalysisExporter{
		csvWriter: NewCSVWriter(logger),
	}
}

// WriteAnalysisTable writes the tracks of one file together with the
// file's summary to path. Tracks and summary are joined only here;
// callers keep them as separate values.
func (a *AnalysisExporter) WriteAnalysisTable(path string, tracks []trackdata.Track, summary trackdata.FileSummary) error {
	headers := append(trackdata.TrackColumns(), trackdata.SummaryColumns()...)

	summaryCells := summaryRow(summary)
	records := make([][]string, 0, len(tracks))
	for _, track := range tracks {
		records = append(records, append(trackRow(track), summaryCells...))
	}

	return a.csvWriter.WriteSimpleCSV(path, headers, records)
}

// trackRow converts one track to its CSV cells in TrackColumns order
func trackRow(t trackdata.Track) []string {
	return []string{
		formatInt(t.TrackID),
		formatInt(t.NSpots),
		formatInt(t.NMerges),
		formatBool(t.HasMerging()),
		formatFloat(t.MeanSpeed),
		formatFloat(t.MaxSpeed),
	}
}

// summaryRow converts a file summary to its CSV cells in SummaryColumns order
func summaryRow(s trackdata.FileSummary) []string {
	return []string{
		formatInt(s.TotalTracks),
		formatInt(s.TotalMerges),
		formatFloat(s.AvgSpeedAll),
		formatFloat(s.AvgSpeedMerging),
		formatFloat(s.AvgSpeedNonmerge),
	}
}
