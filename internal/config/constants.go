package config

// Application constants - hardcoded values shared by every command
const (
	// Application Info
	AppName    = "SG-Mitochondrial-clustering"
	AppVersion = "1.2.0"

	// File Paths (relative to executable)
	DefaultDataDir     = "data"
	DefaultLogsDir     = "logs"
	DefaultXMLDir      = "data/xml"
	DefaultAnalysisDir = "data/analysis"
	DefaultSummaryDir  = "data/summary"

	// Analysis defaults
	DefaultXMLPattern     = "*.xml"
	DefaultAnalysisSuffix = "_analysis"
	BatchSummarySuffix    = "_summary"

	// Consolidation defaults
	DefaultAnalysisCSVPattern = "*_analysis.csv"
	BatchSummaryCSVPattern    = "*_summary.csv"
	DefaultSummaryCSVName     = "tracking_summary.csv"
	DefaultSummaryXLSXName    = "tracking_summary.xlsx"
	BatchAggregateXLSXName    = "aggregated_summary.xlsx"

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)
