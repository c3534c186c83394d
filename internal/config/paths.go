package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds all file system paths used by the application.
// All paths are resolved relative to the executable location so the
// tool behaves the same no matter which directory it is launched from.
type Paths struct {
	// Base paths
	ExecutableDir string // Directory containing the executable
	DataDir       string // Base data directory

	// Data subdirectories
	XMLDir      string // Tracking XML input files
	AnalysisDir string // Per-file analysis CSV output
	SummaryDir  string // Consolidated summary output
	LogsDir     string // Log files

	// Well-known files
	SummaryCSV  string // Consolidated summary CSV
	SummaryXLSX string // Consolidated summary workbook
}

// GetPaths returns a Paths instance anchored at the executable's directory
func GetPaths() (*Paths, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	// Resolve symlinks so paths stay stable under go run and installers
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable path: %w", err)
	}

	execDir := filepath.Dir(execPath)
	return newPaths(execDir), nil
}

// newPaths builds the Paths layout under the given base directory
func newPaths(baseDir string) *Paths {
	summaryDir := filepath.Join(baseDir, DefaultSummaryDir)

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       filepath.Join(baseDir, DefaultDataDir),
		XMLDir:        filepath.Join(baseDir, DefaultXMLDir),
		AnalysisDir:   filepath.Join(baseDir, DefaultAnalysisDir),
		SummaryDir:    summaryDir,
		LogsDir:       filepath.Join(baseDir, DefaultLogsDir),
		SummaryCSV:    filepath.Join(summaryDir, DefaultSummaryCSVName),
		SummaryXLSX:   filepath.Join(summaryDir, DefaultSummaryXLSXName),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.DataDir,
		p.XMLDir,
		p.AnalysisDir,
		p.SummaryDir,
		p.LogsDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetLogPath returns the full path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetXMLPath returns the full path for a tracking XML file
func (p *Paths) GetXMLPath(filename string) string {
	return filepath.Join(p.XMLDir, filename)
}

// GetAnalysisPath returns the full path for a per-file analysis CSV
func (p *Paths) GetAnalysisPath(filename string) string {
	return filepath.Join(p.AnalysisDir, filename)
}

// GetSummaryPath returns the full path for a consolidated summary file
func (p *Paths) GetSummaryPath(filename string) string {
	return filepath.Join(p.SummaryDir, filename)
}

// FileExists reports whether the given path exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
