package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths_Layout(t *testing.T) {
	base := filepath.Join("opt", "tracking")
	p := newPaths(base)

	assert.Equal(t, base, p.ExecutableDir)
	assert.Equal(t, filepath.Join(base, "data"), p.DataDir)
	assert.Equal(t, filepath.Join(base, "data", "xml"), p.XMLDir)
	assert.Equal(t, filepath.Join(base, "data", "analysis"), p.AnalysisDir)
	assert.Equal(t, filepath.Join(base, "data", "summary"), p.SummaryDir)
	assert.Equal(t, filepath.Join(base, "logs"), p.LogsDir)
	assert.Equal(t, filepath.Join(base, "data", "summary", "tracking_summary.csv"), p.SummaryCSV)
	assert.Equal(t, filepath.Join(base, "data", "summary", "tracking_summary.xlsx"), p.SummaryXLSX)
}

func TestGetPaths(t *testing.T) {
	p, err := GetPaths()
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.NotEmpty(t, p.ExecutableDir)
	assert.True(t, filepath.IsAbs(p.ExecutableDir))
	assert.Equal(t, filepath.Join(p.ExecutableDir, "data"), p.DataDir)
}

func TestEnsureDirectories(t *testing.T) {
	p := newPaths(t.TempDir())

	err := p.EnsureDirectories()
	require.NoError(t, err)

	for _, dir := range []string{p.DataDir, p.XMLDir, p.AnalysisDir, p.SummaryDir, p.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err, "expected directory %s", dir)
		assert.True(t, info.IsDir())
	}

	// Second call is a no-op
	assert.NoError(t, p.EnsureDirectories())
}

func TestPathHelpers(t *testing.T) {
	p := newPaths("base")

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "log path",
			got:      p.GetLogPath("tracking.log"),
			expected: filepath.Join("base", "logs", "tracking.log"),
		},
		{
			name:     "xml path",
			got:      p.GetXMLPath("Experiment1.xml"),
			expected: filepath.Join("base", "data", "xml", "Experiment1.xml"),
		},
		{
			name:     "analysis path",
			got:      p.GetAnalysisPath("Experiment1_analysis.csv"),
			expected: filepath.Join("base", "data", "analysis", "Experiment1_analysis.csv"),
		},
		{
			name:     "summary path",
			got:      p.GetSummaryPath("tracking_summary.csv"),
			expected: filepath.Join("base", "data", "summary", "tracking_summary.csv"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "present.xml")
	require.NoError(t, os.WriteFile(existing, []byte("<root/>"), 0644))

	assert.True(t, FileExists(existing))
	assert.False(t, FileExists(filepath.Join(dir, "absent.xml")))
	assert.True(t, FileExists(dir))
}
