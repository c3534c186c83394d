package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/wonkicholab/SG-Mitochondrial-clustering/internal/errors"
)

// touch creates an empty file under dir, making parents as needed
func touch(t *testing.T, dir string, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	return path
}

func TestFindInputFiles_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "sample.xml")

	d := NewDiscovery("")
	found, err := d.FindInputFiles(path, "*.xml", false)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, path, found[0].Path)
	assert.Equal(t, "sample.xml", found[0].Name)
}

func TestFindInputFiles_Directory(t *testing.T) {
	dir := t.TempDir()
	b := touch(t, dir, "b.xml")
	a := touch(t, dir, "a.xml")
	touch(t, dir, "notes.txt")
	touch(t, dir, filepath.Join("nested", "c.xml"))

	d := NewDiscovery("")
	found, err := d.FindInputFiles(dir, "*.xml", false)
	require.NoError(t, err)
	require.Len(t, found, 2)

	// Sorted lexicographically, nested files excluded
	assert.Equal(t, a, found[0].Path)
	assert.Equal(t, b, found[1].Path)
}

func TestFindInputFiles_Recursive(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.xml")
	c := touch(t, dir, filepath.Join("nested", "c.xml"))
	deep := touch(t, dir, filepath.Join("nested", "deeper", "d.xml"))
	touch(t, dir, filepath.Join("nested", "skip.csv"))

	d := NewDiscovery("")
	found, err := d.FindInputFiles(dir, "*.xml", true)
	require.NoError(t, err)
	require.Len(t, found, 3)

	paths := []string{found[0].Path, found[1].Path, found[2].Path}
	assert.Equal(t, []string{a, c, deep}, paths)
}

func TestFindInputFiles_Pattern(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Experiment1.xml")
	touch(t, dir, "Experiment2.xml")
	touch(t, dir, "calibration.xml")

	d := NewDiscovery("")
	found, err := d.FindInputFiles(dir, "Experiment*.xml", false)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Experiment1.xml", found[0].Name)
	assert.Equal(t, "Experiment2.xml", found[1].Name)
}

func TestFindInputFiles_MissingRoot(t *testing.T) {
	d := NewDiscovery("")
	_, err := d.FindInputFiles(filepath.Join(t.TempDir(), "absent"), "*.xml", false)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeNotFound, appErr.Type)
}

func TestFindInputFiles_EmptyDirectory(t *testing.T) {
	d := NewDiscovery("")
	found, err := d.FindInputFiles(t.TempDir(), "*.xml", false)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindInputFiles_RelativeRoot(t *testing.T) {
	base := t.TempDir()
	touch(t, base, filepath.Join("inputs", "a.xml"))

	d := NewDiscovery(base)
	found, err := d.FindInputFiles("inputs", "*.xml", false)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "a.xml", found[0].Name)
}

func TestFindTableFiles(t *testing.T) {
	dir := t.TempDir()
	b := touch(t, dir, "b_analysis.csv")
	a := touch(t, dir, "a_analysis.csv")
	touch(t, dir, "raw.csv")
	touch(t, dir, filepath.Join("nested", "c_analysis.csv"))

	d := NewDiscovery("")
	found, err := d.FindTableFiles(dir, "*_analysis.csv")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, a, found[0].Path)
	assert.Equal(t, b, found[1].Path)
}

func TestFindTableFiles_MissingDirectory(t *testing.T) {
	d := NewDiscovery("")
	_, err := d.FindTableFiles(filepath.Join(t.TempDir(), "absent"), "*.csv")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeNotFound, appErr.Type)
}

func TestFindTableFiles_FileInsteadOfDirectory(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "a_analysis.csv")

	d := NewDiscovery("")
	_, err := d.FindTableFiles(path, "*.csv")
	assert.Error(t, err)
}
