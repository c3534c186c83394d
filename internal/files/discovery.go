package files

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/wonkicholab/SG-Mitochondrial-clustering/internal/errors"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides file discovery operations. Relative search roots
// are resolved against basePath.
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindInputFiles resolves root into the list of files to process,
// sorted lexicographically by path. A root naming a single file returns
// just that file; a directory is searched with pattern, descending into
// subdirectories when recursive is set. A root that does not exist is a
// not-found error, which callers treat as fatal.
func (d *Discovery) FindInputFiles(root, pattern string, recursive bool) ([]FileInfo, error) {
	fullPath := d.resolve(root)

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, errors.NewNotFoundError("input path " + fullPath)
	}

	if !info.IsDir() {
		return []FileInfo{fileInfo(fullPath, info)}, nil
	}

	var found []FileInfo
	if recursive {
		found, err = d.walkDir(fullPath, pattern)
	} else {
		found, err = d.globDir(fullPath, pattern)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Path < found[j].Path
	})

	return found, nil
}

// FindTableFiles finds persisted per-file tables matching pattern in
// dir, sorted lexicographically by path. The search is non-recursive.
func (d *Discovery) FindTableFiles(dir, pattern string) ([]FileInfo, error) {
	fullPath := d.resolve(dir)

	info, err := os.Stat(fullPath)
	if err != nil || !info.IsDir() {
		return nil, errors.NewNotFoundError("table directory " + fullPath)
	}

	found, err := d.globDir(fullPath, pattern)
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Path < found[j].Path
	})

	return found, nil
}

// globDir matches pattern against the direct children of dir
func (d *Discovery) globDir(dir, pattern string) ([]FileInfo, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, errors.NewValidationError("invalid file pattern " + pattern)
	}

	var found []FileInfo
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		found = append(found, fileInfo(match, info))
	}

	return found, nil
}

// walkDir matches pattern against base names at any depth under dir
func (d *Discovery) walkDir(dir, pattern string) ([]FileInfo, error) {
	var found []FileInfo

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		matched, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return errors.NewValidationError("invalid file pattern " + pattern)
		}
		if !matched {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return nil
		}
		found = append(found, fileInfo(path, info))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// resolve returns path anchored at basePath unless already absolute
func (d *Discovery) resolve(path string) string {
	if filepath.IsAbs(path) || d.basePath == "" {
		return path
	}
	return filepath.Join(d.basePath, path)
}

func fileInfo(path string, info fs.FileInfo) FileInfo {
	return FileInfo{
		Path:    path,
		Name:    filepath.Base(path),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}
