// Package scan discovers candidate clip files under a source directory.
package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"clipmeta/internal/logging"
)

// DefaultExtensions is the allow-list used when none is configured.
var DefaultExtensions = []string{"mp4"}

// File is one discovered clip file.
type File struct {
	// Path is absolute.
	Path string
	// Name is the base name handed to the parser.
	Name string
}

// Videos walks root recursively and returns the regular files whose extension
// is in exts, sorted by path. Extensions are compared case-insensitively and
// may be given with or without the leading dot. Entries that cannot be read
// are skipped and logged at debug level.
func Videos(root string, exts []string, logger *slog.Logger) ([]File, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("scan: source directory is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve source directory %q: %w", root, err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolve source directory %q: %w", root, err)
	}

	allowed := extensionSet(exts)
	files := make([]File, 0, 64)
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == abs {
				return walkErr
			}
			logger.Debug("skipping unreadable entry",
				logging.String(logging.FieldPath, path),
				logging.Error(walkErr),
			)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		name := d.Name()
		if !allowed.has(name) {
			logger.Debug("extension not in allow-list", logging.String(logging.FieldFilename, name))
			return nil
		}
		files = append(files, File{Path: path, Name: name})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk source directory %q: %w", abs, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// Names returns the base names of files in order.
func Names(files []File) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}

type extSet map[string]struct{}

func extensionSet(exts []string) extSet {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	set := make(extSet, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		set[ext] = struct{}{}
	}
	return set
}

func (s extSet) has(name string) bool {
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}
	_, ok := s[strings.ToLower(ext[1:])]
	return ok
}
