package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/routedoc/internal/errors"
)

// DirectoryScanner expands directory arguments into concrete directories
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// ScanDirectories resolves each argument to a directory list. Go-style
// patterns like "./docs/..." include every subdirectory. Missing directories
// are skipped.
func (s *DirectoryScanner) ScanDirectories(patterns []string) ([]string, error) {
	var dirs []string
	seen := make(map[string]bool)
	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, pattern := range patterns {
		recursive := strings.HasSuffix(pattern, "/...")
		base := strings.TrimSuffix(pattern, "/...")
		if base == "" {
			base = "."
		}

		cleanPath, err := filepath.Abs(base)
		if err != nil {
			return nil, errors.WrapFileSystemError("resolve", base, err)
		}
		if info, err := os.Stat(cleanPath); err != nil || !info.IsDir() {
			continue
		}

		if !recursive {
			add(cleanPath)
			continue
		}

		err = filepath.WalkDir(cleanPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Skip directories that can't be accessed
				return nil
			}
			if d.IsDir() {
				if path != cleanPath && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.WrapFileSystemError("walk", cleanPath, err)
		}
	}

	return dirs, nil
}
