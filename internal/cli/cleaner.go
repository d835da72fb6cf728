package cli

import (
	"os"
	"path/filepath"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/pkg/openapi"
)

// Cleaner handles cleaning up generated documents
type Cleaner struct {
	scanner *DirectoryScanner
}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{
		scanner: NewDirectoryScanner(),
	}
}

// CleanGeneratedFiles removes openapi.json and openapi.yaml from the given
// directories and returns the removed paths
func (c *Cleaner) CleanGeneratedFiles(patterns []string) ([]string, error) {
	dirs, err := c.scanner.ScanDirectories(patterns)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, dir := range dirs {
		if err := c.cleanSingleDirectory(dir, &removed); err != nil {
			return removed, err
		}
	}
	return removed, nil
}

// cleanSingleDirectory removes the generated documents of one directory
func (c *Cleaner) cleanSingleDirectory(dir string, removed *[]string) error {
	for _, name := range []string{openapi.JSONFileName, openapi.YAMLFileName} {
		path := filepath.Join(dir, name)

		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.WrapFileSystemError("check", path, err)
		}

		if err := os.Remove(path); err != nil {
			return errors.WrapFileSystemError("remove", path, err)
		}
		*removed = append(*removed, path)
	}
	return nil
}
