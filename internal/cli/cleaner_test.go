package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
}

func TestDirectoryScanner_ScanDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0755))

	scanner := NewDirectoryScanner()

	dirs, err := scanner.ScanDirectories([]string{root})
	require.NoError(t, err)
	assert.Equal(t, []string{root}, dirs)

	dirs, err = scanner.ScanDirectories([]string{root + "/...", filepath.Join(root, "missing")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{root, filepath.Join(root, "a"), filepath.Join(root, "a", "b")}, dirs)
}

func TestCleaner_CleanGeneratedFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "openapi.json"))
	touch(t, filepath.Join(root, "openapi.yaml"))
	touch(t, filepath.Join(root, "nested", "openapi.json"))
	touch(t, filepath.Join(root, "nested", "keep.json"))

	t.Run("single directory", func(t *testing.T) {
		removed, err := NewCleaner().CleanGeneratedFiles([]string{root})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "openapi.json"), filepath.Join(root, "openapi.yaml")}, removed)
		assert.FileExists(t, filepath.Join(root, "nested", "openapi.json"))
	})

	t.Run("recursive", func(t *testing.T) {
		removed, err := NewCleaner().CleanGeneratedFiles([]string{root + "/..."})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "nested", "openapi.json")}, removed)
		assert.FileExists(t, filepath.Join(root, "nested", "keep.json"))
	})

	t.Run("nothing left", func(t *testing.T) {
		removed, err := NewCleaner().CleanGeneratedFiles([]string{root + "/..."})
		require.NoError(t, err)
		assert.Empty(t, removed)
	})
}
