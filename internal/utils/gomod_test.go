package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoModParser_ParseModuleName(t *testing.T) {
	dir := t.TempDir()
	goMod := filepath.Join(dir, "go.mod")
	require.NoError(t, os.WriteFile(goMod, []byte("module github.com/acme/shop\n\ngo 1.22\n"), 0644))

	parser := NewGoModParser()

	name, err := parser.ParseModuleName(goMod)
	require.NoError(t, err)
	assert.Equal(t, "github.com/acme/shop", name)

	_, err = parser.ParseModuleName(filepath.Join(dir, "main.go"))
	assert.ErrorContains(t, err, "not a go.mod file")

	empty := filepath.Join(t.TempDir(), "go.mod")
	require.NoError(t, os.WriteFile(empty, []byte("go 1.22\n"), 0644))
	_, err = parser.ParseModuleName(empty)
	assert.ErrorContains(t, err, "no module declaration")
}

func TestGoModParser_ResolveModulePath(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/app\n"), 0644))
	nested := filepath.Join(root, "internal", "gen")
	require.NoError(t, os.MkdirAll(nested, 0755))

	parser := NewGoModParser()

	path, ok := parser.ResolveModulePath(nested)
	require.True(t, ok)
	assert.Equal(t, "example.com/app/internal/gen", path)

	path, ok = parser.ResolveModulePath(root)
	require.True(t, ok)
	assert.Equal(t, "example.com/app", path)
}

func TestGoModParser_BuildGoMod(t *testing.T) {
	parser := NewGoModParser()

	content, err := parser.BuildGoMod("example.com/petstore", "1.22", []Requirement{
		{Path: "github.com/gin-gonic/gin", Version: "v1.11.0"},
	})
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "module example.com/petstore")
	assert.Contains(t, text, "go 1.22")
	assert.Contains(t, text, "github.com/gin-gonic/gin v1.11.0")

	dir := t.TempDir()
	goMod := filepath.Join(dir, "go.mod")
	require.NoError(t, os.WriteFile(goMod, content, 0644))
	name, err := parser.ParseModuleName(goMod)
	require.NoError(t, err)
	assert.Equal(t, "example.com/petstore", name)
}

func TestGoModParser_BuildGoModInvalid(t *testing.T) {
	parser := NewGoModParser()

	_, err := parser.BuildGoMod("not a path", "1.22", nil)
	assert.ErrorContains(t, err, "invalid module path")

	_, err = parser.BuildGoMod("example.com/x", "banana", nil)
	assert.ErrorContains(t, err, "invalid go version")
}
