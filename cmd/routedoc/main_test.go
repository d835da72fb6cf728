package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expressSnapshot = `{
  "stack": [
    {"kind": "middleware", "name": "jsonParser"},
    {"kind": "route", "route": {"path": "/health", "methods": ["get"]}},
    {"kind": "router", "matcher": "^\\/users\\/?(?=\\/|$)", "stack": [
      {"kind": "route", "route": {"path": "/", "methods": ["get", "post"]}},
      {"kind": "route", "route": {"path": "/:id", "methods": ["get", "put", "options"]}}
    ]},
    {"kind": "route", "route": {"path": "*", "methods": ["get"]}}
  ]
}`

func execute(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := run(append([]string{"--no-color"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeSnapshot(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "routes.json")
	require.NoError(t, os.WriteFile(input, []byte(expressSnapshot), 0644))
	return dir, input
}

func TestVersion(t *testing.T) {
	code, out, _ := execute("version", "--short")
	assert.Equal(t, 0, code)
	assert.Equal(t, "dev\n", out)

	code, out, _ = execute("version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "routedoc dev")
	assert.Contains(t, out, "Go version:")
}

func TestDocsScaffoldClean(t *testing.T) {
	dir, input := writeSnapshot(t)
	docsDir := filepath.Join(dir, "docs")

	code, out, errOut := execute("docs", "-f", "Express", "-i", input, "-o", docsDir, "--title", "Users API")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Documentation Complete!")
	assert.Contains(t, out, "Routes found: 3")
	assert.FileExists(t, filepath.Join(docsDir, "openapi.json"))
	assert.FileExists(t, filepath.Join(docsDir, "openapi.yaml"))

	doc, err := os.ReadFile(filepath.Join(docsDir, "openapi.json"))
	require.NoError(t, err)
	assert.Contains(t, string(doc), `"title": "Users API"`)
	assert.Contains(t, string(doc), `"/users/{id}"`)
	assert.NotContains(t, string(doc), `"options"`)

	appDir := filepath.Join(dir, "app")
	code, out, errOut = execute("scaffold", "-s", filepath.Join(docsDir, "openapi.json"), "-t", "fastify", "-o", appDir)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Scaffold Complete!")
	assert.FileExists(t, filepath.Join(appDir, "route", "users.js"))
	assert.FileExists(t, filepath.Join(appDir, "controller", "health.controller.js"))
	assert.FileExists(t, filepath.Join(appDir, "index.js"))

	code, out, errOut = execute("clean", docsDir)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Removed 2 generated documents")
	assert.NoFileExists(t, filepath.Join(docsDir, "openapi.json"))
}

func TestDocs_Errors(t *testing.T) {
	_, input := writeSnapshot(t)

	t.Run("unsupported framework", func(t *testing.T) {
		code, _, errOut := execute("docs", "-f", "hapi", "-i", input, "-o", t.TempDir())
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "ERROR: docs failed")
		assert.Contains(t, errOut, "Configuration Error")
		assert.Contains(t, errOut, "unsupported framework: hapi")
	})

	t.Run("missing input", func(t *testing.T) {
		code, _, errOut := execute("docs", "-o", t.TempDir())
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "no routing snapshot given")
	})

	t.Run("config file", func(t *testing.T) {
		config := filepath.Join(t.TempDir(), "routedoc.yaml")
		require.NoError(t, os.WriteFile(config, []byte("framework: koa\n"), 0644))

		code, _, errOut := execute("--config", config, "docs", "-i", input, "-o", t.TempDir())
		assert.Equal(t, 1, code, "an express snapshot does not decode as koa")
		assert.Contains(t, errOut, "ERROR: docs failed")
	})
}

func TestUnknownCommand(t *testing.T) {
	code, _, _ := execute("publish")
	assert.Equal(t, 1, code)
}
