package openapi

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/routedoc/pkg/routedoc"
)

const petstoreYAML = `
openapi: 3.0.0
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    summary: Pets collection
    get:
      summary: List pets
      responses:
        "200":
          description: Success
    post:
      responses:
        "201":
          description: Created
  /pets/{petId}:
    parameters:
      - name: petId
        in: path
        required: true
        schema:
          type: string
    get:
      parameters:
        - name: petId
          in: path
          required: true
          schema:
            type: string
      responses:
        "200":
          description: Success
`

func TestParse_YAML(t *testing.T) {
	doc, err := Parse([]byte(petstoreYAML))
	require.NoError(t, err)

	assert.Equal(t, "3.0.0", doc.OpenAPI)
	assert.Equal(t, "Petstore", doc.Info.Title)
	assert.Equal(t, []string{"/pets", "/pets/{petId}"}, doc.PathKeys())
	assert.Equal(t, []string{"get", "post"}, doc.Paths["/pets"].Methods())
	assert.Equal(t, "List pets", doc.Paths["/pets"]["get"].Summary)

	pet := doc.Paths["/pets/{petId}"]
	assert.Equal(t, []string{"get"}, pet.Methods())
	require.Len(t, pet["get"].Parameters, 1)
	assert.Equal(t, "petId", pet["get"].Parameters[0].Name)
}

func TestParse_MissingParametersBecomeEmpty(t *testing.T) {
	doc, err := Parse([]byte(petstoreYAML))
	require.NoError(t, err)

	post := doc.Paths["/pets"]["post"]
	require.NotNil(t, post)
	assert.NotNil(t, post.Parameters)
	assert.Empty(t, post.Parameters)

	data, err := doc.JSON()
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"parameters": null`)
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{"openapi":"3.0.0","info":{"title":"T","version":"1"},"paths":{"/a":{"GET":{"responses":{"200":{"description":"Success"}}}}}}`)

	doc, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"get"}, doc.Paths["/a"].Methods())
}

func TestParse_MissingPaths(t *testing.T) {
	doc, err := Parse([]byte("openapi: 3.0.0\ninfo:\n  title: Empty\n  version: 0.0.1\n"))
	require.NoError(t, err)
	assert.NotNil(t, doc.Paths)
	assert.Empty(t, doc.Paths)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("paths: [unclosed"))
	assert.Error(t, err)

	_, err = Parse([]byte("paths:\n  /a: not-a-mapping\n"))
	assert.Error(t, err)
}

func TestDocument_JSONRoundTrip(t *testing.T) {
	doc := Assemble([]routedoc.RouteRecord{
		{Path: "/users/{id}", Methods: []string{"GET"}, Params: routedoc.ExtractParams("/users/{id}")},
	})

	data, err := doc.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"info\": {")

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "3.0.0", raw["openapi"])

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, doc, parsed)
}

func TestDocument_YAMLRoundTrip(t *testing.T) {
	doc := Assemble([]routedoc.RouteRecord{
		{Path: "/orders/{orderId}/cancel", Methods: []string{"POST"}, Params: routedoc.ExtractParams("/orders/{orderId}/cancel")},
	}, WithInfo(Info{Title: "Orders", Version: "1.0.0"}))

	data, err := doc.YAML()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, doc, parsed)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "api.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(petstoreYAML), 0644))

	doc, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Len(t, doc.Paths, 2)

	txtPath := filepath.Join(dir, "api.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte(petstoreYAML), 0644))
	_, err = Load(txtPath)
	assert.ErrorContains(t, err, "unsupported OpenAPI file extension")

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to read")
}
