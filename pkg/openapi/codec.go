package openapi

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"
)

// JSON encodes the document with two-space indentation
func (d *Document) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document as JSON: %w", err)
	}
	return data, nil
}

// YAML encodes the document as YAML
func (d *Document) YAML() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document as YAML: %w", err)
	}
	return data, nil
}

// Parse decodes a JSON or YAML document. JSON is accepted through the YAML
// decoder.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode OpenAPI document: %w", err)
	}
	if doc.Paths == nil {
		doc.Paths = make(map[string]PathItem)
	}
	return doc, nil
}

// Load reads a document from a .json, .yaml or .yml file
func Load(path string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("unsupported OpenAPI file extension %q (use .json, .yaml or .yml)", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAPI document: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
