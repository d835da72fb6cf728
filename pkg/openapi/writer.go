package openapi

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// JSONFileName is the file name of the JSON rendition
	JSONFileName = "openapi.json"
	// YAMLFileName is the file name of the YAML rendition
	YAMLFileName = "openapi.yaml"
)

// Written lists the files produced by WriteFiles
type Written struct {
	JSONPath string
	YAMLPath string
}

// WriteFiles writes openapi.json and openapi.yaml into dir, creating it when
// missing
func WriteFiles(doc *Document, dir string) (*Written, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	jsonData, err := doc.JSON()
	if err != nil {
		return nil, err
	}
	yamlData, err := doc.YAML()
	if err != nil {
		return nil, err
	}

	written := &Written{
		JSONPath: filepath.Join(dir, JSONFileName),
		YAMLPath: filepath.Join(dir, YAMLFileName),
	}

	if err := os.WriteFile(written.JSONPath, jsonData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", written.JSONPath, err)
	}
	if err := os.WriteFile(written.YAMLPath, yamlData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", written.YAMLPath, err)
	}

	return written, nil
}
