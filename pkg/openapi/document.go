// Package openapi renders normalized routes into OpenAPI 3 documents and
// reads such documents back from JSON or YAML.
package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/toyz/routedoc/pkg/routedoc"
	"go.yaml.in/yaml/v4"
)

// DefaultVersion is the OpenAPI version written into generated documents
const DefaultVersion = "3.0.0"

// Info contains API metadata
type Info struct {
	Title       string `json:"title" yaml:"title" toml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Version     string `json:"version" yaml:"version" toml:"version"`
}

// DefaultInfo returns the metadata used when none is configured
func DefaultInfo() Info {
	return Info{
		Title:       "Sample API",
		Description: "Auto-generated OpenAPI documentation",
		Version:     "1.0.0",
	}
}

// Document is an OpenAPI document limited to the fields routedoc emits
type Document struct {
	OpenAPI string              `json:"openapi" yaml:"openapi"`
	Info    Info                `json:"info" yaml:"info"`
	Paths   map[string]PathItem `json:"paths" yaml:"paths"`
}

// PathItem maps a lowercase HTTP method to its operation
type PathItem map[string]*Operation

// Operation is a single API operation on a path. Parameters is always
// encoded, as an empty list when the path has none.
type Operation struct {
	Summary    string               `json:"summary,omitempty" yaml:"summary,omitempty"`
	Parameters []routedoc.ParamSpec `json:"parameters" yaml:"parameters"`
	Responses  map[string]Response  `json:"responses" yaml:"responses"`
}

// Response describes a single response
type Response struct {
	Description string `json:"description" yaml:"description"`
}

// httpMethods lists the operation keys of a path item in canonical order
var httpMethods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

func methodRank(method string) int {
	for i, m := range httpMethods {
		if m == method {
			return i
		}
	}
	return len(httpMethods)
}

// IsHTTPMethod reports whether key names an operation of a path item
func IsHTTPMethod(key string) bool {
	return methodRank(strings.ToLower(key)) < len(httpMethods)
}

// Methods returns the operation methods of the item in canonical HTTP order
func (p PathItem) Methods() []string {
	methods := make([]string, 0, len(p))
	for method := range p {
		methods = append(methods, method)
	}
	sort.Slice(methods, func(i, j int) bool {
		ri, rj := methodRank(methods[i]), methodRank(methods[j])
		if ri != rj {
			return ri < rj
		}
		return methods[i] < methods[j]
	})
	return methods
}

// UnmarshalYAML keeps only operation entries; path-level keys such as
// "parameters" or "summary" are skipped.
func (p *PathItem) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: path item must be a mapping", node.Line)
	}

	item := make(PathItem)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if !IsHTTPMethod(key) {
			continue
		}

		op := &Operation{}
		if err := node.Content[i+1].Decode(op); err != nil {
			return fmt.Errorf("failed to decode %s operation: %w", key, err)
		}
		if op.Parameters == nil {
			op.Parameters = []routedoc.ParamSpec{}
		}
		item[strings.ToLower(key)] = op
	}

	*p = item
	return nil
}

// PathKeys returns the document's paths sorted lexically
func (d *Document) PathKeys() []string {
	keys := make([]string, 0, len(d.Paths))
	for path := range d.Paths {
		keys = append(keys, path)
	}
	sort.Strings(keys)
	return keys
}
