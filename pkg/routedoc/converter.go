package routedoc

import (
	"regexp"
	"strings"
)

var (
	// colonParamRegex matches colon parameter syntax: :param
	colonParamRegex = regexp.MustCompile(`:(\w+)`)

	// braceParamRegex matches brace parameter syntax: {param}
	braceParamRegex = regexp.MustCompile(`\{([^{}/]+)\}`)
)

// PathConverter handles conversion between colon route syntax and brace route syntax
type PathConverter struct{}

// NewPathConverter creates a new path converter
func NewPathConverter() *PathConverter {
	return &PathConverter{}
}

// ToCanonical converts colon route syntax to brace route syntax
// Converts: /users/:id -> /users/{id}
// Converts: /posts/:slug/comments/:id -> /posts/{slug}/comments/{id}
func (pc *PathConverter) ToCanonical(path string) string {
	return colonParamRegex.ReplaceAllString(path, "{$1}")
}

// ToColon converts brace route syntax back to colon route syntax
// Converts: /users/{id} -> /users/:id
func (pc *PathConverter) ToColon(path string) string {
	return braceParamRegex.ReplaceAllString(path, ":$1")
}

// Global converter instance
var DefaultPathConverter = NewPathConverter()

// ToCanonical converts a path to brace notation using the default converter
func ToCanonical(path string) string {
	return DefaultPathConverter.ToCanonical(path)
}

// ToColon converts a path to colon notation using the default converter
func ToColon(path string) string {
	return DefaultPathConverter.ToColon(path)
}

// joinPrefix appends path to an accumulated prefix, collapsing the slash
// shared at the boundary.
func joinPrefix(prefix, path string) string {
	if prefix == "" {
		return path
	}
	if path == "" {
		return prefix
	}
	if strings.HasSuffix(prefix, "/") && strings.HasPrefix(path, "/") {
		return prefix + path[1:]
	}
	return prefix + path
}
