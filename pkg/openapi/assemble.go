package openapi

import (
	"fmt"
	"strings"

	"github.com/toyz/routedoc/pkg/routedoc"
)

// Option configures a generated document
type Option func(*Document)

// WithInfo sets the document metadata
func WithInfo(info Info) Option {
	return func(d *Document) {
		d.Info = info
	}
}

// WithOpenAPIVersion sets the openapi field of the document
func WithOpenAPIVersion(version string) Option {
	return func(d *Document) {
		if version != "" {
			d.OpenAPI = version
		}
	}
}

// New creates an empty document
func New(opts ...Option) *Document {
	doc := &Document{
		OpenAPI: DefaultVersion,
		Info:    DefaultInfo(),
		Paths:   make(map[string]PathItem),
	}
	for _, opt := range opts {
		opt(doc)
	}
	return doc
}

// Summary returns the generated summary of an operation
func Summary(method, path string) string {
	return fmt.Sprintf("Handle %s requests for %s", method, path)
}

// Assemble maps each route to a path item with one operation per method.
// Routes sharing a path are merged into the same path item; a method seen
// twice on a path keeps the last operation.
func Assemble(routes []routedoc.RouteRecord, opts ...Option) *Document {
	doc := New(opts...)

	for _, route := range routes {
		item, exists := doc.Paths[route.Path]
		if !exists {
			item = make(PathItem)
			doc.Paths[route.Path] = item
		}

		params := route.Params
		if params == nil {
			params = []routedoc.ParamSpec{}
		}
		for _, method := range route.Methods {
			item[strings.ToLower(method)] = &Operation{
				Summary:    Summary(method, route.Path),
				Parameters: params,
				Responses: map[string]Response{
					"200": {Description: "Success"},
				},
			}
		}
	}

	return doc
}

// Generate extracts the routes of app and assembles them into a document
func Generate(framework string, app any, opts ...Option) (*Document, error) {
	routes, err := routedoc.ExtractRoutes(framework, app)
	if err != nil {
		return nil, err
	}
	return Assemble(routes, opts...), nil
}
