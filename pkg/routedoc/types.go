// Package routedoc walks the routing structures of Express-, Fastify- and
// Koa-style routers and produces one canonical route list.
package routedoc

// WildcardPath is the catch-all path marker. Routes resolving to it are
// never reported.
const WildcardPath = "*"

// RouteRecord is a single normalized route
type RouteRecord struct {
	// Path uses brace notation for parameters (e.g., "/users/{id}")
	Path string `json:"path" yaml:"path"`

	// Methods holds uppercased HTTP methods in traversal order
	Methods []string `json:"methods" yaml:"methods"`

	// Params is always derived from Path with ExtractParams
	Params []ParamSpec `json:"params" yaml:"params"`
}

// ParamSpec describes one path parameter as an OpenAPI parameter object
type ParamSpec struct {
	Name     string      `json:"name" yaml:"name"`
	In       string      `json:"in" yaml:"in"`
	Required bool        `json:"required" yaml:"required"`
	Schema   ParamSchema `json:"schema" yaml:"schema"`
}

// ParamSchema is the schema attached to a ParamSpec
type ParamSchema struct {
	Type string `json:"type" yaml:"type"`
}

// newRouteRecord builds a record for an already canonical path
func newRouteRecord(path string, methods []string) RouteRecord {
	if methods == nil {
		methods = []string{}
	}
	return RouteRecord{
		Path:    path,
		Methods: methods,
		Params:  ExtractParams(path),
	}
}

// reportable reports whether a resolved path may become a RouteRecord
func reportable(path string) bool {
	return path != "" && path != WildcardPath
}
