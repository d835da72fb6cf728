// Package adapters converts live Go routers into routedoc routing structures
// and hosts the Swagger UI on them.
//
// Gin and Echo keep a flat route table and map onto the Fastify shape, Fiber
// groups methods per path like a Koa stack, and chi keeps mounted
// sub-routers as a tree like an Express stack.
package adapters

import (
	"sort"

	"github.com/toyz/routedoc/internal/swaggerui"
	"github.com/toyz/routedoc/pkg/openapi"
)

// newAssets prepares the UI for doc under base (swaggerui.DefaultPath when
// empty)
func newAssets(doc *openapi.Document, base string) (*swaggerui.Assets, error) {
	return swaggerui.NewAssets(doc, base)
}

// sortedMethods returns the keys of a method set in lexical order
func sortedMethods[T any](handlers map[string]T) []string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return methods
}
