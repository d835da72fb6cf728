package routedoc

import (
	"fmt"
	"strings"
)

// ExpressRoute is the route attached to a leaf layer
type ExpressRoute struct {
	Path string `json:"path" yaml:"path"`

	// Methods lists the handled methods in registration order
	Methods []string `json:"methods" yaml:"methods"`
}

// ExpressLayer is one entry of an Express-style router stack
type ExpressLayer struct {
	Kind LayerKind `json:"kind" yaml:"kind"`
	Name string    `json:"name,omitempty" yaml:"name,omitempty"`

	// Route is set for LayerRoute entries
	Route *ExpressRoute `json:"route,omitempty" yaml:"route,omitempty"`

	// Matcher is the source of the compiled mount pattern for LayerRouter
	// entries (e.g., `^\/users\/?(?=\/|$)`)
	Matcher string `json:"matcher,omitempty" yaml:"matcher,omitempty"`

	// Stack holds the mounted router's own layers for LayerRouter entries
	Stack []ExpressLayer `json:"stack,omitempty" yaml:"stack,omitempty"`
}

// ExpressApp is the root of an Express-style routing structure
type ExpressApp struct {
	Stack []ExpressLayer `json:"stack" yaml:"stack"`
}

// ExtractExpressRoutes walks the stack depth-first and returns one record per
// route layer. OPTIONS is dropped from every method set.
func ExtractExpressRoutes(app *ExpressApp) ([]RouteRecord, error) {
	if app == nil {
		return nil, structureErrorf(FrameworkExpress, "application is nil")
	}

	routes := make([]RouteRecord, 0)
	if err := walkExpressStack(app.Stack, "", &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

// resolveKind returns the layer's kind. Unset kinds are inferred the way a
// live Express stack is read: a route makes a leaf, a "router" name or a
// child stack makes a mount, anything else is middleware. An explicit
// middleware layer carrying a route or a child stack is rejected.
func (l *ExpressLayer) resolveKind() (LayerKind, error) {
	hasRoute := l.Route != nil
	hasMount := l.Name == "router" || len(l.Stack) > 0

	switch l.Kind {
	case LayerUnset:
		switch {
		case hasRoute && hasMount:
			return l.Kind, fmt.Errorf("carries both a route and a mounted stack")
		case hasRoute:
			return LayerRoute, nil
		case hasMount:
			return LayerRouter, nil
		}
		return LayerMiddleware, nil
	case LayerMiddleware:
		if hasRoute || len(l.Stack) > 0 {
			return l.Kind, fmt.Errorf("is middleware but carries routing fields")
		}
	}
	return l.Kind, nil
}

func walkExpressStack(stack []ExpressLayer, prefix string, routes *[]RouteRecord) error {
	for i := range stack {
		layer := &stack[i]

		kind, err := layer.resolveKind()
		if err != nil {
			return structureErrorf(FrameworkExpress, "layer %d (%q) under prefix %q %v", i, layer.Name, prefix, err)
		}

		switch kind {
		case LayerMiddleware:
			continue

		case LayerRoute:
			if layer.Route == nil {
				return structureErrorf(FrameworkExpress, "route layer %d (%q) has no route", i, layer.Name)
			}
			path := ToCanonical(joinPrefix(prefix, layer.Route.Path))
			if !reportable(path) {
				continue
			}
			*routes = append(*routes, newRouteRecord(path, expressMethods(layer.Route.Methods)))

		case LayerRouter:
			next := prefix
			if literal, ok := MountLiteral(layer.Matcher); ok {
				next = ToCanonical(joinPrefix(prefix, literal))
			}
			if err := walkExpressStack(layer.Stack, next, routes); err != nil {
				return err
			}

		default:
			return structureErrorf(FrameworkExpress, "layer %d has unknown kind %s", i, kind)
		}
	}
	return nil
}

// expressMethods uppercases methods and removes the implicit OPTIONS handler
func expressMethods(methods []string) []string {
	result := make([]string, 0, len(methods))
	for _, method := range methods {
		upper := strings.ToUpper(method)
		if upper == "OPTIONS" {
			continue
		}
		result = append(result, upper)
	}
	return result
}
