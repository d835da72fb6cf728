package routedoc

import (
	"fmt"
	"strings"
)

// KoaOptions carries the prefix of a nested router
type KoaOptions struct {
	Prefix string `json:"prefix" yaml:"prefix"`
}

// KoaLayer is one entry of a Koa-style router stack. LayerRoute entries carry
// Path and Methods; LayerRouter entries carry Opts and Stack.
type KoaLayer struct {
	Kind    LayerKind   `json:"kind" yaml:"kind"`
	Path    string      `json:"path,omitempty" yaml:"path,omitempty"`
	Methods []string    `json:"methods,omitempty" yaml:"methods,omitempty"`
	Opts    *KoaOptions `json:"opts,omitempty" yaml:"opts,omitempty"`
	Stack   []KoaLayer  `json:"stack,omitempty" yaml:"stack,omitempty"`
}

// KoaRouter is the root of a Koa-style routing structure
type KoaRouter struct {
	Stack []KoaLayer `json:"stack" yaml:"stack"`
}

// ExtractKoaRoutes walks the router stack and returns one record per leaf
func ExtractKoaRoutes(router *KoaRouter) ([]RouteRecord, error) {
	if router == nil {
		return nil, structureErrorf(FrameworkKoa, "router is nil")
	}

	routes := make([]RouteRecord, 0)
	if err := walkKoaStack(router.Stack, "", &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

// resolveKind returns the layer's kind. Unset kinds are inferred from the
// fields: options or a child stack make a nested router, a path or methods
// make a leaf. An explicit middleware layer carrying routing fields is
// rejected.
func (l *KoaLayer) resolveKind() (LayerKind, error) {
	hasLeaf := l.Path != "" || len(l.Methods) > 0
	hasNested := l.Opts != nil || len(l.Stack) > 0

	switch l.Kind {
	case LayerUnset:
		switch {
		case hasLeaf && hasNested:
			return l.Kind, fmt.Errorf("carries both a route and a nested stack")
		case hasNested:
			return LayerRouter, nil
		case hasLeaf:
			return LayerRoute, nil
		}
		return LayerMiddleware, nil
	case LayerMiddleware:
		if hasLeaf || hasNested {
			return l.Kind, fmt.Errorf("is middleware but carries routing fields")
		}
	}
	return l.Kind, nil
}

func walkKoaStack(stack []KoaLayer, prefix string, routes *[]RouteRecord) error {
	for i := range stack {
		layer := &stack[i]

		kind, err := layer.resolveKind()
		if err != nil {
			return structureErrorf(FrameworkKoa, "layer %d under prefix %q %v", i, prefix, err)
		}

		switch kind {
		case LayerMiddleware:
			continue

		case LayerRoute:
			path := ToCanonical(joinPrefix(prefix, layer.Path))
			if !reportable(path) {
				continue
			}
			*routes = append(*routes, newRouteRecord(path, upperMethods(layer.Methods)))

		case LayerRouter:
			if layer.Opts == nil {
				return structureErrorf(FrameworkKoa, "nested layer %d under prefix %q has no options", i, prefix)
			}
			next := ToCanonical(joinPrefix(prefix, layer.Opts.Prefix))
			if err := walkKoaStack(layer.Stack, next, routes); err != nil {
				return err
			}

		default:
			return structureErrorf(FrameworkKoa, "layer %d has unknown kind %s", i, kind)
		}
	}
	return nil
}

func upperMethods(methods []string) []string {
	result := make([]string, len(methods))
	for i, method := range methods {
		result[i] = strings.ToUpper(method)
	}
	return result
}
