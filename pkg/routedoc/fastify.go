package routedoc

import "strings"

// FastifyRoute is a single registered route
type FastifyRoute struct {
	Method string `json:"method" yaml:"method"`
	URL    string `json:"url" yaml:"url"`
}

// FastifyInstance is a routing instance with its own prefix, a flat list of
// routes and the child instances registered on it
type FastifyInstance struct {
	Prefix   string             `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Routes   []FastifyRoute     `json:"routes,omitempty" yaml:"routes,omitempty"`
	Children []*FastifyInstance `json:"children,omitempty" yaml:"children,omitempty"`
}

// ExtractFastifyRoutes returns one single-method record per registered route,
// visiting an instance's routes before its children.
func ExtractFastifyRoutes(root *FastifyInstance) ([]RouteRecord, error) {
	routes := make([]RouteRecord, 0)
	if err := walkFastifyInstance(root, "", &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

func walkFastifyInstance(instance *FastifyInstance, prefix string, routes *[]RouteRecord) error {
	if instance == nil {
		return structureErrorf(FrameworkFastify, "instance under prefix %q is nil", prefix)
	}

	prefix = ToCanonical(joinPrefix(prefix, instance.Prefix))

	for i, route := range instance.Routes {
		if route.Method == "" {
			return structureErrorf(FrameworkFastify, "route %d (%q) under prefix %q has no method", i, route.URL, prefix)
		}
		path := ToCanonical(joinPrefix(prefix, route.URL))
		if !reportable(path) {
			continue
		}
		*routes = append(*routes, newRouteRecord(path, []string{strings.ToUpper(route.Method)}))
	}

	for _, child := range instance.Children {
		if err := walkFastifyInstance(child, prefix, routes); err != nil {
			return err
		}
	}
	return nil
}
