package adapters

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/toyz/routedoc/pkg/openapi"
	"github.com/toyz/routedoc/pkg/routedoc"
)

// EchoRouter is satisfied by *echo.Echo and *echo.Group
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// FromEcho lists the routes of e as a single Fastify-style instance. Echo
// keeps its route table in a map, so routes are ordered by path and method.
func FromEcho(e *echo.Echo) *routedoc.FastifyInstance {
	routes := e.Routes()
	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})

	root := &routedoc.FastifyInstance{}
	for _, route := range routes {
		if route.Method == echo.RouteNotFound {
			continue
		}
		root.Routes = append(root.Routes, routedoc.FastifyRoute{
			Method: route.Method,
			URL:    route.Path,
		})
	}
	return root
}

// ExtractEchoRoutes normalizes the routes registered on e
func ExtractEchoRoutes(e *echo.Echo) ([]routedoc.RouteRecord, error) {
	return routedoc.ExtractRoutes(string(routedoc.FrameworkFastify), FromEcho(e))
}

// MountEcho serves the Swagger UI for doc at base on r
func MountEcho(r EchoRouter, doc *openapi.Document, base string) error {
	assets, err := newAssets(doc, base)
	if err != nil {
		return err
	}

	r.GET(assets.Base, func(c echo.Context) error {
		return c.Blob(http.StatusOK, "text/html; charset=utf-8", assets.Page)
	})
	r.GET(assets.SpecPath(), func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, assets.Spec)
	})
	return nil
}
