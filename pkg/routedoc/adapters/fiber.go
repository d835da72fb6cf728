package adapters

import (
	"github.com/gofiber/fiber/v2"

	"github.com/toyz/routedoc/pkg/openapi"
	"github.com/toyz/routedoc/pkg/routedoc"
)

// FromFiber groups the routes of app by path into a Koa-style router, one
// route layer per path in order of first registration. The HEAD route Fiber
// adds for every GET is left out.
func FromFiber(app *fiber.App) *routedoc.KoaRouter {
	type entry struct {
		path    string
		methods []string
	}

	var order []*entry
	byPath := make(map[string]*entry)
	getPaths := make(map[string]bool)

	routes := app.GetRoutes(true)
	for _, route := range routes {
		if route.Method == fiber.MethodGet {
			getPaths[route.Path] = true
		}
	}

	for _, route := range routes {
		if route.Method == fiber.MethodHead && getPaths[route.Path] {
			continue
		}
		e, ok := byPath[route.Path]
		if !ok {
			e = &entry{path: route.Path}
			byPath[route.Path] = e
			order = append(order, e)
		}
		e.methods = append(e.methods, route.Method)
	}

	router := &routedoc.KoaRouter{}
	for _, e := range order {
		router.Stack = append(router.Stack, routedoc.KoaLayer{
			Kind:    routedoc.LayerRoute,
			Path:    e.path,
			Methods: e.methods,
		})
	}
	return router
}

// ExtractFiberRoutes normalizes the routes registered on app
func ExtractFiberRoutes(app *fiber.App) ([]routedoc.RouteRecord, error) {
	return routedoc.ExtractRoutes(string(routedoc.FrameworkKoa), FromFiber(app))
}

// MountFiber serves the Swagger UI for doc at base on r
func MountFiber(r fiber.Router, doc *openapi.Document, base string) error {
	assets, err := newAssets(doc, base)
	if err != nil {
		return err
	}

	r.Get(assets.Base, func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(assets.Page)
	})
	r.Get(assets.SpecPath(), func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(assets.Spec)
	})
	return nil
}
