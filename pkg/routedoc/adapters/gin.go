package adapters

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toyz/routedoc/pkg/openapi"
	"github.com/toyz/routedoc/pkg/routedoc"
)

// FromGin lists the routes of engine as a single Fastify-style instance
func FromGin(engine *gin.Engine) *routedoc.FastifyInstance {
	root := &routedoc.FastifyInstance{}
	for _, info := range engine.Routes() {
		root.Routes = append(root.Routes, routedoc.FastifyRoute{
			Method: info.Method,
			URL:    info.Path,
		})
	}
	return root
}

// ExtractGinRoutes normalizes the routes registered on engine
func ExtractGinRoutes(engine *gin.Engine) ([]routedoc.RouteRecord, error) {
	return routedoc.ExtractRoutes(string(routedoc.FrameworkFastify), FromGin(engine))
}

// MountGin serves the Swagger UI for doc at base on r
func MountGin(r gin.IRoutes, doc *openapi.Document, base string) error {
	assets, err := newAssets(doc, base)
	if err != nil {
		return err
	}

	r.GET(assets.Base, func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", assets.Page)
	})
	r.GET(assets.SpecPath(), func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", assets.Spec)
	})
	return nil
}
