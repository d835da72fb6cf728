package adapters

import (
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/toyz/routedoc/pkg/openapi"
	"github.com/toyz/routedoc/pkg/routedoc"
)

// chiAnyMethod is the handler key chi uses for routes registered with Handle
const chiAnyMethod = "*"

// FromChi converts r into an Express-style stack. Mounted sub-routers become
// router layers whose matcher is built from the mount pattern. chi stores
// handlers in a map, so methods are sorted.
func FromChi(r chi.Routes) *routedoc.ExpressApp {
	return &routedoc.ExpressApp{Stack: chiStack(r)}
}

func chiStack(r chi.Routes) []routedoc.ExpressLayer {
	var stack []routedoc.ExpressLayer
	for _, route := range r.Routes() {
		if route.SubRoutes != nil {
			prefix := chiPattern(strings.TrimSuffix(route.Pattern, "/*"))
			stack = append(stack, routedoc.ExpressLayer{
				Kind:    routedoc.LayerRouter,
				Name:    "router",
				Matcher: routedoc.MountMatcher(prefix),
				Stack:   chiStack(route.SubRoutes),
			})
			continue
		}

		methods := make([]string, 0, len(route.Handlers))
		for _, method := range sortedMethods(route.Handlers) {
			if method == chiAnyMethod {
				continue
			}
			methods = append(methods, method)
		}

		stack = append(stack, routedoc.ExpressLayer{
			Kind:  routedoc.LayerRoute,
			Name:  "bound dispatch",
			Route: &routedoc.ExpressRoute{Path: chiPattern(route.Pattern), Methods: methods},
		})
	}
	return stack
}

// chiPattern drops the regexp of constrained parameters, so {id:[0-9]+}
// becomes {id}. The regexp may itself contain braces.
func chiPattern(pattern string) string {
	if !strings.Contains(pattern, ":") {
		return pattern
	}

	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '{' {
			b.WriteByte(pattern[i])
			continue
		}

		depth, end, colon := 1, -1, -1
		for j := i + 1; j < len(pattern); j++ {
			switch pattern[j] {
			case '{':
				depth++
			case '}':
				depth--
			case ':':
				if depth == 1 && colon < 0 {
					colon = j
				}
			}
			if depth == 0 {
				end = j
				break
			}
		}
		if end < 0 {
			b.WriteString(pattern[i:])
			break
		}
		if colon < 0 {
			b.WriteString(pattern[i : end+1])
		} else {
			b.WriteString("{" + pattern[i+1:colon] + "}")
		}
		i = end
	}
	return b.String()
}

// ExtractChiRoutes normalizes the routes registered on r
func ExtractChiRoutes(r chi.Routes) ([]routedoc.RouteRecord, error) {
	return routedoc.ExtractRoutes(string(routedoc.FrameworkExpress), FromChi(r))
}

// MountChi serves the Swagger UI for doc at base on r
func MountChi(r chi.Router, doc *openapi.Document, base string) error {
	assets, err := newAssets(doc, base)
	if err != nil {
		return err
	}

	r.Get(assets.Base, assets.ServePage)
	r.Get(assets.SpecPath(), assets.ServeSpec)
	return nil
}
