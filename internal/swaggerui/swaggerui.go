// Package swaggerui renders the Swagger UI page for a generated document and
// serves it together with the document itself.
package swaggerui

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/toyz/routedoc/pkg/openapi"
)

// DefaultPath is where the UI is mounted when no base path is given
const DefaultPath = "/api-docs/swagger-ui"

// SpecFile is the name the document is served under, relative to the base
const SpecFile = "openapi.json"

// DistURL is the CDN location of the swagger-ui-dist assets
const DistURL = "https://unpkg.com/swagger-ui-dist@5"

var pageTemplate = template.Must(template.New("swagger-ui").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.Dist}}/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="{{.Dist}}/swagger-ui-bundle.js" crossorigin></script>
  <script>
    window.onload = function () {
      window.ui = SwaggerUIBundle({
        url: {{.SpecURL}},
        dom_id: "#swagger-ui",
      });
    };
  </script>
</body>
</html>
`))

// Assets holds the rendered page and encoded document for one mount point
type Assets struct {
	Base string
	Page []byte
	Spec []byte
}

// NewAssets renders the page and encodes doc for serving under base. An
// empty base selects DefaultPath.
func NewAssets(doc *openapi.Document, base string) (*Assets, error) {
	if doc == nil {
		return nil, fmt.Errorf("swagger UI requires a document")
	}

	base = NormalizeBase(base)

	spec, err := doc.JSON()
	if err != nil {
		return nil, err
	}

	var page bytes.Buffer
	data := struct {
		Title   string
		Dist    string
		SpecURL string
	}{
		Title:   doc.Info.Title,
		Dist:    DistURL,
		SpecURL: base + "/" + SpecFile,
	}
	if err := pageTemplate.Execute(&page, data); err != nil {
		return nil, fmt.Errorf("failed to render swagger UI page: %w", err)
	}

	return &Assets{Base: base, Page: page.Bytes(), Spec: spec}, nil
}

// NormalizeBase returns base with a leading slash and no trailing slash
func NormalizeBase(base string) string {
	base = strings.TrimRight(base, "/")
	if base == "" {
		return DefaultPath
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return base
}

// SpecPath is the route of the JSON document
func (a *Assets) SpecPath() string {
	return a.Base + "/" + SpecFile
}

// ServePage writes the UI page
func (a *Assets) ServePage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(a.Page)
}

// ServeSpec writes the JSON document
func (a *Assets) ServeSpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(a.Spec)
}

// ServeHTTP serves the page at the base path and the document at SpecPath
func (a *Assets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	switch strings.TrimRight(r.URL.Path, "/") {
	case a.Base:
		a.ServePage(w, r)
	case a.SpecPath():
		a.ServeSpec(w, r)
	default:
		http.NotFound(w, r)
	}
}
