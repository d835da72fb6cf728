package scaffold

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/internal/utils"
)

// TemplateRegistry holds the file templates of every target
type TemplateRegistry struct {
	templates *utils.Registry[string, string]
}

// NewTemplateRegistry creates a registry with all templates loaded
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: utils.NewRegistry[string, string]("scaffold templates"),
	}

	registry.registerExpressTemplates()
	registry.registerKoaTemplates()
	registry.registerFastifyTemplates()
	registry.registerGinTemplates()
	registry.registerEchoTemplates()
	registry.registerFiberTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	return tr.templates.Get(name)
}

// Names lists the templates registered for target
func (tr *TemplateRegistry) Names(target Target) []string {
	prefix := string(target) + "/"
	return tr.templates.Filter(func(name, _ string) bool {
		return strings.HasPrefix(name, prefix)
	})
}

// Execute renders the named template with data
func (tr *TemplateRegistry) Execute(name string, data interface{}) ([]byte, error) {
	text, exists := tr.templates.Get(name)
	if !exists {
		return nil, errors.Newf(errors.TemplateErrorCode, "template not found: %s", name)
	}

	funcMap := template.FuncMap{
		"upper": strings.ToUpper,
		"join":  strings.Join,
	}

	tmpl, err := template.New(name).Funcs(funcMap).Parse(text)
	if err != nil {
		return nil, errors.WrapTemplateError(name, "parse", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.WrapTemplateError(name, "execute", err)
	}
	return buf.Bytes(), nil
}

// jsController is shared by the JavaScript targets; the handler signature
// and reply expression come from the target
const jsController = `{{range .Resource.Operations}}
exports.{{.Handler}} = {{$.Signature}} => {
  {{$.ReplyOpen}}{ message: "{{.Message}}" }{{$.ReplyClose}};
};
{{end}}`

func (tr *TemplateRegistry) registerExpressTemplates() {
	tr.templates.MustRegister("express/controller", jsController)

	tr.templates.MustRegister("express/route", `const express = require("express");
const {{.Resource.Name}}_router = express.Router();
const { {{join .Resource.Handlers ", "}} } = require("../controller/{{.Resource.Name}}.controller");

{{range .Resource.Operations}}{{$.Resource.Name}}_router.{{.Method}}("{{.RoutePath}}", {{.Handler}});
{{end}}
module.exports = {{.Resource.Name}}_router;
`)

	tr.templates.MustRegister("express/index", `const express = require("express");
const bodyParser = require("body-parser");

const app = express();
app.use(bodyParser.json());

{{range .Resources}}const {{.Name}}_router = require("./route/{{.Name}}");
{{end}}
{{range .Resources}}app.use("{{if .Prefix}}{{.Prefix}}{{else}}/{{end}}", {{.Name}}_router);
{{end}}
app.listen({{.Port}}, () => console.log("Server running on http://localhost:{{.Port}}"));
`)
}

func (tr *TemplateRegistry) registerKoaTemplates() {
	tr.templates.MustRegister("koa/controller", jsController)

	tr.templates.MustRegister("koa/route", `const Router = require("koa-router");
const router = new Router({{if .Resource.Prefix}}{ prefix: "{{.Resource.Prefix}}" }{{end}});
const { {{join .Resource.Handlers ", "}} } = require("../controller/{{.Resource.Name}}.controller");

{{range .Resource.Operations}}router.{{.Method}}("{{.RoutePath}}", {{.Handler}});
{{end}}
module.exports = router;
`)

	tr.templates.MustRegister("koa/index", `const Koa = require("koa");
const bodyParser = require("koa-bodyparser");

const app = new Koa();
app.use(bodyParser());

{{range .Resources}}const {{.Name}}Routes = require("./route/{{.Name}}");
{{end}}
{{range .Resources}}app.use({{.Name}}Routes.routes()).use({{.Name}}Routes.allowedMethods());
{{end}}
app.listen({{.Port}}, () => console.log("Server running on http://localhost:{{.Port}}"));
`)
}

func (tr *TemplateRegistry) registerFastifyTemplates() {
	tr.templates.MustRegister("fastify/controller", jsController)

	tr.templates.MustRegister("fastify/route", `async function {{.Resource.Name}}Routes(fastify, options) {
  const { {{join .Resource.Handlers ", "}} } = require("../controller/{{.Resource.Name}}.controller");

{{range .Resource.Operations}}  fastify.{{.Method}}("{{.RoutePath}}", {{.Handler}});
{{end}}}

module.exports = {{.Resource.Name}}Routes;
`)

	tr.templates.MustRegister("fastify/index", `const fastify = require("fastify")({ logger: true });

{{range .Resources}}const {{.Name}}Routes = require("./route/{{.Name}}");
{{end}}
{{range .Resources}}fastify.register({{.Name}}Routes{{if .Prefix}}, { prefix: "{{.Prefix}}" }{{end}});
{{end}}
fastify.listen({ port: {{.Port}} }, (err) => {
  if (err) {
    fastify.log.error(err);
    process.exit(1);
  }
});
`)
}

func (tr *TemplateRegistry) registerGinTemplates() {
	tr.templates.MustRegister("gin/handlers", `package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register{{.Resource.GoName}} registers the {{.Resource.Name}} routes on r
func Register{{.Resource.GoName}}(r gin.IRoutes) {
{{range .Resource.Operations}}	r.Handle("{{upper .Method}}", {{printf "%q" .FullPath}}, {{.GoHandler}})
{{end}}}
{{range .Resource.Operations}}
// {{.GoHandler}} handles {{upper .Method}} {{.Path}}
func {{.GoHandler}}(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": {{printf "%q" .Message}}})
}
{{end}}`)

	tr.templates.MustRegister("gin/main", `package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"{{.Module}}/handlers"
)

func main() {
	r := gin.Default()
{{range .Resources}}	handlers.Register{{.GoName}}(r)
{{end}}
	log.Fatal(r.Run(":{{.Port}}"))
}
`)
}

func (tr *TemplateRegistry) registerEchoTemplates() {
	tr.templates.MustRegister("echo/handlers", `package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Register{{.Resource.GoName}} registers the {{.Resource.Name}} routes on e
func Register{{.Resource.GoName}}(e *echo.Echo) {
{{range .Resource.Operations}}	e.Add("{{upper .Method}}", {{printf "%q" .FullPath}}, {{.GoHandler}})
{{end}}}
{{range .Resource.Operations}}
// {{.GoHandler}} handles {{upper .Method}} {{.Path}}
func {{.GoHandler}}(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": {{printf "%q" .Message}}})
}
{{end}}`)

	tr.templates.MustRegister("echo/main", `package main

import (
	"github.com/labstack/echo/v4"

	"{{.Module}}/handlers"
)

func main() {
	e := echo.New()
{{range .Resources}}	handlers.Register{{.GoName}}(e)
{{end}}
	e.Logger.Fatal(e.Start(":{{.Port}}"))
}
`)
}

func (tr *TemplateRegistry) registerFiberTemplates() {
	tr.templates.MustRegister("fiber/handlers", `package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Register{{.Resource.GoName}} registers the {{.Resource.Name}} routes on r
func Register{{.Resource.GoName}}(r fiber.Router) {
{{range .Resource.Operations}}	r.Add("{{upper .Method}}", {{printf "%q" .FullPath}}, {{.GoHandler}})
{{end}}}
{{range .Resource.Operations}}
// {{.GoHandler}} handles {{upper .Method}} {{.Path}}
func {{.GoHandler}}(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": {{printf "%q" .Message}}})
}
{{end}}`)

	tr.templates.MustRegister("fiber/main", `package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"{{.Module}}/handlers"
)

func main() {
	app := fiber.New()
{{range .Resources}}	handlers.Register{{.GoName}}(app)
{{end}}
	log.Fatal(app.Listen(":{{.Port}}"))
}
`)
}
