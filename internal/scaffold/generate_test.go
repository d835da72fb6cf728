package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mod/modfile"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/pkg/openapi"
)

func readFile(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestGenerate_JavaScript(t *testing.T) {
	tests := []struct {
		target    Target
		route     string
		index     string
		handler   string
		dependent string
	}{
		{
			target:    TargetExpress,
			route:     `users_router.get("/:id", users__id_get);`,
			index:     `app.use("/users", users_router);`,
			handler:   `exports.health = async (req, res, next) => {`,
			dependent: `"body-parser"`,
		},
		{
			target:    TargetKoa,
			route:     `const router = new Router({ prefix: "/users" });`,
			index:     `app.use(usersRoutes.routes()).use(usersRoutes.allowedMethods());`,
			handler:   `ctx.body = { message: "Handling GET request for /health" };`,
			dependent: `"koa-router"`,
		},
		{
			target:    TargetFastify,
			route:     `  fastify.delete("/:id", users__id_delete);`,
			index:     `fastify.register(usersRoutes, { prefix: "/users" });`,
			handler:   `reply.send({ message: "Handling GET request for /health" });`,
			dependent: `"fastify"`,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			dir := t.TempDir()
			result, err := Generate(usersDocument(), Options{Target: tt.target, OutputDir: dir})
			require.NoError(t, err)

			assert.Equal(t, []string{"health", "root", "users"}, result.Resources)
			assert.Equal(t, []string{
				"controller/health.controller.js",
				"route/health.js",
				"controller/root.controller.js",
				"route/root.js",
				"controller/users.controller.js",
				"route/users.js",
				"index.js",
				"package.json",
			}, result.Files)

			assert.Contains(t, readFile(t, dir, "route/users.js"), tt.route)
			assert.Contains(t, readFile(t, dir, "route/users.js"),
				`{ users_get, users_post, users__id_get, users__id_delete } = require("../controller/users.controller");`)
			assert.Contains(t, readFile(t, dir, "index.js"), tt.index)
			assert.Contains(t, readFile(t, dir, "controller/health.controller.js"), tt.handler)
			assert.Contains(t, readFile(t, dir, "package.json"), tt.dependent)
			assert.Contains(t, readFile(t, dir, "package.json"), `"start": "node index.js"`)
		})
	}
}

func TestGenerate_Go(t *testing.T) {
	tests := []struct {
		target   Target
		register string
		handler  string
		require  string
	}{
		{
			target:   TargetGin,
			register: `r.Handle("GET", "/users/:id", UsersIdGet)`,
			handler:  `func UsersIdGet(c *gin.Context) {`,
			require:  "github.com/gin-gonic/gin",
		},
		{
			target:   TargetEcho,
			register: `e.Add("DELETE", "/users/:id", UsersIdDelete)`,
			handler:  `func UsersIdGet(c echo.Context) error {`,
			require:  "github.com/labstack/echo/v4",
		},
		{
			target:   TargetFiber,
			register: `r.Add("POST", "/users", UsersPost)`,
			handler:  `func UsersIdGet(c *fiber.Ctx) error {`,
			require:  "github.com/gofiber/fiber/v2",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			dir := t.TempDir()
			result, err := Generate(usersDocument(), Options{Target: tt.target, OutputDir: dir, Module: "example.com/petstore"})
			require.NoError(t, err)

			assert.Equal(t, []string{
				"handlers/health.go",
				"handlers/root.go",
				"handlers/users.go",
				"main.go",
				"go.mod",
			}, result.Files)

			users := readFile(t, dir, "handlers/users.go")
			assert.Contains(t, users, "package handlers")
			assert.Contains(t, users, tt.register)
			assert.Contains(t, users, tt.handler)
			assert.Contains(t, users, `"Handling GET request for /users/{id}"`)

			main := readFile(t, dir, "main.go")
			assert.Contains(t, main, `"example.com/petstore/handlers"`)
			assert.Contains(t, main, "handlers.RegisterUsers(")
			assert.Contains(t, main, "handlers.RegisterRoot(")

			mod, err := modfile.Parse("go.mod", []byte(readFile(t, dir, "go.mod")), nil)
			require.NoError(t, err)
			assert.Equal(t, "example.com/petstore", mod.Module.Mod.Path)
			require.Len(t, mod.Require, 1)
			assert.Equal(t, tt.require, mod.Require[0].Mod.Path)
		})
	}
}

func TestGenerate_DefaultModule(t *testing.T) {
	dir := t.TempDir()
	_, err := Generate(openapi.New(), Options{Target: TargetGin, OutputDir: dir})
	require.NoError(t, err)
	assert.Contains(t, readFile(t, dir, "go.mod"), "module "+DefaultModule)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate(nil, Options{Target: TargetExpress, OutputDir: t.TempDir()})
	assert.True(t, errors.IsCode(err, errors.GenerationErrorCode))

	_, err = Generate(usersDocument(), Options{Target: "rails", OutputDir: t.TempDir()})
	assert.True(t, errors.IsCode(err, errors.FrameworkErrorCode))

	_, err = Generate(usersDocument(), Options{Target: TargetGin, OutputDir: t.TempDir(), Module: "not a module"})
	assert.True(t, errors.IsCode(err, errors.GenerationErrorCode))
}

func TestGenerate_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"missing output directory", Options{Target: TargetExpress}},
		{"negative port", Options{Target: TargetGin, OutputDir: t.TempDir(), Port: -1}},
		{"port too large", Options{Target: TargetKoa, OutputDir: t.TempDir(), Port: 70000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(usersDocument(), tt.opts)
			assert.True(t, errors.IsCode(err, errors.ConfigurationErrorCode))
		})
	}
}

func TestTemplateRegistry_Names(t *testing.T) {
	registry := NewTemplateRegistry()

	assert.Equal(t, []string{"gin/handlers", "gin/main"}, registry.Names(TargetGin))
	assert.Equal(t, []string{"koa/controller", "koa/index", "koa/route"}, registry.Names(TargetKoa))

	_, err := registry.Execute("rails/main", nil)
	assert.True(t, errors.IsCode(err, errors.TemplateErrorCode))
}
