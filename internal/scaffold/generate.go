// Package scaffold generates a runnable routing skeleton from an OpenAPI
// document for JavaScript (Express, Koa, Fastify) and Go (Gin, Echo, Fiber)
// targets.
package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/internal/utils"
	"github.com/toyz/routedoc/pkg/openapi"
)

const (
	// DefaultModule is the module path of generated Go projects
	DefaultModule = "example.com/api-generator"
	// DefaultPort is the port generated servers listen on
	DefaultPort = 3000
	// GoVersion is written into generated go.mod files
	GoVersion = "1.25"
)

// goRequirements pins the router module each Go target depends on
var goRequirements = map[Target]utils.Requirement{
	TargetGin:   {Path: "github.com/gin-gonic/gin", Version: "v1.11.0"},
	TargetEcho:  {Path: "github.com/labstack/echo/v4", Version: "v4.13.4"},
	TargetFiber: {Path: "github.com/gofiber/fiber/v2", Version: "v2.52.9"},
}

// jsDependencies are the package.json dependencies of each JavaScript target
var jsDependencies = map[Target]map[string]string{
	TargetExpress: {"express": "^4.18.2", "body-parser": "^1.20.2"},
	TargetKoa:     {"koa": "^2.14.2", "koa-router": "^12.0.0", "koa-bodyparser": "^4.3.0"},
	TargetFastify: {"fastify": "^4.22.3"},
}

// jsReplies holds the handler signature and reply expression of each
// JavaScript target
var jsReplies = map[Target][3]string{
	TargetExpress: {"async (req, res, next)", "res.json(", ")"},
	TargetKoa:     {"async (ctx)", "ctx.body = ", ""},
	TargetFastify: {"async (request, reply)", "reply.send(", ")"},
}

// Options configures a scaffold run
type Options struct {
	Target    Target
	OutputDir string

	// Module is the module path of Go targets (DefaultModule when empty)
	Module string

	// Port is the listen port of the generated server (DefaultPort when zero)
	Port int
}

// validate checks the options left after defaults are applied
func (o Options) validate() error {
	if err := utils.NotEmpty("output directory")(o.OutputDir); err != nil {
		return errors.Wrap(errors.ConfigurationErrorCode, "invalid scaffold options", err)
	}
	if err := utils.InRange("port", 1, 65535)(o.Port); err != nil {
		return errors.Wrap(errors.ConfigurationErrorCode, "invalid scaffold options", err).
			WithContext("port", o.Port)
	}
	return nil
}

// Result lists what a scaffold run produced
type Result struct {
	// Files are the written paths relative to the output directory
	Files []string

	// Resources are the resource names in generation order
	Resources []string
}

type packageJSON struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Description  string            `json:"description"`
	Main         string            `json:"main"`
	Scripts      map[string]string `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
}

type resourceData struct {
	Resource   Resource
	Signature  string
	ReplyOpen  string
	ReplyClose string
}

type indexData struct {
	Resources []Resource
	Module    string
	Port      int
}

// Generator renders and writes scaffolds
type Generator struct {
	templates *TemplateRegistry
	gomod     *utils.GoModParser
}

// NewGenerator creates a generator with all templates loaded
func NewGenerator() *Generator {
	return &Generator{
		templates: NewTemplateRegistry(),
		gomod:     utils.NewGoModParser(),
	}
}

// Generate writes the scaffold of doc using a new generator
func Generate(doc *openapi.Document, opts Options) (*Result, error) {
	return NewGenerator().Generate(doc, opts)
}

// Generate renders every file for opts.Target and writes it below
// opts.OutputDir
func (g *Generator) Generate(doc *openapi.Document, opts Options) (*Result, error) {
	if doc == nil {
		return nil, errors.New(errors.GenerationErrorCode, "scaffold requires an OpenAPI document")
	}
	target, err := ParseTarget(string(opts.Target))
	if err != nil {
		return nil, err
	}
	if opts.Module == "" {
		opts.Module = DefaultModule
	}
	if opts.Port == 0 {
		opts.Port = DefaultPort
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	resources := Plan(doc)

	var files map[string][]byte
	var order []string
	if target.IsGo() {
		files, order, err = g.renderGo(target, resources, opts)
	} else {
		files, order, err = g.renderJS(target, resources, opts)
	}
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, resource := range resources {
		result.Resources = append(result.Resources, resource.Name)
	}
	for _, rel := range order {
		path := filepath.Join(opts.OutputDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errors.WrapFileSystemError("create directory", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, files[rel], 0644); err != nil {
			return nil, errors.WrapFileSystemError("write", path, err)
		}
		result.Files = append(result.Files, rel)
	}
	return result, nil
}

func (g *Generator) renderJS(target Target, resources []Resource, opts Options) (map[string][]byte, []string, error) {
	files := make(map[string][]byte)
	var order []string
	add := func(rel string, content []byte) {
		files[rel] = content
		order = append(order, rel)
	}

	reply := jsReplies[target]
	for _, resource := range resources {
		data := resourceData{Resource: resource, Signature: reply[0], ReplyOpen: reply[1], ReplyClose: reply[2]}

		controller, err := g.templates.Execute(string(target)+"/controller", data)
		if err != nil {
			return nil, nil, err
		}
		add("controller/"+resource.Name+".controller.js", controller)

		route, err := g.templates.Execute(string(target)+"/route", data)
		if err != nil {
			return nil, nil, err
		}
		add("route/"+resource.Name+".js", route)
	}

	index, err := g.templates.Execute(string(target)+"/index", indexData{Resources: resources, Port: opts.Port})
	if err != nil {
		return nil, nil, err
	}
	add("index.js", index)

	pkg, err := json.MarshalIndent(packageJSON{
		Name:         "api-generator",
		Version:      "1.0.0",
		Description:  "Generated API server",
		Main:         "index.js",
		Scripts:      map[string]string{"start": "node index.js"},
		Dependencies: jsDependencies[target],
	}, "", "  ")
	if err != nil {
		return nil, nil, errors.WrapGenerateError("package.json", err)
	}
	add("package.json", append(pkg, '\n'))

	return files, order, nil
}

func (g *Generator) renderGo(target Target, resources []Resource, opts Options) (map[string][]byte, []string, error) {
	files := make(map[string][]byte)
	var order []string
	addGo := func(rel string, source []byte) error {
		formatted, err := utils.FormatGoSource(rel, source)
		if err != nil {
			return errors.WrapGenerateError(rel, utils.WrapFormatError(rel, err))
		}
		files[rel] = formatted
		order = append(order, rel)
		return nil
	}

	for _, resource := range resources {
		source, err := g.templates.Execute(string(target)+"/handlers", resourceData{Resource: resource})
		if err != nil {
			return nil, nil, err
		}
		if err := addGo("handlers/"+resource.Name+".go", source); err != nil {
			return nil, nil, err
		}
	}

	main, err := g.templates.Execute(string(target)+"/main", indexData{Resources: resources, Module: opts.Module, Port: opts.Port})
	if err != nil {
		return nil, nil, err
	}
	if err := addGo("main.go", main); err != nil {
		return nil, nil, err
	}

	gomod, err := g.gomod.BuildGoMod(opts.Module, GoVersion, []utils.Requirement{goRequirements[target]})
	if err != nil {
		return nil, nil, errors.WrapGenerateError("go.mod", err).
			WithSuggestion("Pass a valid module path with --module")
	}
	files["go.mod"] = gomod
	order = append(order, "go.mod")

	return files, order, nil
}
