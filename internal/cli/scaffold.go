package cli

import (
	"path/filepath"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/internal/scaffold"
	"github.com/toyz/routedoc/internal/utils"
	"github.com/toyz/routedoc/pkg/openapi"
)

// ScaffoldRunner generates routing code from an OpenAPI document
type ScaffoldRunner struct {
	diagnostics    *utils.DiagnosticSystem
	moduleResolver *ModuleResolver
	generator      *scaffold.Generator
}

// NewScaffoldRunner creates a scaffold runner reporting through diagnostics
func NewScaffoldRunner(diagnostics *utils.DiagnosticSystem) *ScaffoldRunner {
	return &ScaffoldRunner{
		diagnostics:    diagnostics,
		moduleResolver: NewModuleResolver(),
		generator:      scaffold.NewGenerator(),
	}
}

// SpecPath is the document scaffold reads: config.Spec, or openapi.json in
// the docs directory
func SpecPath(config *Config) string {
	if config.Spec != "" {
		return config.Spec
	}
	return filepath.Join(config.DocsDir, openapi.JSONFileName)
}

// Run loads the document and writes the scaffold for the configured target
func (r *ScaffoldRunner) Run(config *Config) (*scaffold.Result, error) {
	target, err := scaffold.ParseTarget(config.Scaffold.Target)
	if err != nil {
		return nil, err
	}

	specPath := SpecPath(config)
	r.diagnostics.Verbose("Reading OpenAPI document %s", specPath)
	doc, err := openapi.Load(specPath)
	if err != nil {
		return nil, errors.WrapParseError(specPath, err).
			WithSuggestion("Generate a document first with 'routedoc docs' or pass --spec")
	}

	opts := scaffold.Options{
		Target:    target,
		OutputDir: config.Scaffold.OutputDir,
		Port:      config.Scaffold.Port,
	}
	if target.IsGo() {
		opts.Module = r.moduleResolver.ResolveModuleName(config.Scaffold.Module, config.Scaffold.OutputDir)
		r.diagnostics.Debug("Using module path: %s", opts.Module)
	}

	return r.generator.Generate(doc, opts)
}
