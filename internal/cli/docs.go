package cli

import (
	"context"
	"time"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/internal/publish"
	"github.com/toyz/routedoc/internal/snapshot"
	"github.com/toyz/routedoc/internal/utils"
	"github.com/toyz/routedoc/pkg/openapi"
	"github.com/toyz/routedoc/pkg/routedoc"
)

// GenerationSummary contains information about a docs run
type GenerationSummary struct {
	RoutesFound     int
	PathsDocumented int
	Operations      int
	GeneratedFiles  []string
	PublishedKeys   []string
}

// DocsGenerator turns a routing snapshot into documentation files
type DocsGenerator struct {
	diagnostics *utils.DiagnosticSystem
	summary     GenerationSummary
	document    *openapi.Document
	objectStore publish.ObjectPutter
}

// NewDocsGenerator creates a docs generator reporting through diagnostics
func NewDocsGenerator(diagnostics *utils.DiagnosticSystem) *DocsGenerator {
	return &DocsGenerator{diagnostics: diagnostics}
}

// SetObjectStore replaces the S3 client built from the environment
func (g *DocsGenerator) SetObjectStore(store publish.ObjectPutter) {
	g.objectStore = store
}

// GetSummary returns the summary of the last run
func (g *DocsGenerator) GetSummary() GenerationSummary {
	return g.summary
}

// BuildDocument loads config.Input and assembles its document
func (g *DocsGenerator) BuildDocument(config *Config) (*openapi.Document, error) {
	if config.Input == "" {
		return nil, errors.New(errors.ConfigurationErrorCode, "no routing snapshot given").
			WithSuggestion("Pass a JSON or YAML snapshot with --input")
	}

	g.diagnostics.Verbose("Loading %s snapshot %s", config.Framework, config.Input)
	app, err := snapshot.Load(config.Framework, config.Input)
	if err != nil {
		if errors.CodeOf(err) == errors.UnknownErrorCode {
			return nil, errors.WrapExtractionError(config.Framework, err)
		}
		return nil, err
	}

	routes, err := routedoc.ExtractRoutes(config.Framework, app)
	if err != nil {
		return nil, errors.WrapExtractionError(config.Framework, err)
	}
	g.summary.RoutesFound = len(routes)

	for _, route := range routes {
		g.diagnostics.Debug("%v %s", route.Methods, route.Path)
	}

	doc := openapi.Assemble(routes, config.DocumentOptions()...)
	g.summary.PathsDocumented = len(doc.Paths)
	for _, item := range doc.Paths {
		g.summary.Operations += len(item)
	}
	return doc, nil
}

// Run builds the document and writes openapi.json and openapi.yaml into
// config.DocsDir
func (g *DocsGenerator) Run(config *Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{}
	g.document = nil
	g.diagnostics.Verbose("Starting documentation at %s", startTime.Format("15:04:05"))

	doc, err := g.BuildDocument(config)
	if err != nil {
		return err
	}

	written, err := openapi.WriteFiles(doc, config.DocsDir)
	if err != nil {
		return errors.WrapFileSystemError("write documents to", config.DocsDir, err)
	}
	g.summary.GeneratedFiles = []string{written.JSONPath, written.YAMLPath}
	g.document = doc

	g.diagnostics.Verbose("Documentation finished in %s", time.Since(startTime).Round(time.Millisecond))
	return nil
}

// Publish uploads the document of the last Run to config.Publish.Destination.
// It does nothing when no destination is configured.
func (g *DocsGenerator) Publish(ctx context.Context, config *Config) error {
	if config.Publish.Destination == "" {
		return nil
	}
	if g.document == nil {
		return errors.New(errors.PublishErrorCode, "nothing to publish").
			WithSuggestion("Generate the documents before publishing them")
	}

	destination, err := publish.ParseDestination(config.Publish.Destination)
	if err != nil {
		return err
	}

	store := g.objectStore
	if store == nil {
		store = publish.NewS3Client(config.Publish.Region)
	}

	g.diagnostics.Verbose("Publishing to %s", destination)
	keys, err := publish.NewPublisher(store, destination).Publish(ctx, g.document)
	g.summary.PublishedKeys = keys
	return err
}
