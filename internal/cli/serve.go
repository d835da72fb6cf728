package cli

import (
	"context"
	"os"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/internal/server"
	"github.com/toyz/routedoc/internal/utils"
	"github.com/toyz/routedoc/pkg/openapi"
)

// LoadServedDocument picks the document to host: config.Spec when set, the
// snapshot in config.Input otherwise, and finally openapi.json in the docs
// directory
func LoadServedDocument(config *Config, diagnostics *utils.DiagnosticSystem) (*openapi.Document, error) {
	if config.Spec != "" {
		doc, err := openapi.Load(config.Spec)
		if err != nil {
			return nil, errors.WrapParseError(config.Spec, err)
		}
		return doc, nil
	}

	if config.Input != "" {
		return NewDocsGenerator(diagnostics).BuildDocument(config)
	}

	path := SpecPath(config)
	if _, err := os.Stat(path); err != nil {
		return nil, errors.New(errors.ConfigurationErrorCode, "nothing to serve").
			WithContext("docs_path", path).
			WithSuggestion("Pass --spec with an OpenAPI document or --input with a routing snapshot")
	}
	doc, err := openapi.Load(path)
	if err != nil {
		return nil, errors.WrapParseError(path, err)
	}
	return doc, nil
}

// Serve hosts the document until ctx is cancelled
func Serve(ctx context.Context, config *Config, diagnostics *utils.DiagnosticSystem) error {
	doc, err := LoadServedDocument(config, diagnostics)
	if err != nil {
		return err
	}

	srv, err := server.New(doc, config.ServerOptions())
	if err != nil {
		return err
	}

	return srv.Run(ctx, func(addr string) {
		diagnostics.Success("Serving %s on http://%s%s", srv.Config().Kind, addr, srv.Config().Base)
		if srv.Metrics() != nil {
			diagnostics.Verbose("Metrics on http://%s%s", addr, server.MetricsPath)
		}
	})
}
