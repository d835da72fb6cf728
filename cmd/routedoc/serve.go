package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/toyz/routedoc/internal/cli"
)

func serveCmd(opts *globalOptions) *cobra.Command {
	var (
		spec      string
		input     string
		framework string
		kind      string
		host      string
		port      string
		path      string
		noMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host the documentation behind Swagger UI",
		Long: `Serve the Swagger UI and the document as JSON.

The document is taken from --spec, built from --input, or read from
openapi.json in the docs directory, in that order. "/" redirects to the UI.
Every response carries an X-Request-ID header. Request counts and latencies
are exposed in the Prometheus format at /metrics unless --no-metrics is set.

Examples:
  routedoc serve --spec docs/openapi.yaml
  routedoc serve -f fastify -i routes.json --server fiber --port 8081`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}

			override(cmd, "spec", &s.config.Spec, spec)
			override(cmd, "input", &s.config.Input, input)
			override(cmd, "framework", &s.config.Framework, framework)
			override(cmd, "server", &s.config.Server.Kind, kind)
			override(cmd, "host", &s.config.Server.Host, host)
			override(cmd, "port", &s.config.Server.Port, port)
			override(cmd, "path", &s.config.Server.Path, path)
			if cmd.Flags().Changed("no-metrics") {
				s.config.Server.DisableMetrics = noMetrics
			}

			if err := s.config.Validate(); err != nil {
				return s.fail(cmd, err)
			}

			if !s.config.Verbose {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s.diagnostics.Section("routedoc serve")
			if err := cli.Serve(ctx, s.config, s.diagnostics); err != nil {
				return s.fail(cmd, err)
			}
			s.diagnostics.Info("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&spec, "spec", "s", "", "OpenAPI document to serve")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Routing snapshot to document and serve")
	cmd.Flags().StringVarP(&framework, "framework", "f", "", "Shape of --input: express, fastify or koa")
	cmd.Flags().StringVar(&kind, "server", "", "Router: gin, echo, fiber or chi (default gin)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to")
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default $PORT or 8080)")
	cmd.Flags().StringVar(&path, "path", "", "Mount path of the UI (default /api-docs/swagger-ui)")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "Do not serve Prometheus metrics")

	return cmd
}
