package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/toyz/routedoc/internal/cli"
)

func scaffoldCmd(opts *globalOptions) *cobra.Command {
	var (
		spec   string
		target string
		output string
		module string
		port   int
	)

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Generate routing code from an OpenAPI document",
		Long: `Generate controllers, route files and an entry point from an OpenAPI
document. Operations are grouped into one resource per first path segment.

Targets:
  express, koa, fastify   JavaScript project with package.json
  gin, echo, fiber        Go module with go.mod

Examples:
  routedoc scaffold --spec docs/openapi.json --target express -o ./server
  routedoc scaffold -s api.yaml -t gin -o ./server --module github.com/acme/api`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}

			override(cmd, "spec", &s.config.Spec, spec)
			override(cmd, "target", &s.config.Scaffold.Target, target)
			override(cmd, "output", &s.config.Scaffold.OutputDir, output)
			override(cmd, "module", &s.config.Scaffold.Module, module)
			if cmd.Flags().Changed("port") {
				s.config.Scaffold.Port = port
			}

			if err := s.config.Validate(); err != nil {
				return s.fail(cmd, err)
			}

			s.diagnostics.Section("routedoc scaffold")
			result, err := cli.NewScaffoldRunner(s.diagnostics).Run(s.config)
			if err != nil {
				return s.fail(cmd, err)
			}

			s.diagnostics.Subsection("Generated Files")
			for _, file := range result.Files {
				s.diagnostics.Written(file)
			}
			s.diagnostics.Summary("Scaffold Complete!", map[string]interface{}{
				"Target":    strings.ToLower(s.config.Scaffold.Target),
				"Resources": strings.Join(result.Resources, ", "),
				"Files":     len(result.Files),
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&spec, "spec", "s", "", "OpenAPI document (default <docs dir>/openapi.json)")
	cmd.Flags().StringVarP(&target, "target", "t", "", "Target framework (default express)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default .)")
	cmd.Flags().StringVar(&module, "module", "", "Module path of Go targets (defaults to the enclosing go.mod)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port of the generated server (default 3000)")

	return cmd
}
