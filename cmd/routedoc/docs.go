package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/routedoc/internal/cli"
)

func docsCmd(opts *globalOptions) *cobra.Command {
	var (
		framework      string
		input          string
		output         string
		title          string
		description    string
		apiVersion     string
		openAPIVersion string
		publishTo      string
		region         string
	)

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate OpenAPI documentation from a routing snapshot",
		Long: `Generate openapi.json and openapi.yaml from a routing snapshot.

The snapshot is a JSON or YAML dump of the application's routing structure
in the shape of the selected framework. With --publish the documents are
also uploaded to S3; credentials come from the AWS_* environment variables.

Examples:
  routedoc docs --framework express --input routes.json
  routedoc docs -f koa -i routes.yaml -o ./api-docs --title "Admin API"
  routedoc docs -i routes.json --publish s3://team-docs/orders`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}

			override(cmd, "framework", &s.config.Framework, framework)
			override(cmd, "input", &s.config.Input, input)
			override(cmd, "output", &s.config.DocsDir, output)
			override(cmd, "title", &s.config.Info.Title, title)
			override(cmd, "description", &s.config.Info.Description, description)
			override(cmd, "api-version", &s.config.Info.Version, apiVersion)
			override(cmd, "openapi-version", &s.config.OpenAPIVersion, openAPIVersion)
			override(cmd, "publish", &s.config.Publish.Destination, publishTo)
			override(cmd, "region", &s.config.Publish.Region, region)

			if err := s.config.Validate(); err != nil {
				return s.fail(cmd, err)
			}

			s.diagnostics.Section("routedoc docs")
			generator := cli.NewDocsGenerator(s.diagnostics)
			if err := generator.Run(s.config); err != nil {
				return s.fail(cmd, err)
			}
			if err := generator.Publish(cmd.Context(), s.config); err != nil {
				return s.fail(cmd, err)
			}

			summary := generator.GetSummary()
			s.diagnostics.Subsection("Generated Files")
			for _, file := range summary.GeneratedFiles {
				s.diagnostics.Written(file)
			}
			if len(summary.PublishedKeys) > 0 {
				s.diagnostics.Subsection("Published to " + s.config.Publish.Destination)
				for _, key := range summary.PublishedKeys {
					s.diagnostics.List("%s", key)
				}
			}
			s.diagnostics.Summary("Documentation Complete!", map[string]interface{}{
				"Routes found":     summary.RoutesFound,
				"Paths documented": summary.PathsDocumented,
				"Operations":       summary.Operations,
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&framework, "framework", "f", "", "Routing structure shape: express, fastify or koa (default express)")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Routing snapshot (.json, .yaml or .yml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Directory for openapi.json and openapi.yaml (default ./docs)")
	cmd.Flags().StringVar(&title, "title", "", "API title")
	cmd.Flags().StringVar(&description, "description", "", "API description")
	cmd.Flags().StringVar(&apiVersion, "api-version", "", "API version")
	cmd.Flags().StringVar(&openAPIVersion, "openapi-version", "", "Value of the openapi field")
	cmd.Flags().StringVar(&publishTo, "publish", "", "Also upload the documents to s3://bucket/prefix")
	cmd.Flags().StringVar(&region, "region", "", "AWS region for --publish (default $AWS_REGION or us-east-1)")

	return cmd
}
