package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/routedoc/internal/cli"
)

func cleanCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean [directories...]",
		Short: "Remove generated openapi.json and openapi.yaml files",
		Long: `Remove generated documents from the given directories, or from the docs
directory when none are given. Go-style patterns like ./... recurse.

Examples:
  routedoc clean
  routedoc clean ./services/...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}

			dirs := args
			if len(dirs) == 0 {
				dirs = []string{s.config.DocsDir}
			}

			s.diagnostics.Section("routedoc clean")
			removed, err := cli.NewCleaner().CleanGeneratedFiles(dirs)
			if err != nil {
				return s.fail(cmd, err)
			}

			for _, path := range removed {
				s.diagnostics.List("removed %s", path)
			}
			if len(removed) == 0 {
				s.reporter.ReportWarning("No generated documents found")
				return nil
			}
			s.diagnostics.Success("Removed %d generated documents", len(removed))
			return nil
		},
	}
}
