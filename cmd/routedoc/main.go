package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/toyz/routedoc/internal/cli"
	"github.com/toyz/routedoc/internal/utils"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	configPath string
	verbose    bool
	quiet      bool
	noColor    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code
func run(args []string, out, errOut io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "routedoc",
		Short: "Document and scaffold web application routes",
		Long: `routedoc normalizes the routing table of an Express, Fastify or Koa
application into one route list, renders it as an OpenAPI 3 document, hosts
it behind Swagger UI and scaffolds routing code from a document.

Routing structures are read from JSON or YAML snapshots. Settings are read
from .routedoc.yaml or .routedoc.toml in the working directory (or --config)
and flags override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file, YAML or TOML (default .routedoc.yaml or .routedoc.toml when present)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output and detailed error reporting")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Only show errors and final results")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		docsCmd(opts),
		scaffoldCmd(opts),
		serveCmd(opts),
		cleanCmd(opts),
		versionCmd(),
	)

	return rootCmd
}

// session bundles what a command needs once flags are parsed
type session struct {
	config      *cli.Config
	diagnostics *utils.DiagnosticSystem
	reporter    *cli.DiagnosticReporter
}

// newSession loads the config file, applies the global flags and sets up
// output for cmd
func newSession(cmd *cobra.Command, opts *globalOptions) (*session, error) {
	config, err := cli.LoadConfig(opts.configPath)
	if err != nil {
		reporter := cli.NewDiagnosticReporter(opts.verbose)
		reporter.SetOutput(cmd.ErrOrStderr())
		reporter.ReportError(cmd.Name(), err)
		return nil, err
	}
	if cmd.Flags().Changed("verbose") {
		config.Verbose = opts.verbose
	}
	if cmd.Flags().Changed("quiet") {
		config.Quiet = opts.quiet
	}

	diagnostics := utils.NewDiagnosticsFor(config.Quiet, config.Verbose)
	diagnostics.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if opts.noColor {
		diagnostics.SetColors(false)
	}

	reporter := cli.NewDiagnosticReporter(config.Verbose)
	reporter.SetOutput(cmd.ErrOrStderr())

	return &session{config: config, diagnostics: diagnostics, reporter: reporter}, nil
}

// fail reports err and hands it back to cobra
func (s *session) fail(cmd *cobra.Command, err error) error {
	s.reporter.ReportError(cmd.Name(), err)
	return err
}

// override copies a string flag into dst when it was set on the command line
func override(cmd *cobra.Command, name string, dst *string, value string) {
	if cmd.Flags().Changed(name) {
		*dst = value
	}
}
