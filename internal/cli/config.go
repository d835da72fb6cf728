package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v4"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/internal/publish"
	"github.com/toyz/routedoc/internal/scaffold"
	"github.com/toyz/routedoc/internal/server"
	"github.com/toyz/routedoc/internal/swaggerui"
	"github.com/toyz/routedoc/pkg/openapi"
	"github.com/toyz/routedoc/pkg/routedoc"
)

// DefaultConfigFiles are tried in order in the working directory when no
// --config is given
var DefaultConfigFiles = []string{".routedoc.yaml", ".routedoc.yml", ".routedoc.toml"}

// DefaultDocsDir is where generated documents are written
const DefaultDocsDir = "./docs"

// Config holds the configuration shared by every command. Fields map onto
// the keys of the config file; flags override them.
type Config struct {
	// Framework names the shape of the routing snapshot (express, fastify, koa)
	Framework string `yaml:"framework" toml:"framework"`

	// Input is the routing snapshot to document
	Input string `yaml:"input" toml:"input"`

	// Spec is the OpenAPI document consumed by scaffold and serve
	Spec string `yaml:"spec" toml:"spec"`

	// DocsDir receives openapi.json and openapi.yaml
	DocsDir string `yaml:"docs_dir" toml:"docs_dir"`

	// OpenAPIVersion is written into the openapi field
	OpenAPIVersion string `yaml:"openapi_version" toml:"openapi_version"`

	// Info is the document metadata
	Info openapi.Info `yaml:"info" toml:"info"`

	Scaffold ScaffoldConfig `yaml:"scaffold" toml:"scaffold"`
	Server   ServerConfig   `yaml:"server" toml:"server"`
	Publish  PublishConfig  `yaml:"publish" toml:"publish"`

	// Verbose enables detailed logging and error reporting
	Verbose bool `yaml:"verbose" toml:"verbose"`

	// Quiet only shows errors and final results
	Quiet bool `yaml:"quiet" toml:"quiet"`
}

// ScaffoldConfig configures the scaffold command
type ScaffoldConfig struct {
	Target    string `yaml:"target" toml:"target"`
	OutputDir string `yaml:"output_dir" toml:"output_dir"`

	// Module is the module path of Go scaffolds. If empty, it is resolved
	// from a go.mod above the output directory.
	Module string `yaml:"module" toml:"module"`
	Port   int    `yaml:"port" toml:"port"`
}

// PublishConfig configures uploading documents after the docs command
type PublishConfig struct {
	// Destination is an s3://bucket/prefix URL; empty disables publishing
	Destination string `yaml:"destination" toml:"destination"`

	// Region overrides AWS_REGION
	Region string `yaml:"region" toml:"region"`
}

// ServerConfig configures the serve command
type ServerConfig struct {
	Kind string `yaml:"kind" toml:"kind"`
	Host string `yaml:"host" toml:"host"`
	Port string `yaml:"port" toml:"port"`
	Path string `yaml:"path" toml:"path"`

	// DisableMetrics turns off the Prometheus endpoint
	DisableMetrics bool `yaml:"disable_metrics" toml:"disable_metrics"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() *Config {
	serverDefaults := server.DefaultConfig()
	return &Config{
		Framework:      string(routedoc.FrameworkExpress),
		DocsDir:        DefaultDocsDir,
		OpenAPIVersion: openapi.DefaultVersion,
		Info:           openapi.DefaultInfo(),
		Scaffold: ScaffoldConfig{
			Target:    string(scaffold.TargetExpress),
			OutputDir: ".",
			Port:      scaffold.DefaultPort,
		},
		Server: ServerConfig{
			Kind: string(serverDefaults.Kind),
			Port: serverDefaults.Port,
			Path: swaggerui.DefaultPath,
		},
	}
}

// LoadConfig returns the defaults overlaid with the config file at path.
// An empty path reads the first of DefaultConfigFiles that exists. Files
// ending in .toml are decoded as TOML, everything else as YAML.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		for _, candidate := range DefaultConfigFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return config, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapConfigurationError(path, "read", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, config)
	} else {
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, errors.WrapConfigurationError(path, "parse", err)
	}
	return config, nil
}

// Validate checks the names the commands dispatch on and reports every
// invalid one
func (c *Config) Validate() error {
	errs := errors.NewMultipleErrors()
	if _, err := routedoc.ParseFramework(c.Framework); err != nil {
		errs.Add(errors.WrapConfigurationError("framework", "validate", err).
			WithSuggestion("Supported frameworks: " + frameworkList()))
	}
	if _, err := scaffold.ParseTarget(c.Scaffold.Target); err != nil {
		errs.Add(errors.WrapConfigurationError("scaffold.target", "validate", err))
	}
	if _, err := server.ParseKind(c.Server.Kind); err != nil {
		errs.Add(errors.WrapConfigurationError("server.kind", "validate", err))
	}
	if c.Publish.Destination != "" {
		if _, err := publish.ParseDestination(c.Publish.Destination); err != nil {
			errs.Add(errors.WrapConfigurationError("publish.destination", "validate", err))
		}
	}
	return errs.ErrorOrNil()
}

// DocumentOptions returns the options applied to generated documents
func (c *Config) DocumentOptions() []openapi.Option {
	return []openapi.Option{
		openapi.WithInfo(c.Info),
		openapi.WithOpenAPIVersion(c.OpenAPIVersion),
	}
}

// ServerOptions returns the documentation server configuration
func (c *Config) ServerOptions() *server.Config {
	config := server.DefaultConfig()
	config.Kind = server.Kind(strings.ToLower(c.Server.Kind))
	config.Host = c.Server.Host
	if c.Server.Port != "" {
		config.Port = c.Server.Port
	}
	config.Base = c.Server.Path
	config.EnableMetrics = !c.Server.DisableMetrics
	return config
}

func frameworkList() string {
	names := make([]string, 0, len(routedoc.SupportedFrameworks()))
	for _, fw := range routedoc.SupportedFrameworks() {
		names = append(names, string(fw))
	}
	return strings.Join(names, ", ")
}
