package server

import (
	"net"
	"os"
	"strings"
	"time"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/internal/swaggerui"
	"github.com/toyz/routedoc/internal/utils"
)

// Kind selects the router that hosts the documentation
type Kind string

const (
	KindGin   Kind = "gin"
	KindEcho  Kind = "echo"
	KindFiber Kind = "fiber"
	KindChi   Kind = "chi"
)

// SupportedKinds returns every server kind
func SupportedKinds() []Kind {
	return []Kind{KindGin, KindEcho, KindFiber, KindChi}
}

// ParseKind matches name case-insensitively against the supported kinds
func ParseKind(name string) (Kind, error) {
	lower := Kind(strings.ToLower(name))
	for _, kind := range SupportedKinds() {
		if lower == kind {
			return kind, nil
		}
	}
	return "", errors.Newf(errors.ConfigurationErrorCode, "unsupported server: %s", name).
		WithContext("server", name).
		WithSuggestion("Supported servers: gin, echo, fiber, chi")
}

// Config holds configuration for the documentation server
type Config struct {
	// Kind is the router used to serve the UI (default: gin)
	Kind Kind

	// Host is the host to bind to (default: "")
	Host string

	// Port is the port to listen on (default: $PORT or 8080)
	Port string

	// Base is the mount path of the UI (default: /api-docs/swagger-ui)
	Base string

	// EnableRecover enables panic recovery middleware (default: true)
	EnableRecover bool

	// EnableMetrics serves Prometheus metrics at MetricsPath (default: true)
	EnableMetrics bool

	// ShutdownTimeout bounds the graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a server configuration with sensible defaults
func DefaultConfig() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Kind:            KindGin,
		Port:            port,
		Base:            swaggerui.DefaultPath,
		EnableRecover:   true,
		EnableMetrics:   true,
		ShutdownTimeout: 30 * time.Second,
	}
}

// Addr is the listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Validate checks the listen port and the UI mount path. The UI may not be
// mounted on the root redirect or, with metrics enabled, on MetricsPath.
func (c *Config) Validate() error {
	if err := utils.ValidatePort("port")(c.Port); err != nil {
		return errors.Wrap(errors.ConfigurationErrorCode, "invalid server configuration", err).
			WithContext("port", c.Port)
	}
	if err := utils.ValidateURLPath("path")(c.Base); err != nil {
		return errors.Wrap(errors.ConfigurationErrorCode, "invalid server configuration", err).
			WithContext("path", c.Base)
	}

	base := strings.TrimRight(c.Base, "/")
	switch {
	case base == "":
		return errors.New(errors.ConfigurationErrorCode, "invalid server configuration: path collides with the root redirect").
			WithContext("path", c.Base).
			WithSuggestion("Mount the UI below the root, e.g. " + swaggerui.DefaultPath)
	case c.EnableMetrics && base == MetricsPath:
		return errors.New(errors.ConfigurationErrorCode, "invalid server configuration: path collides with the metrics endpoint").
			WithContext("path", c.Base).
			WithSuggestion("Choose another UI path or disable metrics")
	}
	return nil
}
