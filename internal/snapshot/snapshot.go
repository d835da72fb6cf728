// Package snapshot loads routing structures dumped from a running
// application so they can be documented offline.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/pkg/routedoc"
)

// Decode parses data into the routing structure of framework. JSON input
// goes through the YAML decoder.
func Decode(framework string, data []byte) (any, error) {
	fw, err := routedoc.ParseFramework(framework)
	if err != nil {
		return nil, err
	}
	if err := Validate(fw, data); err != nil {
		return nil, err
	}

	var target any
	switch fw {
	case routedoc.FrameworkExpress:
		target = &routedoc.ExpressApp{}
	case routedoc.FrameworkFastify:
		target = &routedoc.FastifyInstance{}
	case routedoc.FrameworkKoa:
		target = &routedoc.KoaRouter{}
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return nil, fmt.Errorf("failed to decode %s snapshot: %w", fw, err)
	}
	return target, nil
}

// Load reads a .json, .yaml or .yml snapshot from path
func Load(framework, path string) (any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
	default:
		return nil, errors.Newf(errors.SnapshotErrorCode, "unsupported snapshot extension %q", filepath.Ext(path)).
			WithContext("path", path).
			WithSuggestion("Dump the routing structure as .json, .yaml or .yml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}

	app, err := Decode(framework, data)
	if err != nil {
		switch e := err.(type) {
		case *routedoc.UnsupportedFrameworkError:
			return nil, err
		case *errors.BaseError:
			return nil, e.WithContext("path", path)
		}
		return nil, errors.WrapSnapshotError(path, err)
	}
	return app, nil
}
