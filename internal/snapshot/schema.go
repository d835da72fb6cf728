package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v4"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/pkg/routedoc"
)

const expressSchema = `{
  "type": "object",
  "properties": {
    "stack": {"type": ["array", "null"], "items": {"$ref": "#/$defs/layer"}}
  },
  "$defs": {
    "kind": {"enum": ["", "middleware", "route", "router", "nested"]},
    "strings": {"type": ["array", "null"], "items": {"type": "string"}},
    "layer": {
      "type": "object",
      "properties": {
        "kind": {"$ref": "#/$defs/kind"},
        "name": {"type": "string"},
        "matcher": {"type": "string"},
        "route": {
          "type": ["object", "null"],
          "properties": {
            "path": {"type": "string"},
            "methods": {"$ref": "#/$defs/strings"}
          }
        },
        "stack": {"type": ["array", "null"], "items": {"$ref": "#/$defs/layer"}}
      }
    }
  }
}`

const fastifySchema = `{
  "type": "object",
  "properties": {
    "prefix": {"type": "string"},
    "routes": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "properties": {
          "method": {"type": "string"},
          "url": {"type": "string"}
        }
      }
    },
    "children": {"type": ["array", "null"], "items": {"$ref": "#"}}
  }
}`

const koaSchema = `{
  "type": "object",
  "properties": {
    "stack": {"type": ["array", "null"], "items": {"$ref": "#/$defs/layer"}}
  },
  "$defs": {
    "kind": {"enum": ["", "middleware", "route", "router", "nested"]},
    "layer": {
      "type": "object",
      "properties": {
        "kind": {"$ref": "#/$defs/kind"},
        "path": {"type": "string"},
        "methods": {"type": ["array", "null"], "items": {"type": "string"}},
        "opts": {
          "type": ["object", "null"],
          "properties": {"prefix": {"type": "string"}}
        },
        "stack": {"type": ["array", "null"], "items": {"$ref": "#/$defs/layer"}}
      }
    }
  }
}`

var schemaSources = map[routedoc.Framework]string{
	routedoc.FrameworkExpress: expressSchema,
	routedoc.FrameworkFastify: fastifySchema,
	routedoc.FrameworkKoa:     koaSchema,
}

// compiledSchemas compiles every snapshot schema on first use
var compiledSchemas = sync.OnceValues(func() (map[routedoc.Framework]*jsonschema.Schema, error) {
	compiled := make(map[routedoc.Framework]*jsonschema.Schema, len(schemaSources))
	for fw, source := range schemaSources {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(source))
		if err != nil {
			return nil, err
		}

		compiler := jsonschema.NewCompiler()
		url := string(fw) + ".schema.json"
		if err := compiler.AddResource(url, doc); err != nil {
			return nil, err
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, err
		}
		compiled[fw] = schema
	}
	return compiled, nil
})

// Validate checks that data has the shape of the routing structure of fw.
// It checks types only; structural rules such as routers without a stack
// are left to the route walkers.
func Validate(fw routedoc.Framework, data []byte) error {
	schemas, err := compiledSchemas()
	if err != nil {
		return errors.Wrap(errors.SnapshotErrorCode, "failed to compile snapshot schemas", err)
	}
	schema, ok := schemas[fw]
	if !ok {
		return &routedoc.UnsupportedFrameworkError{Framework: string(fw)}
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode %s snapshot: %w", fw, err)
	}
	if raw == nil {
		return nil
	}

	// YAML values are normalized through JSON so the validator only sees
	// JSON types
	normalized, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to normalize %s snapshot: %w", fw, err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(normalized))
	if err != nil {
		return fmt.Errorf("failed to normalize %s snapshot: %w", fw, err)
	}

	if err := schema.Validate(instance); err != nil {
		shapeErr := errors.Wrapf(errors.SnapshotErrorCode, err, "snapshot does not match the %s routing structure", fw).
			WithContext("framework", string(fw)).
			WithSuggestion("Compare the snapshot with the structure documented for the framework")
		if verr, ok := err.(*jsonschema.ValidationError); ok {
			shapeErr.WithContext("locations", strings.Join(invalidLocations(verr), ", "))
		}
		return shapeErr
	}
	return nil
}

// invalidLocations lists the JSON pointers of the leaf failures
func invalidLocations(verr *jsonschema.ValidationError) []string {
	seen := make(map[string]bool)
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			seen["/"+strings.Join(e.InstanceLocation, "/")] = true
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(verr)

	locations := make([]string, 0, len(seen))
	for location := range seen {
		locations = append(locations, location)
	}
	sort.Strings(locations)
	return locations
}
