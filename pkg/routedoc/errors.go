package routedoc

import "fmt"

// UnsupportedFrameworkError is returned when a framework name is not one of
// the supported identifiers.
type UnsupportedFrameworkError struct {
	Framework string
}

// Error implements the error interface
func (e *UnsupportedFrameworkError) Error() string {
	return fmt.Sprintf("unsupported framework: %s", e.Framework)
}

// StructureError reports a routing structure that does not have the shape
// expected for its framework. The walk that hit it produces no routes.
type StructureError struct {
	Framework Framework
	Detail    string
}

// Error implements the error interface
func (e *StructureError) Error() string {
	return fmt.Sprintf("malformed %s routing structure: %s", e.Framework, e.Detail)
}

func structureErrorf(framework Framework, format string, args ...interface{}) *StructureError {
	return &StructureError{
		Framework: framework,
		Detail:    fmt.Sprintf(format, args...),
	}
}
