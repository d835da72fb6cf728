package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/toyz/routedoc/pkg/routedoc"
)

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapParseError wraps errors raised while decoding an input document
func WrapParseError(item string, cause error) *BaseError {
	return Wrap(ParseErrorCode, fmt.Sprintf("failed to parse %s", item), cause).
		WithContext("item", item)
}

// WrapSnapshotError wraps errors raised while loading a routing snapshot
func WrapSnapshotError(path string, cause error) *BaseError {
	return Wrap(SnapshotErrorCode, fmt.Sprintf("failed to load routing snapshot '%s'", path), cause).
		WithContext("path", path).
		WithSuggestion("Snapshots are JSON or YAML files shaped like the framework's routing structure")
}

// WrapGenerateError wraps an error with a "failed to generate" message
func WrapGenerateError(item string, cause error) *BaseError {
	return Wrap(GenerationErrorCode, fmt.Sprintf("failed to generate %s", item), cause).
		WithContext("item", item)
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s template '%s'", operation, templateName)
	return Wrap(TemplateErrorCode, message, cause).
		WithContext("template", templateName).
		WithContext("operation", operation)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configType, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, configType)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("config_type", configType).
		WithContext("operation", operation)
}

// WrapServerError wraps errors raised by the documentation server
func WrapServerError(server, addr string, cause error) *BaseError {
	return Wrap(ServerErrorCode, fmt.Sprintf("%s server on %s failed", server, addr), cause).
		WithContext("server", server).
		WithContext("addr", addr)
}

// WrapPublishError wraps errors raised while uploading documents
func WrapPublishError(destination, key string, cause error) *BaseError {
	return Wrap(PublishErrorCode, fmt.Sprintf("failed to publish '%s' to %s", key, destination), cause).
		WithContext("destination", destination).
		WithContext("key", key)
}

// WrapExtractionError classifies an error returned by the route engine. The
// engine's own error is kept as the cause so callers can still match it.
func WrapExtractionError(framework string, cause error) *BaseError {
	var unsupported *routedoc.UnsupportedFrameworkError
	if errors.As(cause, &unsupported) {
		return Wrap(FrameworkErrorCode, "cannot extract routes", cause).
			WithContext("framework", unsupported.Framework).
			WithSuggestion(fmt.Sprintf("Supported frameworks: %s", supportedList()))
	}

	var structErr *routedoc.StructureError
	if errors.As(cause, &structErr) {
		return Wrap(StructureErrorCode, "cannot extract routes", cause).
			WithContext("framework", string(structErr.Framework)).
			WithSuggestion("Check that the routing structure matches the selected framework")
	}

	return Wrap(UnknownErrorCode, "cannot extract routes", cause).
		WithContext("framework", framework)
}

func supportedList() string {
	names := make([]string, 0, 3)
	for _, fw := range routedoc.SupportedFrameworks() {
		names = append(names, string(fw))
	}
	return strings.Join(names, ", ")
}
