package utils

import "fmt"

// Wrappers shared by the helpers in this package so their messages read the
// same way.

// WrapLoadError wraps an error with a "failed to load" message
func WrapLoadError(item string, err error) error {
	return fmt.Errorf("failed to load %s: %w", item, err)
}

// WrapParseError wraps an error with a "failed to parse" message
func WrapParseError(item string, err error) error {
	return fmt.Errorf("failed to parse %s: %w", item, err)
}

// WrapFormatError wraps an error with a "failed to format" message
func WrapFormatError(item string, err error) error {
	return fmt.Errorf("failed to format %s: %w", item, err)
}
