package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/routedoc/internal/errors"
)

// DiagnosticReporter provides user-friendly error reporting
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
}

// NewDiagnosticReporter creates a reporter writing to stderr
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     os.Stderr,
	}
}

// SetOutput redirects the reporter
func (r *DiagnosticReporter) SetOutput(out io.Writer) {
	r.out = out
}

// ReportWarning prints a single warning line
func (r *DiagnosticReporter) ReportWarning(message string) {
	orange := color.New(color.FgYellow, color.Bold)
	orange.Fprint(r.out, "! ")
	fmt.Fprintf(r.out, "%s\n", message)
}

// ReportError prints err with its type, context and suggestions when it
// carries them
func (r *DiagnosticReporter) ReportError(command string, err error) {
	title := fmt.Sprintf("ERROR: %s failed", command)
	fmt.Fprintf(r.out, "\n%s\n%s\n\n", title, strings.Repeat("=", len(title)))

	var multi *errors.MultipleErrors
	var rich errors.RoutedocError
	if stderrors.As(err, &multi) {
		for _, each := range multi.Errors {
			r.reportRichError(each)
		}
	} else if stderrors.As(err, &rich) {
		r.reportRichError(rich)
	} else {
		fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())
	}

	if !r.verbose {
		fmt.Fprintf(r.out, "Run with --verbose for more detailed output\n")
	}
}

func (r *DiagnosticReporter) reportRichError(err errors.RoutedocError) {
	header := errorTitle(err.ErrorCode())
	fmt.Fprintf(r.out, "Type: %s\n%s\n\n", header, strings.Repeat("-", len(header)+6))
	fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())

	if ctx := err.Context(); len(ctx) > 0 {
		r.printContext(ctx)
	}
	if hints := err.Suggestions(); len(hints) > 0 {
		fmt.Fprintf(r.out, "Suggestions:\n")
		for i, hint := range hints {
			fmt.Fprintf(r.out, "   %d. %s\n", i+1, hint)
		}
		fmt.Fprintf(r.out, "\n")
	}

	if r.verbose && err.Unwrap() != nil {
		fmt.Fprintf(r.out, "Error Chain:\n")
		level := 1
		for cause := err.Unwrap(); cause != nil; cause = stderrors.Unwrap(cause) {
			fmt.Fprintf(r.out, "    %d. %s\n", level, cause.Error())
			level++
		}
		fmt.Fprintf(r.out, "\n")
	}
}

// printContext prints context keys in a stable order
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(r.out, "Context:\n")
	for _, key := range keys {
		fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), context[key])
	}
	fmt.Fprintf(r.out, "\n")
}

func errorTitle(code errors.ErrorCode) string {
	switch code {
	case errors.ConfigurationErrorCode:
		return "Configuration Error"
	case errors.FrameworkErrorCode:
		return "Unsupported Framework"
	case errors.StructureErrorCode:
		return "Malformed Routing Structure"
	case errors.ParseErrorCode:
		return "Parse Error"
	case errors.SnapshotErrorCode:
		return "Snapshot Error"
	case errors.GenerationErrorCode:
		return "Generation Error"
	case errors.TemplateErrorCode:
		return "Template Error"
	case errors.FileSystemErrorCode:
		return "File System Error"
	case errors.ServerErrorCode:
		return "Server Error"
	case errors.PublishErrorCode:
		return "Publish Error"
	default:
		return "Unknown Error"
	}
}

// formatContextKey converts snake_case keys to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}
