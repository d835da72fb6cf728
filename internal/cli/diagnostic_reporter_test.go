package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/toyz/routedoc/internal/errors"
)

func TestDiagnosticReporter_ReportWarning(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(false)
	reporter.SetOutput(&buf)

	reporter.ReportWarning("This is a test warning")

	assert.Contains(t, buf.String(), "! This is a test warning")
}

func TestDiagnosticReporter_ReportError(t *testing.T) {
	cause := fmt.Errorf("open routes.yaml: no such file or directory")
	err := errors.WrapSnapshotError("routes.yaml", cause).WithContext("framework_name", "koa")

	t.Run("rich error", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewDiagnosticReporter(false)
		reporter.SetOutput(&buf)

		reporter.ReportError("docs", fmt.Errorf("run: %w", err))

		output := buf.String()
		assert.Contains(t, output, "ERROR: docs failed")
		assert.Contains(t, output, "Type: Snapshot Error")
		assert.Contains(t, output, "Framework Name: koa")
		assert.Contains(t, output, "Suggestions:")
		assert.Contains(t, output, "Run with --verbose")
		assert.NotContains(t, output, "Error Chain:")
	})

	t.Run("verbose chain", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewDiagnosticReporter(true)
		reporter.SetOutput(&buf)

		reporter.ReportError("docs", err)

		output := buf.String()
		assert.Contains(t, output, "Error Chain:")
		assert.Contains(t, output, "1. open routes.yaml: no such file or directory")
	})

	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewDiagnosticReporter(false)
		reporter.SetOutput(&buf)

		reporter.ReportError("serve", fmt.Errorf("boom"))

		assert.Contains(t, buf.String(), "Message: boom")
	})
}
