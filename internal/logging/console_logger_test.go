package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mockhouse/mockhouse/pkg/mockhouse"
)

// Compile-time interface checks.
var (
	_ mockhouse.Logger = (*ConsoleLogger)(nil)
	_ mockhouse.Logger = (*NullLogger)(nil)
)

// TestConsoleLogger_VerboseGated tests that verbose output is suppressed
// unless enabled
func TestConsoleLogger_VerboseGated(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewConsoleLoggerTo(&buf, false)

	quiet.Verbose("should not appear")
	quiet.Info("info line")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Errorf("Expected verbose output suppressed, got: %q", out)
	}
	if !strings.Contains(out, "info line") {
		t.Errorf("Expected info output, got: %q", out)
	}
}

// TestConsoleLogger_VerboseEnabled tests verbose pass-through with prefix
func TestConsoleLogger_VerboseEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true)

	logger.Verbose("entry %s matched", "METADATA")

	if !strings.Contains(buf.String(), "[verbose] entry METADATA matched") {
		t.Errorf("Expected verbose line with prefix, got: %q", buf.String())
	}
}

// TestConsoleLogger_ErrorPrefix tests the error prefix
func TestConsoleLogger_ErrorPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Error("boom: %v", "reason")

	if !strings.Contains(buf.String(), "[error] boom: reason") {
		t.Errorf("Expected error line with prefix, got: %q", buf.String())
	}
}

// TestConsoleLogger_NoArgsNoFormatting tests literal messages with percent
// signs survive when no args are given
func TestConsoleLogger_NoArgsNoFormatting(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Info("100% literal")

	if !strings.Contains(buf.String(), "100% literal") {
		t.Errorf("Expected literal output, got: %q", buf.String())
	}
}
