// ABOUTME: Tests for the leveled logger
// ABOUTME: Tests share global state and therefore do not run in parallel

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func capture(t *testing.T, l slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	saved := GetLevel()
	SetLevel(l)
	t.Cleanup(func() {
		restore()
		SetLevel(saved)
	})
	return &buf
}

func TestSetLevel(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}
	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, LevelWarn)

	Debug("hidden %d", 1)
	Info("hidden %d", 2)
	Warn("shown %d", 3)
	Error("shown %d", 4)

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug/info should be suppressed at warn level: %q", got)
	}
	if !strings.Contains(got, "[WARN] shown 3\n") {
		t.Errorf("missing warn line: %q", got)
	}
	if !strings.Contains(got, "[ERROR] shown 4\n") {
		t.Errorf("missing error line: %q", got)
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	buf := capture(t, LevelDebug)

	Debug("catalog: %s", "loaded")
	if got := buf.String(); got != "[DEBUG] catalog: loaded\n" {
		t.Errorf("Debug() wrote %q", got)
	}
}

func TestErrorIgnoresLevel(t *testing.T) {
	buf := capture(t, LevelError+4)

	Error("boom")
	if !strings.Contains(buf.String(), "[ERROR] boom") {
		t.Errorf("Error() should always emit, got %q", buf.String())
	}
}
