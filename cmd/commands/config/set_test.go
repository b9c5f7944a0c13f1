package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"orbitdeck/internal/config"
)

// setupTestConfig points the config package at a temp file and returns its path.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_Model(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "model", "gemini-2.0-flash")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"gemini-2.0-flash"`) {
		t.Errorf("expected confirmation with model name, got: %s", stdout)
	}

	// Verify it was persisted.
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Model != "gemini-2.0-flash" {
		t.Errorf("expected Model %q, got %q", "gemini-2.0-flash", cfg.Model)
	}
}

func TestSet_TickInterval(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "tick-interval", "5s")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"5s"`) {
		t.Errorf("expected confirmation, got: %s", stdout)
	}
}

func TestSet_TickInterval_Invalid(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "tick-interval", "fast")

	if !strings.Contains(stderr, "not a positive duration") {
		t.Errorf("expected duration error, got: %s", stderr)
	}
}

func TestSet_ProbeTarget_Invalid(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "probe-target", "no-port-here")

	if !strings.Contains(stderr, "not a host:port") {
		t.Errorf("expected host:port error, got: %s", stderr)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
