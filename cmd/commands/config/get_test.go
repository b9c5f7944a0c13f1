package config

import (
	"strings"
	"testing"

	"orbitdeck/internal/config"
)

func TestGet_Model_NotSet(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "get", "--key", "model")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "not set") {
		t.Errorf("expected 'not set', got: %s", stdout)
	}
}

func TestGet_Model_Set(t *testing.T) {
	path := setupTestConfig(t)

	// Write a config value directly.
	cfg := &config.Config{Model: "gemini-2.0-flash"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "get", "--key", "model")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "gemini-2.0-flash") {
		t.Errorf("expected 'gemini-2.0-flash', got: %s", stdout)
	}
}

func TestGet_ListsAllKeys(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "get")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	for _, name := range config.KeyNames() {
		if !strings.Contains(stdout, name) {
			t.Errorf("expected key %q in listing, got: %s", name, stdout)
		}
	}
}

func TestGet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "get", "--key", "bogus-key")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
