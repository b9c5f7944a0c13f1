package auth

import (
	"errors"
	"testing"
)

func TestResolveAPIKey_EnvWins(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	store := NewMockStore()
	store.SetKey(KeyGemini, "keychain-key")

	key, err := ResolveAPIKey(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "env-key" {
		t.Errorf("expected env-key, got %q", key)
	}
}

func TestResolveAPIKey_FallsBackToStore(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	store := NewMockStore()
	store.SetKey(KeyGemini, "keychain-key")

	key, err := ResolveAPIKey(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "keychain-key" {
		t.Errorf("expected keychain-key, got %q", key)
	}
}

func TestResolveAPIKey_MissingEverywhere(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	_, err := ResolveAPIKey(NewMockStore())
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestMockStore_Roundtrip(t *testing.T) {
	store := NewMockStore()

	if err := store.SetKey("Gemini", "abc"); err != nil {
		t.Fatalf("SetKey failed: %v", err)
	}
	// Lookup is case-insensitive via normalization.
	got, err := store.GetKey("gemini")
	if err != nil || got != "abc" {
		t.Errorf("expected abc, got %q err=%v", got, err)
	}

	if err := store.DeleteKey("gemini"); err != nil {
		t.Fatalf("DeleteKey failed: %v", err)
	}
	if _, err := store.GetKey("gemini"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}
}
