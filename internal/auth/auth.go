// Package auth resolves the Gemini API credential. The environment variable
// wins; the OS keychain (populated by `orbitdeck auth login`) is the
// fallback for interactive setups.
package auth

import (
	"errors"
	"os"
	"strings"
)

const (
	// ServiceName is the keychain service entries are stored under.
	ServiceName = "orbitdeck"

	// KeyGemini is the keychain entry name for the Gemini API key.
	KeyGemini = "gemini"

	// EnvAPIKey is the environment variable consulted before the keychain.
	EnvAPIKey = "GEMINI_API_KEY"
)

// ErrKeyNotFound is returned when no credential is stored.
var ErrKeyNotFound = errors.New("auth: API key not found")

// Store persists named API keys.
type Store interface {
	SetKey(name, value string) error
	GetKey(name string) (string, error)
	DeleteKey(name string) error
}

// DefaultStore returns the standard store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// ResolveAPIKey returns the Gemini credential: the environment variable if
// set, else the keychain entry. ErrKeyNotFound when neither exists.
func ResolveAPIKey(store Store) (string, error) {
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key, nil
	}
	if store == nil {
		return "", ErrKeyNotFound
	}
	return store.GetKey(KeyGemini)
}

// NormalizeName normalizes a key name for consistent keychain lookup.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
