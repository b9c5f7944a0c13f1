package auth

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// KeyringStore implements Store using the OS keychain.
type KeyringStore struct {
	serviceName string
}

// NewKeyringStore returns a store scoped to the given keychain service.
func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetKey(name, value string) error {
	return keyring.Set(k.serviceName, NormalizeName(name), value)
}

func (k *KeyringStore) GetKey(name string) (string, error) {
	value, err := keyring.Get(k.serviceName, NormalizeName(name))
	if err == nil {
		return value, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrKeyNotFound
	}
	return "", err
}

func (k *KeyringStore) DeleteKey(name string) error {
	err := keyring.Delete(k.serviceName, NormalizeName(name))
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrKeyNotFound
	}
	return err
}
