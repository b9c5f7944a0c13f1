package auth

// MockStore is an in-memory Store for tests.
type MockStore struct {
	keys map[string]string
}

// NewMockStore returns an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{keys: make(map[string]string)}
}

func (m *MockStore) SetKey(name, value string) error {
	m.keys[NormalizeName(name)] = value
	return nil
}

func (m *MockStore) GetKey(name string) (string, error) {
	value, ok := m.keys[NormalizeName(name)]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *MockStore) DeleteKey(name string) error {
	key := NormalizeName(name)
	if _, ok := m.keys[key]; !ok {
		return ErrKeyNotFound
	}
	delete(m.keys, key)
	return nil
}
