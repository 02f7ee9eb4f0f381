package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/Veraticus/kesi-ledger/internal/common"
)

// MemoryStore is a map-backed service.KeyValueStore.
type MemoryStore struct {
	values map[string]string
	mu     sync.RWMutex
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value stored under key, or common.ErrNotFound.
func (m *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", common.ErrNotFound, key)
	}
	return v, nil
}

// Set replaces the value stored under key.
func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
