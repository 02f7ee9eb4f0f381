package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/kesi-ledger/internal/common"
	"github.com/Veraticus/kesi-ledger/internal/service"
)

// Supported storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open returns a migrated key-value store for the named backend.
func Open(ctx context.Context, backend, path string) (service.KeyValueStore, error) {
	switch backend {
	case BackendSQLite, "":
		store, err := NewSQLiteStore(path)
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return store, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported storage backend %q", common.ErrInvalidConfig, backend)
	}
}
