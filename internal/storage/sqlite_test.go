package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/kesi-ledger/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_GetSet(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, store.Set(ctx, "k", "v1"))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	require.NoError(t, store.Set(ctx, "k", "v2"))
	got, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
}

func TestSQLiteStore_Validation(t *testing.T) {
	store := newTestSQLite(t)

	//nolint:staticcheck // testing nil context handling
	_, err := store.Get(nil, "k")
	assert.ErrorIs(t, err, ErrNilContext)

	err = store.Set(context.Background(), " ", "v")
	assert.ErrorIs(t, err, ErrEmptyString)

	_, err = NewSQLiteStore("")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestSQLiteStore_MigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t)

	require.NoError(t, store.Migrate(ctx))

	var version int
	require.NoError(t, store.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "kesi.db")

	kv, err := Open(ctx, BackendSQLite, path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, FeeRateKey, "2.5"))
	require.NoError(t, kv.Close())

	kv, err = Open(ctx, BackendSQLite, path)
	require.NoError(t, err)
	defer kv.Close()

	got, err := kv.Get(ctx, FeeRateKey)
	require.NoError(t, err)
	assert.Equal(t, "2.5", got)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), "etcd", "")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, store.Set(ctx, "k", "v"))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
	assert.NoError(t, store.Close())
}
