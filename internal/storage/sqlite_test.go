package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketledger/pocketledger/internal/common"
)

func TestNewSQLiteStore(t *testing.T) {
	t.Run("creates missing directories", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "nested", "dir", "ledger.db")

		store, err := NewSQLiteStore(dbPath)
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		require.NoError(t, store.Migrate(context.Background()))
	})

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := NewSQLiteStore("")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyString)
	})

	t.Run("unopenable path reported as open failure", func(t *testing.T) {
		// a directory cannot be opened as a database file
		_, err := NewSQLiteStore(t.TempDir())
		assert.ErrorIs(t, err, common.ErrStorageOpen)
	})
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Migrate(ctx))
}

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("absent key returns nil", func(t *testing.T) {
		raw, err := store.get(ctx, "no/such/key")
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, store.put(ctx, "test/key", []byte("value")))

		raw, err := store.get(ctx, "test/key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), raw)
	})

	t.Run("put overwrites atomically", func(t *testing.T) {
		require.NoError(t, store.put(ctx, "test/key", []byte("first")))
		require.NoError(t, store.put(ctx, "test/key", []byte("second")))

		raw, err := store.get(ctx, "test/key")
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), raw)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		err := store.put(ctx, "  ", []byte("x"))
		assert.ErrorIs(t, err, ErrEmptyString)
	})

	t.Run("write to closed store reported as write failure", func(t *testing.T) {
		closed, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ledger.db"))
		require.NoError(t, err)
		require.NoError(t, closed.Migrate(ctx))
		require.NoError(t, closed.Close())

		err = closed.put(ctx, "test/key", []byte("x"))
		assert.ErrorIs(t, err, common.ErrStorageWrite)
	})
}

func TestPersistenceAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "ledger.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.put(ctx, "test/key", []byte("survives")))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	require.NoError(t, reopened.Migrate(ctx))

	raw, err := reopened.get(ctx, "test/key")
	require.NoError(t, err)
	assert.Equal(t, []byte("survives"), raw)
}
