package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yucatanweather/app/internal/domain/collections"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, collections.KeyTheme, "dark"))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()
	value, ok, err := second.Get(ctx, collections.KeyTheme)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "dark", value)
}

func TestSQLiteStoreRejectsEmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("  ")
	require.Error(t, err)
}

func exerciseStore(t *testing.T, store collections.Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, collections.KeyHistory)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Set(ctx, collections.KeyHistory, `[]`))
	require.NoError(t, store.Set(ctx, collections.KeyHistory, `[{"id":"1"}]`))
	value, ok, err := store.Get(ctx, collections.KeyHistory)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"1"}]`, value)

	require.NoError(t, store.Delete(ctx, collections.KeyHistory))
	_, ok, err = store.Get(ctx, collections.KeyHistory)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Delete(ctx, "missing"))
}

func TestValkeyOptions(t *testing.T) {
	opt, err := ValkeyOptions("localhost:6379")
	require.NoError(t, err)
	require.Equal(t, []string{"localhost:6379"}, opt.InitAddress)

	opt, err = ValkeyOptions("redis://cache.internal:6380/2")
	require.NoError(t, err)
	require.Equal(t, []string{"cache.internal:6380"}, opt.InitAddress)
	require.Equal(t, 2, opt.SelectDB)

	_, err = ValkeyOptions("  ")
	require.Error(t, err)
}
