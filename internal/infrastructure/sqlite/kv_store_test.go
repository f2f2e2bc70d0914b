package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/sqlite"
	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/storage"
)

func openTestStore(t *testing.T) *sqlite.KVStore {
	t.Helper()
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "inv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestKVStore_GetSetDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, storage.KeyProducts)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, storage.KeyProducts, []byte(`[]`)))
	require.NoError(t, s.Set(ctx, storage.KeyProducts, []byte(`[{"id":"1"}]`)))
	v, err := s.Get(ctx, storage.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(v))

	require.NoError(t, s.Delete(ctx, storage.KeyProducts))
	_, err = s.Get(ctx, storage.KeyProducts)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestKVStore_InTxRollback(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, storage.KeyMovements, []byte(`[]`)))

	err := s.InTx(ctx, func(tx storage.Store) error {
		require.NoError(t, tx.Set(ctx, storage.KeyMovements, []byte(`[{"id":"m1"}]`)))
		return errors.New("abortar")
	})
	require.Error(t, err)

	v, err := s.Get(ctx, storage.KeyMovements)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(v))
}

func TestKVStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.db")
	ctx := context.Background()

	s, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, storage.Initialize(ctx, s, storage.SeedOptions{ExampleProducts: true}))
	require.NoError(t, s.Close())

	s, err = sqlite.Open(path)
	require.NoError(t, err)
	defer s.Close()

	var products []*entity.Product
	ok, err := storage.Load(ctx, s, storage.KeyProducts, &products)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, products, 5)
}
