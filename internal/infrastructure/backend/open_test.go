package backend

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-inventarios/pkg/config"
)

func TestOpen_Memory(t *testing.T) {
	store, closeFn, err := Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory}})
	require.NoError(t, err)
	defer closeFn()
	assert.NotNil(t, store)
}

func TestOpen_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.db")
	store, closeFn, err := Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: config.DriverSQLite, SQLitePath: path}})
	require.NoError(t, err)
	defer closeFn()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", []byte(`"v"`)))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"v"`, string(got))
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, _, err := Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: "redis"}})
	assert.Error(t, err)
}
