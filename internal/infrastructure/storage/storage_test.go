package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-inventarios/internal/domain"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/storage"
)

func newProduct(id, code string, stock int) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID: id, Code: code, Name: "Producto " + code, Category: "Otros",
		Price: decimal.NewFromInt(1000), Stock: stock, MinStock: 5,
		CreatedAt: now, UpdatedAt: now,
	}
}

func TestMemoryStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()

	_, err := s.Get(ctx, "x")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "x", []byte(`{"a":1}`)))
	v, err := s.Get(ctx, "x")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(v))

	require.NoError(t, s.Delete(ctx, "x"))
	_, err = s.Get(ctx, "x")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestMemoryStore_InTx_RollbackNoDejaEscrituras(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()
	require.NoError(t, s.Set(ctx, "k", []byte(`1`)))

	boom := errors.New("boom")
	err := s.InTx(ctx, func(tx storage.Store) error {
		require.NoError(t, tx.Set(ctx, "k", []byte(`2`)))
		require.NoError(t, tx.Set(ctx, "otra", []byte(`3`)))
		v, err := tx.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "2", string(v), "la transacción ve sus propias escrituras")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "1", string(v))
	_, err = s.Get(ctx, "otra")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestMemoryStore_InTx_Commit(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()
	require.NoError(t, s.Set(ctx, "borrar", []byte(`1`)))

	require.NoError(t, s.InTx(ctx, func(tx storage.Store) error {
		if err := tx.Set(ctx, "nueva", []byte(`"ok"`)); err != nil {
			return err
		}
		return tx.Delete(ctx, "borrar")
	}))

	v, err := s.Get(ctx, "nueva")
	require.NoError(t, err)
	assert.Equal(t, `"ok"`, string(v))
	_, err = s.Get(ctx, "borrar")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestLoad_DatosCorruptosEsErrorDePersistencia(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()
	require.NoError(t, s.Set(ctx, storage.KeyProducts, []byte(`{no es json`)))

	_, err := storage.NewProductRepository(s).List(ctx)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestGateway_RoundTripAnidado(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()
	type nested struct {
		Items []map[string]any `json:"items"`
		Price decimal.Decimal  `json:"price"`
	}
	in := nested{Items: []map[string]any{{"a": "b", "n": []any{1.0, "x"}}}, Price: decimal.RequireFromString("12.50")}
	require.NoError(t, storage.Save(ctx, s, storage.KeySettings, in))

	var out nested
	found, err := storage.Load(ctx, s, storage.KeySettings, &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in.Items, out.Items)
	assert.True(t, in.Price.Equal(out.Price))
}

func TestProductRepo_UpdateConservaStock(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewProductRepository(storage.NewMemoryStore())
	require.NoError(t, repo.Create(ctx, newProduct("p1", "PROD-1", 5)))

	edited := newProduct("p1", "PROD-1", 999)
	edited.Name = "Renombrado"
	require.NoError(t, repo.Update(ctx, edited))

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Renombrado", got.Name)
	assert.Equal(t, 5, got.Stock)
}

func TestProductRepo_CreateCodigoDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewProductRepository(storage.NewMemoryStore())
	require.NoError(t, repo.Create(ctx, newProduct("p1", "PROD-1", 5)))
	assert.ErrorIs(t, repo.Create(ctx, newProduct("p2", "PROD-1", 1)), domain.ErrDuplicateCode)
}

func TestProductRepo_UpdateStockNuncaNegativo(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewProductRepository(storage.NewMemoryStore())
	require.NoError(t, repo.Create(ctx, newProduct("p1", "PROD-1", 5)))

	_, err := repo.UpdateStock(ctx, "p1", -6)
	assert.ErrorIs(t, err, domain.ErrNegativeStock)

	p, err := repo.UpdateStock(ctx, "p1", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)

	_, err = repo.UpdateStock(ctx, "nope", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewProductRepository(storage.NewMemoryStore())
	require.NoError(t, repo.Create(ctx, newProduct("p1", "PROD-1", 5)))

	ok, err := repo.Delete(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Delete(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTxRunner_FalloRevierteMovimientoYStock(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()
	require.NoError(t, storage.NewProductRepository(s).Create(ctx, newProduct("p1", "PROD-1", 5)))

	runner := storage.NewTxRunner(s)
	err := runner.Run(ctx, func(products repository.ProductRepository, movs repository.MovementRepository) error {
		if err := movs.Append(ctx, &entity.Movement{ID: "m1", ProductID: "p1"}); err != nil {
			return err
		}
		if _, err := products.UpdateStock(ctx, "p1", 3); err != nil {
			return err
		}
		return errors.New("falla tardía")
	})
	require.Error(t, err)

	p, err := storage.NewProductRepository(s).GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock)
	movs, err := storage.NewMovementRepository(s).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestInitialize_Idempotente(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()
	opts := storage.SeedOptions{ExampleProducts: true}

	require.NoError(t, storage.Initialize(ctx, s, opts))
	first, err := storage.NewProductRepository(s).List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 5)

	require.NoError(t, storage.Initialize(ctx, s, opts))
	second, err := storage.NewProductRepository(s).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	users, found, err := storage.NewUserRepository(s).List(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, users, 2)

	cats, err := storage.NewCategoryRepository(s).List(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 8)

	movs, err := storage.NewMovementRepository(s).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestSettingsRepo_DefaultsSiNoExiste(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewSettingsRepository(storage.NewMemoryStore())
	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), got)

	got.CompanyName = "Ferretería Central"
	require.NoError(t, repo.Save(ctx, got))
	again, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ferretería Central", again.CompanyName)
}

func TestSessionRepo(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewSessionRepository(storage.NewMemoryStore())
	cur, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)

	require.NoError(t, repo.Save(ctx, entity.Actor{ID: "1", Username: "admin", Role: entity.RoleAdmin}))
	cur, err = repo.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "admin", cur.Username)

	require.NoError(t, repo.Clear(ctx))
	cur, err = repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}
