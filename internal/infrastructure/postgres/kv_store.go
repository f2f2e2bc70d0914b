// Package postgres implementa el contrato storage.TxStore sobre una tabla clave-valor
// JSONB en PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/storage"
)

const kvTable = "inventory_kv"

const createTableSQL = `
CREATE TABLE IF NOT EXISTS inventory_kv (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

var _ storage.TxStore = (*KVStore)(nil)

// Querier lo implementan *pgxpool.Pool y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type kvRow struct {
	Value []byte `db:"value"`
}

// KVStore adaptador clave-valor sobre PostgreSQL (usable con pool o dentro de una tx).
type KVStore struct {
	pool *pgxpool.Pool
	q    Querier
	inTx bool
}

// NewKVStore construye el store sobre el pool.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool, q: pool}
}

// EnsureSchema crea la tabla si no existe.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("crear tabla %s: %w", kvTable, err)
	}
	return nil
}

// Get lee el valor JSON de la clave. Dentro de una transacción bloquea la fila (SELECT FOR UPDATE)
// para que el ciclo leer-modificar-guardar no pierda actualizaciones.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	q := psql.Select("value").From(kvTable).Where(squirrel.Eq{"key": key})
	if s.inTx {
		q = q.Suffix("FOR UPDATE")
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var row kvRow
	if err := pgxscan.Get(ctx, s.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return row.Value, nil
}

// Set inserta o reemplaza el valor de la clave.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	sql, args, err := psql.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := s.q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete elimina la clave; no falla si no existe.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	sql, args, err := psql.Delete(kvTable).Where(squirrel.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := s.q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// InTx inicia una transacción, ejecuta fn con un store atado a la tx y hace Commit o Rollback.
func (s *KVStore) InTx(ctx context.Context, fn func(tx storage.Store) error) error {
	if s.inTx || s.pool == nil {
		return fn(s)
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&KVStore{q: tx, inTx: true}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
