// Package backend abre el almacenamiento clave-valor elegido en la configuración.
package backend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/postgres"
	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/sqlite"
	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/storage"
	"github.com/jhoicas/sistema-inventarios/pkg/config"
)

// Open devuelve el store del driver configurado y la función que lo cierra.
func Open(ctx context.Context, cfg *config.Config) (storage.TxStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return storage.NewMemoryStore(), func() {}, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", cfg.Storage.SQLitePath).Msg("almacenamiento SQLite abierto")
		return store, func() {
			if err := store.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar SQLite")
			}
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		store := postgres.NewKVStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Msg("almacenamiento PostgreSQL listo")
		return store, pool.Close, nil
	}
	return nil, nil, fmt.Errorf("backend: driver no soportado %q", cfg.Storage.Driver)
}
