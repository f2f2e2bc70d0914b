// seed siembra usuarios, categorías, productos de ejemplo y el libro vacío en el
// almacenamiento configurado. Solo completa las colecciones ausentes.
//
// Uso: go run ./cmd/seed [reset]
// Con "reset" borra antes todas las claves del sistema.
package main

import (
	"context"
	"os"

	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/backend"
	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/storage"
	"github.com/jhoicas/sistema-inventarios/pkg/config"
	"github.com/jhoicas/sistema-inventarios/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.LogLevel, Service: "seed", Storage: cfg.Storage.Driver})

	ctx := context.Background()
	store, closeStore, err := backend.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeStore()

	if len(os.Args) > 1 && os.Args[1] == "reset" {
		if err := storage.Clear(ctx, store); err != nil {
			log.Error().Err(err).Msg("borrar datos")
			return
		}
		log.Warn().Msg("datos borrados")
	}

	if err := storage.Initialize(ctx, store, storage.SeedOptions{ExampleProducts: cfg.App.SeedExamples}); err != nil {
		log.Error().Err(err).Msg("sembrar datos")
		return
	}
	log.Info().Str("storage", cfg.Storage.Driver).Msg("datos por defecto listos")
}
