package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/sistema-inventarios/internal/domain"
)

// Load lee la clave y decodifica el JSON en dst. Devuelve false si la clave no existe.
// Cualquier fallo del backend o dato corrupto se reporta como domain.ErrPersistence.
func Load[T any](ctx context.Context, s Store, key string, dst *T) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: leer %s: %v", domain.ErrPersistence, key, err)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: datos corruptos en %s: %v", domain.ErrPersistence, key, err)
	}
	return true, nil
}

// Save serializa v a JSON y lo guarda bajo key.
func Save(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: serializar %s: %v", domain.ErrPersistence, key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("%w: guardar %s: %v", domain.ErrPersistence, key, err)
	}
	return nil
}

// Remove elimina la clave.
func Remove(ctx context.Context, s Store, key string) error {
	if err := s.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w: eliminar %s: %v", domain.ErrPersistence, key, err)
	}
	return nil
}
