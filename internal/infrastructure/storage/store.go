// Package storage implementa la pasarela de persistencia del inventario: un contrato
// clave-valor (JSON por clave lógica) y los repositorios de entidades construidos sobre él.
//
// Cada escritura es un ciclo completo leer colección → modificar → guardar colección.
// Store.InTx delimita ese ciclo como transacción; los backends (memoria, SQLite,
// PostgreSQL) solo tienen que respetar el contrato.
package storage

import (
	"context"
	"errors"
)

// Claves lógicas de almacenamiento.
const (
	KeyProducts    = "inventory_products"
	KeyMovements   = "inventory_movements"
	KeyCategories  = "inventory_categories"
	KeyUsers       = "inventory_users"
	KeyCurrentUser = "inventory_current_user"
	KeySettings    = "inventory_settings"
)

// AllKeys todas las claves que usa el sistema.
var AllKeys = []string{KeyProducts, KeyMovements, KeyCategories, KeyUsers, KeyCurrentUser, KeySettings}

// ErrKeyNotFound lo devuelve Store.Get cuando la clave no existe.
var ErrKeyNotFound = errors.New("storage: clave no encontrada")

// Store contrato clave-valor consumido por el núcleo. Los valores son JSON.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// TxStore Store con soporte de transacción: fn recibe un Store atado a la transacción;
// si fn devuelve error nada de lo escrito se conserva.
type TxStore interface {
	Store
	InTx(ctx context.Context, fn func(tx Store) error) error
}

// Clear elimina todas las claves del sistema.
func Clear(ctx context.Context, s Store) error {
	for _, k := range AllKeys {
		if err := s.Delete(ctx, k); err != nil {
			return err
		}
	}
	return nil
}
