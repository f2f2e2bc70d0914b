package storage

import (
	"context"

	"github.com/jhoicas/sistema-inventarios/internal/application/inventory"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción del TxStore.
type TxRunner struct {
	store TxStore
}

// NewTxRunner construye el runner con el store.
func NewTxRunner(store TxStore) *TxRunner {
	return &TxRunner{store: store}
}

// Run abre la transacción, ejecuta fn con repos atados a ella y confirma solo si fn no falla.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) error) error {
	return r.store.InTx(ctx, func(tx Store) error {
		return fn(NewProductRepository(tx), NewMovementRepository(tx))
	})
}
