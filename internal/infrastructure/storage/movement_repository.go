package storage

import (
	"context"

	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos sobre inventory_movements. Solo agrega.
type MovementRepo struct {
	s Store
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(s Store) *MovementRepo {
	return &MovementRepo{s: s}
}

func (r *MovementRepo) load(ctx context.Context) ([]*entity.Movement, error) {
	var list []*entity.Movement
	if _, err := Load(ctx, r.s, KeyMovements, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Append agrega el movimiento al final del libro.
func (r *MovementRepo) Append(ctx context.Context, movement *entity.Movement) error {
	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	cp := *movement
	return Save(ctx, r.s, KeyMovements, append(list, &cp))
}

// List devuelve todos los movimientos en orden de registro.
func (r *MovementRepo) List(ctx context.Context) ([]*entity.Movement, error) {
	return r.load(ctx)
}

// ListByProduct devuelve los movimientos de un producto.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Movement, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Movement, 0)
	for _, m := range list {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}
