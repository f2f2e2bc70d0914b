package repository

import (
	"context"

	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
)

// MovementRepository puerto del libro de movimientos. Solo admite agregar y leer:
// un movimiento guardado nunca se modifica ni se elimina.
type MovementRepository interface {
	Append(ctx context.Context, movement *entity.Movement) error
	List(ctx context.Context) ([]*entity.Movement, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Movement, error)
}
