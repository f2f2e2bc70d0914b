package inventory

import (
	"context"

	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacenamiento, pasando
// repositorios atados a esa transacción. Si fn devuelve error no se persiste nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error) error
}

// LowStockNotifier recibe el aviso de stock bajo tras una salida. Es informativo:
// el registro ya se confirmó cuando se invoca.
type LowStockNotifier interface {
	NotifyLowStock(ctx context.Context, product *entity.Product, newStock int)
}
