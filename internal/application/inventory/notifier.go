package inventory

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
)

var _ LowStockNotifier = (*LogNotifier)(nil)

// LogNotifier publica el aviso de stock bajo como un warning estructurado.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier usa el logger global si no se pasa uno.
func NewLogNotifier(logger *zerolog.Logger) *LogNotifier {
	if logger == nil {
		return &LogNotifier{logger: log.Logger}
	}
	return &LogNotifier{logger: *logger}
}

func (n *LogNotifier) NotifyLowStock(_ context.Context, product *entity.Product, newStock int) {
	n.logger.Warn().
		Str("product_id", product.ID).
		Str("code", product.Code).
		Str("name", product.Name).
		Int("stock", newStock).
		Int("min_stock", product.MinStock).
		Msg("stock bajo")
}
