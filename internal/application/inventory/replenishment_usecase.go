package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
)

// replenishmentWindow ventana de salidas usada para priorizar.
const replenishmentWindow = 90 * 24 * time.Hour

// ReplenishmentUseCase arma la lista de reposición: productos en o bajo su stock mínimo,
// con la cantidad que los lleva al 150% del mínimo (tope del nivel normal).
type ReplenishmentUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	clock       func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{productRepo: productRepo, movRepo: movRepo, clock: time.Now}
}

// IdealStock 150% del mínimo, redondeado hacia abajo para no pasar a nivel alto.
func IdealStock(minStock int) int {
	return minStock * 3 / 2
}

// Suggestions devuelve las sugerencias ordenadas por prioridad (1 = más urgente):
// primero los agotados, luego mayor volumen de salidas en 90 días, por último mayor déficit.
func (uc *ReplenishmentUseCase) Suggestions(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	since := uc.clock().Add(-replenishmentWindow)
	unitsOut := make(map[string]int)
	for _, m := range movements {
		if m.Type == entity.MovementTypeSalida && !m.CreatedAt.Before(since) {
			unitsOut[m.ProductID] += m.Units()
		}
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, p := range products {
		if !p.IsLowStock() {
			continue
		}
		ideal := IdealStock(p.MinStock)
		qty := ideal - p.Stock
		if qty < 0 {
			qty = 0
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:           p.ID,
			Code:                p.Code,
			ProductName:         p.Name,
			CurrentStock:        p.Stock,
			MinStock:            p.MinStock,
			IdealStock:          ideal,
			SuggestedOrderQty:   qty,
			UnitPrice:           p.Price,
			EstimatedOrderValue: p.Price.Mul(decimal.NewFromInt(int64(qty))),
			UnitsOutLast90Days:  unitsOut[p.ID],
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if (a.CurrentStock == 0) != (b.CurrentStock == 0) {
			return a.CurrentStock == 0
		}
		if a.UnitsOutLast90Days != b.UnitsOutLast90Days {
			return a.UnitsOutLast90Days > b.UnitsOutLast90Days
		}
		return a.MinStock-a.CurrentStock > b.MinStock-b.CurrentStock
	})
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
