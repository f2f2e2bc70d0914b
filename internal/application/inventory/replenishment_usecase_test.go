package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-inventarios/internal/application/inventory"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
)

func TestIdealStock(t *testing.T) {
	assert.Equal(t, 15, inventory.IdealStock(10))
	assert.Equal(t, 7, inventory.IdealStock(5))
}

func TestReplenishment_Suggestions(t *testing.T) {
	f := newLedger(t)
	f.addProduct(t, "ok", 50, 10)   // no necesita reposición
	f.addProduct(t, "bajo", 12, 10) // quedará en 8 tras la salida
	f.addProduct(t, "cero", 0, 4)
	f.addProduct(t, "quieto", 3, 10)

	f.registerAt(t, fixedNow.AddDate(0, 0, -10), empleado, req("bajo", entity.MovementTypeSalida, 4, "Venta"))

	uc := inventory.NewReplenishmentUseCase(f.products, f.moves)
	inventory.SetReplenishmentClock(uc, at(fixedNow))

	got, err := uc.Suggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "cero", got[0].ProductID, "los agotados van primero")
	assert.Equal(t, 6, got[0].SuggestedOrderQty)

	assert.Equal(t, "bajo", got[1].ProductID, "más salidas recientes")
	assert.Equal(t, 4, got[1].UnitsOutLast90Days)
	assert.Equal(t, 7, got[1].SuggestedOrderQty)
	assert.True(t, got[1].EstimatedOrderValue.Equal(decimal.NewFromInt(7000)))

	assert.Equal(t, "quieto", got[2].ProductID)
	assert.Equal(t, 12, got[2].SuggestedOrderQty)
	for i, s := range got {
		assert.Equal(t, i+1, s.Priority)
	}
}
