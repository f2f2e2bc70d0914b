package export

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-inventarios/internal/application/analytics"
	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/storage"
)

var created = time.Date(2026, 2, 3, 9, 5, 0, 0, time.Local)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$ 2.500.000", FormatCurrency(decimal.NewFromInt(2500000)))
	assert.Equal(t, "$ 45.000", FormatCurrency(decimal.NewFromInt(45000)))
	assert.Equal(t, "$ 0", FormatCurrency(decimal.Zero))
	assert.Equal(t, "$ 12.001", FormatCurrency(decimal.RequireFromString("12000.6")))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "03/02/2026", FormatDate(created, false))
	assert.Equal(t, "03/02/2026 09:05", FormatDate(created, true))
	assert.Empty(t, FormatDate(time.Time{}, true))
	assert.Equal(t, "productos_03-02-2026.csv", Filename("productos", "csv", created))
}

func TestPrepareProductsForExport(t *testing.T) {
	p, err := entity.NewProduct("1", "PROD-001", "Laptop", "", "Electrónicos", decimal.NewFromInt(2500000), 15, 5, created)
	require.NoError(t, err)

	rows := PrepareProductsForExport([]*entity.Product{p})
	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"Código", "Nombre", "Categoría", "Precio", "Stock",
		"Stock Mínimo", "Estado", "Valor en Stock", "Creado",
	}, rows[0].Keys())
	assert.Equal(t, []string{
		"PROD-001", "Laptop", "Electrónicos", "$ 2.500.000", "15",
		"5", "Stock Alto", "$ 37.500.000", "03/02/2026",
	}, rows[0].Values())
}

func TestPrepareMovementsForExport(t *testing.T) {
	m := &entity.Movement{
		ID: "m1", ProductID: "1", ProductCode: "PROD-001", ProductName: "Laptop",
		Type: entity.MovementTypeSalida, Quantity: -3, Reason: "Venta",
		PreviousStock: 15, NewStock: 12, UserName: "Usuario Empleado", CreatedAt: created,
	}
	rows := PrepareMovementsForExport([]*entity.Movement{m})
	require.Len(t, rows, 1)
	r := rows[0]
	assert.Equal(t, "Fecha/Hora", r[0].Key)
	assert.Equal(t, "03/02/2026 09:05", r.Get("Fecha/Hora"))
	assert.Equal(t, "Salida", r.Get("Tipo"))
	assert.Equal(t, "3", r.Get("Cantidad"))
	assert.Equal(t, "", r.Get("Notas"))
	assert.Equal(t, "15", r.Get("Stock Anterior"))
	assert.Equal(t, "12", r.Get("Stock Nuevo"))
	assert.Len(t, r, 10)
}

func TestPrepareStatsReport(t *testing.T) {
	rows := PrepareStatsReport(dto.InventoryStatsDTO{
		TotalProducts:   5,
		TotalStock:      176,
		TotalValue:      decimal.NewFromInt(43535000),
		LowStockCount:   1,
		OutOfStockCount: 0,
		TodayMovements:  2,
		TotalMovements:  9,
	}, created)

	require.Len(t, rows, 8)
	for _, r := range rows {
		assert.Equal(t, []string{"Indicador", "Valor"}, r.Keys())
	}
	assert.Equal(t, []string{"Fecha del Reporte", "03/02/2026 09:05"}, rows[0].Values())
	assert.Equal(t, []string{"Valor Total del Inventario", "$ 43.535.000"}, rows[3].Values())
	assert.Equal(t, []string{"Movimientos Hoy", "2"}, rows[7].Values())
}

type fakeRenderer struct {
	got *ReportData
	err error
}

func (f *fakeRenderer) RenderInventoryReport(_ context.Context, data *ReportData) ([]byte, error) {
	f.got = data
	return []byte("%PDF"), f.err
}

func newUseCase(t *testing.T, renderer ReportRenderer) (*UseCase, *storage.MovementRepo) {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemoryStore()
	products := storage.NewProductRepository(store)
	moves := storage.NewMovementRepository(store)
	settings := storage.NewSettingsRepository(store)
	require.NoError(t, settings.Save(ctx, entity.Settings{CompanyName: "Ferretería Central", LowStockThreshold: 10}))

	for _, p := range []struct {
		id, category string
		stock, min   int
	}{{"1", "Oficina", 2, 5}, {"2", "Oficina", 40, 5}} {
		prod, err := entity.NewProduct(p.id, "C-"+p.id, "Producto "+p.id, "", p.category, decimal.NewFromInt(10000), p.stock, p.min, created)
		require.NoError(t, err)
		require.NoError(t, products.Create(ctx, prod))
	}

	stats := analytics.NewStatisticsUseCase(products, moves)
	uc := NewUseCase(products, moves, settings, stats, analytics.NewDashboardUseCase(stats), renderer)
	uc.clock = func() time.Time { return created }
	return uc, moves
}

func TestUseCase_ProductsYMovimientos(t *testing.T) {
	uc, moves := newUseCase(t, nil)
	ctx := context.Background()
	for i, typ := range []string{entity.MovementTypeEntrada, entity.MovementTypeSalida} {
		qty := 1
		if typ == entity.MovementTypeSalida {
			qty = -1
		}
		require.NoError(t, moves.Append(ctx, &entity.Movement{
			ID: string(rune('a' + i)), ProductID: "1", Type: typ, Quantity: qty,
			CreatedAt: created.Add(time.Duration(i) * time.Hour),
		}))
	}

	products, err := uc.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	all, err := uc.Movements(ctx, dto.MovementFilters{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Salida", all[0].Get("Tipo"), "más recientes primero")

	exits, err := uc.Movements(ctx, dto.MovementFilters{Type: entity.MovementTypeEntrada})
	require.NoError(t, err)
	assert.Len(t, exits, 1)

	report, err := uc.StatsReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "03/02/2026 09:05", report[0].Get("Valor"))
	assert.Equal(t, "2", report[1].Get("Valor"))
}

func TestUseCase_ReportPDF(t *testing.T) {
	renderer := &fakeRenderer{}
	uc, _ := newUseCase(t, renderer)

	doc, name, err := uc.ReportPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), doc)
	assert.Contains(t, name, "reporte_inventario_")
	require.NotNil(t, renderer.got)
	assert.Equal(t, "Ferretería Central", renderer.got.CompanyName)
	assert.Equal(t, 2, renderer.got.Stats.TotalProducts)
	require.Len(t, renderer.got.LowStock, 1)
	assert.Equal(t, "1", renderer.got.LowStock[0].ID)
	require.Len(t, renderer.got.Categories, 1)
	assert.Equal(t, "Oficina", renderer.got.Categories[0].Category)

	renderer.err = errors.New("fallo")
	_, _, err = uc.ReportPDF(context.Background())
	assert.Error(t, err)
}

func TestUseCase_ReportPDFSinGenerador(t *testing.T) {
	uc, _ := newUseCase(t, nil)
	_, _, err := uc.ReportPDF(context.Background())
	assert.Error(t, err)
}
