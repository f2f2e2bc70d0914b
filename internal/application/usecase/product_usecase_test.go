package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/application/inventory"
	"github.com/jhoicas/sistema-inventarios/internal/application/usecase"
	"github.com/jhoicas/sistema-inventarios/internal/domain"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/storage"
)

var testActor = entity.Actor{ID: "1", Username: "admin", FullName: "Administrador del Sistema", Role: entity.RoleAdmin}

type fakeInitialStock struct {
	calls []string
	err   error
}

func (f *fakeInitialStock) AppendInitialStock(_ context.Context, _ repository.MovementRepository, _ entity.Actor, p *entity.Product) (*entity.Movement, error) {
	f.calls = append(f.calls, p.ID)
	return nil, f.err
}

func newProductUseCase(t *testing.T) (*usecase.ProductUseCase, *storage.MemoryStore, *fakeInitialStock) {
	t.Helper()
	store := storage.NewMemoryStore()
	initial := &fakeInitialStock{}
	uc := usecase.NewProductUseCase(storage.NewProductRepository(store), storage.NewTxRunner(store), initial)
	return uc, store, initial
}

func intPtr(v int) *int { return &v }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func productReq(code, name, category string, price int64, stock, minStock int) dto.ProductRequest {
	return dto.ProductRequest{
		Code:     code,
		Name:     name,
		Category: category,
		Price:    decPtr(price),
		Stock:    intPtr(stock),
		MinStock: intPtr(minStock),
	}
}

// Escenario A: stock 5 con mínimo 5 queda en "Stock Bajo".
func TestProductUseCase_Create_StockBajo(t *testing.T) {
	uc, _, initial := newProductUseCase(t)
	ctx := context.Background()

	p, err := uc.Create(ctx, testActor, productReq("PROD-010", "Widget", "Otros", 1000, 5, 5))
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 5, p.Stock)
	assert.Equal(t, "Stock Bajo", p.Status.Text)
	assert.Equal(t, "warning", p.Status.Class)
	assert.Equal(t, []string{p.ID}, initial.calls, "stock positivo registra movimiento inicial")
}

func TestProductUseCase_Create_SinStockNoRegistraMovimientoInicial(t *testing.T) {
	uc, _, initial := newProductUseCase(t)

	p, err := uc.Create(context.Background(), testActor, productReq("PROD-011", "Vacío", "Otros", 10, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, "Sin Stock", p.Status.Text)
	assert.Empty(t, initial.calls)
}

func TestProductUseCase_Create_FalloMovimientoInicialRevierteProducto(t *testing.T) {
	uc, _, initial := newProductUseCase(t)
	initial.err = errors.New("libro no disponible")
	ctx := context.Background()

	_, err := uc.Create(ctx, testActor, productReq("PROD-012", "X", "Otros", 10, 4, 3))
	require.Error(t, err)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "sin movimiento inicial no queda el producto")

	_, err = uc.Create(ctx, testActor, productReq("PROD-012", "X", "Otros", 10, 0, 3))
	require.NoError(t, err, "el código sigue libre")
}

func TestProductUseCase_Create_MovimientoInicialEnElLibro(t *testing.T) {
	store := storage.NewMemoryStore()
	products := storage.NewProductRepository(store)
	moves := storage.NewMovementRepository(store)
	tx := storage.NewTxRunner(store)
	uc := usecase.NewProductUseCase(products, tx, inventory.NewMovementUseCase(tx, products, moves, nil))
	ctx := context.Background()

	p, err := uc.Create(ctx, testActor, productReq("PROD-013", "Y", "Otros", 10, 6, 2))
	require.NoError(t, err)

	history, err := moves.ListByProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entity.ReasonInitialStock, history[0].Reason)
	assert.Equal(t, 0, history[0].PreviousStock)
	assert.Equal(t, 6, history[0].NewStock)
	assert.Equal(t, testActor.FullName, history[0].UserName)

	got, err := uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Stock, "el stock no se suma dos veces")
}

// Escenario E: el segundo producto con el mismo código falla y solo queda uno.
func TestProductUseCase_Create_CodigoDuplicado(t *testing.T) {
	uc, _, _ := newProductUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, testActor, productReq("PROD-020", "Uno", "Otros", 10, 1, 1))
	require.NoError(t, err)
	_, err = uc.Create(ctx, testActor, productReq("PROD-020", "Dos", "Otros", 20, 2, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)
	assert.Equal(t, domain.MsgDuplicateCode, domain.Message(err))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Uno", list[0].Name)
}

func TestProductUseCase_Validate_AgrupaTodosLosErrores(t *testing.T) {
	uc, _, _ := newProductUseCase(t)

	res := uc.Validate(dto.ProductRequest{Price: decPtr(0), Stock: intPtr(-1), MinStock: intPtr(0)})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{
		"El código es requerido",
		"El nombre es requerido",
		"La categoría es requerida",
		"El precio debe ser un número positivo",
		"El stock debe ser un número mayor o igual a cero",
		"El stock mínimo debe ser un número positivo",
	}, res.Errors)

	_, err := uc.Create(context.Background(), testActor, dto.ProductRequest{Code: "X", Name: "Y", Category: "Z"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t,
		"El precio debe ser un número positivo, El stock debe ser un número mayor o igual a cero, El stock mínimo debe ser un número positivo",
		domain.Message(err))
}

// Escenario F: editar el stock por esta vía no cambia el stock guardado.
func TestProductUseCase_Edit_IgnoraStock(t *testing.T) {
	uc, _, _ := newProductUseCase(t)
	ctx := context.Background()

	p, err := uc.Create(ctx, testActor, productReq("PROD-030", "Original", "Otros", 100, 7, 2))
	require.NoError(t, err)

	edit := productReq("PROD-030", "Editado", "Bebidas", 150, 999, 3)
	out, err := uc.Edit(ctx, p.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, 7, out.Stock)
	assert.Equal(t, "Editado", out.Name)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(150)))
	assert.False(t, out.UpdatedAt.Before(p.UpdatedAt))

	got, err := uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Stock)
	assert.Equal(t, "Bebidas", got.Category)
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt), "la fecha de creación se conserva")
}

func TestProductUseCase_Edit_SinStockEnEntradaUsaElActual(t *testing.T) {
	uc, _, _ := newProductUseCase(t)
	ctx := context.Background()

	p, err := uc.Create(ctx, testActor, productReq("PROD-031", "A", "Otros", 100, 3, 2))
	require.NoError(t, err)

	edit := productReq("PROD-031", "B", "Otros", 100, 0, 2)
	edit.Stock = nil
	out, err := uc.Edit(ctx, p.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Stock)
}

func TestProductUseCase_Edit_Errores(t *testing.T) {
	uc, _, _ := newProductUseCase(t)
	ctx := context.Background()

	a, err := uc.Create(ctx, testActor, productReq("PROD-040", "A", "Otros", 10, 1, 1))
	require.NoError(t, err)
	_, err = uc.Create(ctx, testActor, productReq("PROD-041", "B", "Otros", 10, 1, 1))
	require.NoError(t, err)

	_, err = uc.Edit(ctx, "no-existe", productReq("PROD-099", "Z", "Otros", 10, 1, 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.MsgProductNotFound, domain.Message(err))

	_, err = uc.Edit(ctx, a.ID, productReq("PROD-041", "A", "Otros", 10, 1, 1))
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)
	assert.Equal(t, domain.MsgDuplicateCodeOther, domain.Message(err))

	_, err = uc.Edit(ctx, a.ID, productReq("PROD-040", "", "Otros", 10, 1, 1))
	assert.ErrorIs(t, err, domain.ErrValidation)

	// El propio código no cuenta como duplicado.
	_, err = uc.Edit(ctx, a.ID, productReq("PROD-040", "A2", "Otros", 10, 1, 1))
	assert.NoError(t, err)
}

func TestProductUseCase_Remove(t *testing.T) {
	uc, store, _ := newProductUseCase(t)
	ctx := context.Background()

	p, err := uc.Create(ctx, testActor, productReq("PROD-050", "A", "Otros", 10, 1, 1))
	require.NoError(t, err)

	// Con historial también se elimina.
	movement := &entity.Movement{ID: "m1", ProductID: p.ID, Type: entity.MovementTypeEntrada, Quantity: 1, NewStock: 1}
	require.NoError(t, storage.NewMovementRepository(store).Append(ctx, movement))

	require.NoError(t, uc.Remove(ctx, p.ID))
	_, err = uc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Remove(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	history, err := storage.NewMovementRepository(store).ListByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1, "el historial se conserva")
}

func seedCatalog(t *testing.T, uc *usecase.ProductUseCase) {
	t.Helper()
	ctx := context.Background()
	for _, in := range []dto.ProductRequest{
		productReq("CAF-001", "Café de Colombia", "Alimentos", 25000, 30, 10),     // alto
		productReq("LAP-001", "Laptop", "Electrónicos", 2500000, 5, 10),           // bajo
		productReq("MOU-001", "mouse inalámbrico", "Electrónicos", 50000, 12, 10), // normal
		productReq("AGU-001", "Agua", "Bebidas", 2000, 0, 5),                      // sin stock
	} {
		_, err := uc.Create(ctx, testActor, in)
		require.NoError(t, err)
	}
}

func TestProductUseCase_Search_SinAcentosNiMayusculas(t *testing.T) {
	uc, _, _ := newProductUseCase(t)
	seedCatalog(t, uc)
	ctx := context.Background()

	got, err := uc.Search(ctx, "CAFE")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "CAF-001", got[0].Code)

	got, err = uc.Search(ctx, "electronicos")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = uc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestProductUseCase_Filtros(t *testing.T) {
	uc, _, _ := newProductUseCase(t)
	seedCatalog(t, uc)
	ctx := context.Background()

	tests := []struct {
		name    string
		filters dto.ProductFilters
		codes   []string
	}{
		{"categoria", dto.ProductFilters{Category: "Electrónicos"}, []string{"LAP-001", "MOU-001"}},
		{"bajo incluye sin stock", dto.ProductFilters{StockLevel: "bajo"}, []string{"LAP-001", "AGU-001"}},
		{"normal", dto.ProductFilters{StockLevel: "normal"}, []string{"MOU-001"}},
		{"alto", dto.ProductFilters{StockLevel: "alto"}, []string{"CAF-001"}},
		{"combinados", dto.ProductFilters{Search: "o", Category: "Electrónicos", StockLevel: "bajo"}, []string{"LAP-001"}},
		{"orden por precio desc", dto.ProductFilters{SortField: "price", SortDir: "desc"}, []string{"LAP-001", "MOU-001", "CAF-001", "AGU-001"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.ApplyFilters(ctx, tt.filters)
			require.NoError(t, err)
			codes := make([]string, 0, len(got))
			for _, p := range got {
				codes = append(codes, p.Code)
			}
			assert.Equal(t, tt.codes, codes)
		})
	}

	bajo, err := uc.FilterByStockLevel(ctx, "bajo")
	require.NoError(t, err)
	assert.Len(t, bajo, 2)
	electro, err := uc.FilterByCategory(ctx, "Electrónicos")
	require.NoError(t, err)
	assert.Len(t, electro, 2)
}

func TestSortProducts_EstableYSinMayusculas(t *testing.T) {
	products := []*entity.Product{
		{ID: "1", Name: "beta", Stock: 2},
		{ID: "2", Name: "Alfa", Stock: 1},
		{ID: "3", Name: "alfa", Stock: 3},
	}

	asc := usecase.SortProducts(products, "name", "asc")
	assert.Equal(t, []string{"2", "3", "1"}, ids(asc), "empates conservan el orden original")

	desc := usecase.SortProducts(products, "stock", "desc")
	assert.Equal(t, []string{"3", "1", "2"}, ids(desc))

	same := usecase.SortProducts(products, "desconocido", "asc")
	assert.Equal(t, []string{"1", "2", "3"}, ids(same))
	assert.Equal(t, "1", products[0].ID, "no modifica la entrada")
}

func ids(list []*entity.Product) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestProductUseCase_Summary(t *testing.T) {
	uc, _, _ := newProductUseCase(t)
	seedCatalog(t, uc)

	sum, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 47, sum.TotalStock)
	// 30×25000 + 5×2500000 + 12×50000 + 0
	assert.True(t, sum.TotalValue.Equal(decimal.NewFromInt(13850000)), sum.TotalValue.String())
	assert.Equal(t, 2, sum.LowStock)
	assert.Equal(t, 1, sum.OutOfStock)
	assert.Equal(t, 3, sum.Categories)
}
