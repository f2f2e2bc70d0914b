package inventory_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/application/inventory"
	"github.com/jhoicas/sistema-inventarios/internal/domain"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	stock "github.com/jhoicas/sistema-inventarios/internal/domain/inventory"
	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/storage"
)

var empleado = entity.Actor{ID: "2", Username: "empleado", FullName: "Usuario Empleado", Role: entity.RoleEmpleado}

type recordingNotifier struct {
	products []string
	stocks   []int
}

func (n *recordingNotifier) NotifyLowStock(_ context.Context, p *entity.Product, newStock int) {
	n.products = append(n.products, p.ID)
	n.stocks = append(n.stocks, newStock)
}

type ledgerFixture struct {
	store    *storage.MemoryStore
	uc       *inventory.MovementUseCase
	products *storage.ProductRepo
	moves    *storage.MovementRepo
	notifier *recordingNotifier
}

func newLedger(t *testing.T) *ledgerFixture {
	t.Helper()
	store := storage.NewMemoryStore()
	f := &ledgerFixture{
		store:    store,
		products: storage.NewProductRepository(store),
		moves:    storage.NewMovementRepository(store),
		notifier: &recordingNotifier{},
	}
	f.uc = inventory.NewMovementUseCase(storage.NewTxRunner(store), f.products, f.moves, f.notifier)
	return f
}

func (f *ledgerFixture) addProduct(t *testing.T, id string, stockQty, minStock int) *entity.Product {
	t.Helper()
	p, err := entity.NewProduct(id, "COD-"+id, "Producto "+id, "", "Otros", decimal.NewFromInt(1000), stockQty, minStock, time.Now())
	require.NoError(t, err)
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func (f *ledgerFixture) stockOf(t *testing.T, id string) int {
	t.Helper()
	p, err := f.products.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func (f *ledgerFixture) ledger(t *testing.T) []*entity.Movement {
	t.Helper()
	list, err := f.moves.List(context.Background())
	require.NoError(t, err)
	return list
}

func req(productID, movType string, qty int, reason string) dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{ProductID: productID, Type: movType, Quantity: &qty, Reason: reason}
}

// Escenario B: salida mayor al stock se rechaza sin escribir nada.
func TestRegister_SalidaMayorAlStock(t *testing.T) {
	f := newLedger(t)
	f.addProduct(t, "p1", 5, 2)

	res, err := f.uc.Register(context.Background(), empleado, req("p1", entity.MovementTypeSalida, 10, "Venta"))
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrNegativeStock)
	assert.Contains(t, domain.Message(err), "Disponible: 5 unidades")

	assert.Equal(t, 5, f.stockOf(t, "p1"))
	assert.Empty(t, f.ledger(t))
}

// Escenario C: entrada de 20 sobre stock 5 deja 25 y nivel alto.
func TestRegister_EntradaStockAlto(t *testing.T) {
	f := newLedger(t)
	f.addProduct(t, "p1", 5, 10)

	res, err := f.uc.Register(context.Background(), empleado, req("p1", entity.MovementTypeEntrada, 20, "Compra"))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, inventory.MsgEntryRegistered, res.Message)
	assert.False(t, res.LowStock)

	require.NotNil(t, res.Movement)
	assert.Equal(t, 20, res.Movement.Quantity)
	assert.Equal(t, 5, res.Movement.PreviousStock)
	assert.Equal(t, 25, res.Movement.NewStock)
	assert.Equal(t, "Usuario Empleado", res.Movement.UserName)
	assert.Equal(t, "COD-p1", res.Movement.ProductCode)

	assert.Equal(t, 25, f.stockOf(t, "p1"))
	assert.Equal(t, "Stock Alto", stock.ClassifyStock(25, 10).Text)
}

func TestRegister_SalidaConAvisoDeStockBajo(t *testing.T) {
	f := newLedger(t)
	f.addProduct(t, "p1", 12, 10)

	res, err := f.uc.Register(context.Background(), empleado, req("p1", entity.MovementTypeSalida, 3, "Venta"))
	require.NoError(t, err)
	assert.Equal(t, inventory.MsgExitRegistered, res.Message)
	assert.Equal(t, -3, res.Movement.Quantity)
	assert.True(t, res.LowStock)
	assert.Equal(t, "Alerta: Producto p1 ahora tiene stock bajo (9 unidades)", res.Alert)
	assert.Equal(t, []string{"p1"}, f.notifier.products)
	assert.Equal(t, []int{9}, f.notifier.stocks)
}

func TestRegister_EntradaNoAvisaStockBajo(t *testing.T) {
	f := newLedger(t)
	f.addProduct(t, "p1", 1, 10)

	res, err := f.uc.Register(context.Background(), empleado, req("p1", entity.MovementTypeEntrada, 2, "Compra"))
	require.NoError(t, err)
	assert.False(t, res.LowStock)
	assert.Empty(t, f.notifier.products)
}

func TestRegister_ValidacionAgrupada(t *testing.T) {
	f := newLedger(t)

	_, err := f.uc.Register(context.Background(), empleado, dto.RegisterMovementRequest{Type: "traslado"})
	require.Error(t, err)
	assert.Equal(t, strings.Join([]string{
		inventory.MsgProductRequired,
		inventory.MsgInvalidType,
		inventory.MsgInvalidQuantity,
		inventory.MsgReasonRequired,
	}, ", "), domain.Message(err))

	res, err := f.uc.Validate(context.Background(), req("no-existe", entity.MovementTypeEntrada, 1, "Compra"))
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{inventory.MsgProductMissing}, res.Errors)

	zero := 0
	res, err = f.uc.Validate(context.Background(), dto.RegisterMovementRequest{ProductID: "x", Type: entity.MovementTypeSalida, Quantity: &zero, Reason: "Venta"})
	require.NoError(t, err)
	assert.Contains(t, res.Errors, inventory.MsgInvalidQuantity)
}

func TestRegisterEntryExit_FuerzanTipo(t *testing.T) {
	f := newLedger(t)
	f.addProduct(t, "p1", 5, 1)
	ctx := context.Background()

	res, err := f.uc.RegisterEntry(ctx, empleado, req("p1", entity.MovementTypeSalida, 2, "Compra"))
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeEntrada, res.Movement.Type)

	res, err = f.uc.RegisterExit(ctx, empleado, req("p1", "", 4, "Venta"))
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeSalida, res.Movement.Type)
	assert.Equal(t, 3, f.stockOf(t, "p1"))
}

// Conservación: stock final = inicial + Σ cantidades con signo; los rechazos no cuentan.
func TestRegister_ConservacionEInvariantes(t *testing.T) {
	f := newLedger(t)
	f.addProduct(t, "p1", 10, 3)
	ctx := context.Background()

	steps := []struct {
		movType string
		qty     int
		ok      bool
	}{
		{entity.MovementTypeSalida, 4, true},
		{entity.MovementTypeEntrada, 7, true},
		{entity.MovementTypeSalida, 20, false},
		{entity.MovementTypeSalida, 13, true},
		{entity.MovementTypeSalida, 1, false},
		{entity.MovementTypeEntrada, 2, true},
	}
	for _, s := range steps {
		_, err := f.uc.Register(ctx, empleado, req("p1", s.movType, s.qty, "Ajuste de inventario"))
		if s.ok {
			require.NoError(t, err)
		} else {
			require.Error(t, err)
		}
	}

	ledger := f.ledger(t)
	require.Len(t, ledger, 4)
	sum := 0
	prev := 10
	for _, m := range ledger {
		assert.Equal(t, m.PreviousStock+m.Quantity, m.NewStock)
		assert.GreaterOrEqual(t, m.NewStock, 0)
		assert.Equal(t, prev, m.PreviousStock, "cada movimiento parte del stock del anterior")
		prev = m.NewStock
		sum += m.Quantity
	}
	assert.Equal(t, 10+sum, f.stockOf(t, "p1"))
	assert.Equal(t, 2, f.stockOf(t, "p1"))
}

func TestRegister_AppendOnly(t *testing.T) {
	f := newLedger(t)
	f.addProduct(t, "p1", 10, 3)
	ctx := context.Background()

	_, err := f.uc.Register(ctx, empleado, req("p1", entity.MovementTypeSalida, 1, "Venta"))
	require.NoError(t, err)
	first := *f.ledger(t)[0]

	_, err = f.uc.Register(ctx, empleado, req("p1", entity.MovementTypeEntrada, 5, "Compra"))
	require.NoError(t, err)

	ledger := f.ledger(t)
	require.Len(t, ledger, 2)
	assert.Equal(t, first.ID, ledger[0].ID)
	assert.Equal(t, first.Quantity, ledger[0].Quantity)
	assert.Equal(t, first.NewStock, ledger[0].NewStock)
	assert.True(t, first.CreatedAt.Equal(ledger[0].CreatedAt))
}

// CanPerform y Register usan la misma regla: para toda cantidad coinciden.
func TestCanPerform_ConsistenteConRegister(t *testing.T) {
	for qty := 1; qty <= 8; qty++ {
		for _, movType := range []string{entity.MovementTypeEntrada, entity.MovementTypeSalida} {
			f := newLedger(t)
			f.addProduct(t, "p1", 5, 1)
			ctx := context.Background()

			check, err := f.uc.CanPerform(ctx, "p1", movType, qty)
			require.NoError(t, err)
			_, regErr := f.uc.Register(ctx, empleado, req("p1", movType, qty, "Ajuste de inventario"))

			assert.Equal(t, check.CanMove, regErr == nil, "tipo %s cantidad %d", movType, qty)
			if !check.CanMove {
				assert.Equal(t, "Stock insuficiente. Disponible: 5 unidades", check.Message)
			}
		}
	}
}

func TestCanPerform_ProductoInexistente(t *testing.T) {
	f := newLedger(t)
	res, err := f.uc.CanPerform(context.Background(), "nada", entity.MovementTypeEntrada, 1)
	require.NoError(t, err)
	assert.False(t, res.CanMove)
	assert.Equal(t, domain.MsgProductNotFound, res.Message)
}

func TestRegisterInitialStock(t *testing.T) {
	f := newLedger(t)
	p := f.addProduct(t, "p1", 8, 2)
	ctx := context.Background()

	m, err := f.uc.RegisterInitialStock(ctx, empleado, p)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, entity.ReasonInitialStock, m.Reason)
	assert.Equal(t, entity.MovementTypeEntrada, m.Type)
	assert.Equal(t, 0, m.PreviousStock)
	assert.Equal(t, 8, m.NewStock)
	assert.Equal(t, 8, m.Quantity)
	assert.Equal(t, 8, f.stockOf(t, "p1"), "no suma el stock dos veces")

	again, err := f.uc.RegisterInitialStock(ctx, empleado, p)
	require.NoError(t, err)
	assert.Nil(t, again)
	assert.Len(t, f.ledger(t), 1)

	empty := f.addProduct(t, "p2", 0, 2)
	none, err := f.uc.RegisterInitialStock(ctx, empleado, empty)
	require.NoError(t, err)
	assert.Nil(t, none)
}
