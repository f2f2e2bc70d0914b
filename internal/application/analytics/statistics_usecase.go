// Package analytics agrega el estado del inventario para el panel y las estadísticas.
// Es solo lectura: cada llamada vuelve a leer las colecciones vivas, sin caché.
package analytics

import (
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/domain"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/inventory"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
)

// StatisticsUseCase agregaciones sobre productos y movimientos.
type StatisticsUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	clock       func() time.Time
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository) *StatisticsUseCase {
	return &StatisticsUseCase{productRepo: productRepo, movRepo: movRepo, clock: time.Now}
}

// snapshot lee productos y movimientos en paralelo.
func (uc *StatisticsUseCase) snapshot(ctx context.Context) ([]*entity.Product, []*entity.Movement, error) {
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type movementsResult struct {
		list []*entity.Movement
		err  error
	}
	productsCh := make(chan productsResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		list, err := uc.productRepo.List(ctx)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.movRepo.List(ctx)
		movementsCh <- movementsResult{list, err}
	}()

	products := <-productsCh
	movements := <-movementsCh
	if products.err != nil {
		return nil, nil, products.err
	}
	if movements.err != nil {
		return nil, nil, movements.err
	}
	return products.list, movements.list, nil
}

// InventoryStats KPIs: productos, stock, valor, bajos, agotados, movimientos de hoy y totales.
func (uc *StatisticsUseCase) InventoryStats(ctx context.Context) (*dto.InventoryStatsDTO, error) {
	products, movements, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	s := computeStats(products, movements, uc.clock())
	return &s, nil
}

func computeStats(products []*entity.Product, movements []*entity.Movement, now time.Time) dto.InventoryStatsDTO {
	s := dto.InventoryStatsDTO{
		TotalProducts:  len(products),
		TotalValue:     decimal.Zero,
		TotalMovements: len(movements),
	}
	for _, p := range products {
		s.TotalStock += p.Stock
		s.TotalValue = s.TotalValue.Add(p.StockValue())
		if p.IsLowStock() {
			s.LowStockCount++
		}
		if p.Stock == 0 {
			s.OutOfStockCount++
		}
	}
	y, m, d := now.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	for _, mv := range movements {
		if !mv.CreatedAt.Before(dayStart) && mv.CreatedAt.Before(dayEnd) {
			s.TodayMovements++
		}
	}
	return s
}

// LowStockProducts productos con stock <= mínimo, el más crítico primero.
func (uc *StatisticsUseCase) LowStockProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromProducts(lowStock(products)), nil
}

func lowStock(products []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.Product) int { return a.Stock - b.Stock })
	return out
}

// TopMovedProducts los n productos con más unidades movidas. Los movimientos de productos
// eliminados se descartan.
func (uc *StatisticsUseCase) TopMovedProducts(ctx context.Context, n int) ([]dto.TopProductDTO, error) {
	if n <= 0 {
		n = 5
	}
	products, movements, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	byID := indexProducts(products)

	totals := make(map[string]*dto.TopProductDTO)
	order := make([]string, 0)
	for _, m := range movements {
		p, ok := byID[m.ProductID]
		if !ok {
			continue
		}
		t, seen := totals[m.ProductID]
		if !seen {
			t = &dto.TopProductDTO{ProductID: p.ID, Code: p.Code, Name: p.Name, Category: p.Category, Stock: p.Stock}
			totals[m.ProductID] = t
			order = append(order, m.ProductID)
		}
		t.TotalMoved += m.Units()
		t.Movements++
	}

	out := make([]dto.TopProductDTO, 0, len(order))
	for _, id := range order {
		out = append(out, *totals[id])
	}
	slices.SortStableFunc(out, func(a, b dto.TopProductDTO) int { return b.TotalMoved - a.TotalMoved })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// UserActivity movimientos por usuario, el más activo primero.
func (uc *StatisticsUseCase) UserActivity(ctx context.Context) ([]dto.UserActivityDTO, error) {
	movements, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byUser := make(map[string]*dto.UserActivityDTO)
	order := make([]string, 0)
	for _, m := range movements {
		a, ok := byUser[m.UserID]
		if !ok {
			a = &dto.UserActivityDTO{UserID: m.UserID, UserName: m.UserName}
			byUser[m.UserID] = a
			order = append(order, m.UserID)
		}
		a.TotalMovements++
		if m.Type == entity.MovementTypeEntrada {
			a.Entradas++
		} else {
			a.Salidas++
		}
	}
	out := make([]dto.UserActivityDTO, 0, len(order))
	for _, id := range order {
		out = append(out, *byUser[id])
	}
	slices.SortStableFunc(out, func(a, b dto.UserActivityDTO) int { return b.TotalMovements - a.TotalMovements })
	return out, nil
}

// ProductStatistics entradas, salidas, cantidad de movimientos, valor y estado de un producto.
func (uc *StatisticsUseCase) ProductStatistics(ctx context.Context, productID string) (*dto.ProductStatisticsDTO, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewError(domain.ErrNotFound, domain.MsgProductNotFound)
	}
	movements, err := uc.movRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductStatisticsDTO{
		Product:        dto.FromProduct(product),
		TotalMovements: len(movements),
		StockValue:     product.StockValue(),
		Status:         inventory.ClassifyStock(product.Stock, product.MinStock),
		NeedsRestock:   product.IsLowStock(),
	}
	for _, m := range movements {
		if m.Type == entity.MovementTypeEntrada {
			out.TotalEntradas += m.Units()
		} else {
			out.TotalSalidas += m.Units()
		}
	}
	return out, nil
}

// CategoryDistribution productos por categoría con su porcentaje, de mayor a menor.
func (uc *StatisticsUseCase) CategoryDistribution(ctx context.Context) ([]dto.CategoryShareDTO, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, p := range products {
		if _, ok := counts[p.Category]; !ok {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}
	total := decimal.NewFromInt(int64(len(products)))
	hundred := decimal.NewFromInt(100)
	out := make([]dto.CategoryShareDTO, 0, len(order))
	for _, c := range order {
		pct := decimal.NewFromInt(int64(counts[c])).Mul(hundred).Div(total).Round(1)
		out = append(out, dto.CategoryShareDTO{Category: c, Count: counts[c], Percentage: pct})
	}
	slices.SortStableFunc(out, func(a, b dto.CategoryShareDTO) int { return b.Count - a.Count })
	return out, nil
}

func indexProducts(products []*entity.Product) map[string]*entity.Product {
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}
