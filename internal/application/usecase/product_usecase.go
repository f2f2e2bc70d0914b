package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/application/inventory"
	"github.com/jhoicas/sistema-inventarios/internal/domain"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	stock "github.com/jhoicas/sistema-inventarios/internal/domain/inventory"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
	"github.com/jhoicas/sistema-inventarios/pkg/textnorm"
)

// Mensajes de éxito del registro de productos.
const (
	MsgProductCreated = "Producto creado exitosamente"
	MsgProductUpdated = "Producto actualizado exitosamente"
	MsgProductDeleted = "Producto eliminado exitosamente"
)

// InitialStockRecorder deja en el libro el stock con el que nace un producto, dentro de la
// misma transacción que lo crea.
type InitialStockRecorder interface {
	AppendInitialStock(ctx context.Context, movRepo repository.MovementRepository, actor entity.Actor, product *entity.Product) (*entity.Movement, error)
}

// ProductUseCase registro de productos. El stock solo se fija al crear; después cambia
// únicamente a través del libro de movimientos.
type ProductUseCase struct {
	repo    repository.ProductRepository
	tx      inventory.TxRunner
	initial InitialStockRecorder
	clock   func() time.Time
}

// NewProductUseCase construye el caso de uso. initial puede ser nil (sin movimiento de stock inicial).
func NewProductUseCase(repo repository.ProductRepository, tx inventory.TxRunner, initial InitialStockRecorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx, initial: initial, clock: time.Now}
}

// Validate revisa todos los campos y devuelve cada violación encontrada.
func (uc *ProductUseCase) Validate(in dto.ProductRequest) dto.ValidationResult {
	errs := make([]string, 0)
	if strings.TrimSpace(in.Code) == "" {
		errs = append(errs, "El código es requerido")
	}
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "El nombre es requerido")
	}
	if strings.TrimSpace(in.Category) == "" {
		errs = append(errs, "La categoría es requerida")
	}
	if in.Price == nil || !in.Price.IsPositive() {
		errs = append(errs, "El precio debe ser un número positivo")
	}
	if in.Stock == nil || *in.Stock < 0 {
		errs = append(errs, "El stock debe ser un número mayor o igual a cero")
	}
	if in.MinStock == nil || *in.MinStock <= 0 {
		errs = append(errs, "El stock mínimo debe ser un número positivo")
	}
	return dto.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func (uc *ProductUseCase) validate(in dto.ProductRequest) error {
	if res := uc.Validate(in); !res.Valid {
		return &domain.ValidationError{Errors: res.Errors}
	}
	return nil
}

// Create valida y persiste un producto nuevo con el stock dado. Si el stock es positivo
// registra en la misma transacción el movimiento de stock inicial a nombre del actor:
// si ese registro falla tampoco se guarda el producto.
func (uc *ProductUseCase) Create(ctx context.Context, actor entity.Actor, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	product, err := entity.NewProduct(
		uuid.New().String(),
		strings.TrimSpace(in.Code),
		strings.TrimSpace(in.Name),
		strings.TrimSpace(in.Description),
		strings.TrimSpace(in.Category),
		*in.Price, *in.Stock, *in.MinStock,
		uc.clock(),
	)
	if err != nil {
		return nil, &domain.ValidationError{Errors: []string{err.Error()}}
	}

	var initial *entity.Movement
	err = uc.tx.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.MovementRepository) error {
		existing, err := productRepo.GetByCode(ctx, product.Code)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateCode
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if product.Stock > 0 && uc.initial != nil {
			initial, err = uc.initial.AppendInitialStock(ctx, movRepo, actor, product)
			if err != nil {
				return fmt.Errorf("stock inicial: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCode) {
			return nil, domain.NewError(domain.ErrDuplicateCode, domain.MsgDuplicateCode)
		}
		log.Error().Err(err).Str("code", product.Code).Msg("crear producto")
		return nil, err
	}
	ev := log.Info().Str("product_id", product.ID).Str("code", product.Code)
	if initial != nil {
		ev = ev.Int("initial_stock", initial.NewStock)
	}
	ev.Msg("producto creado")

	out := dto.FromProduct(product)
	return &out, nil
}

// Edit actualiza todos los campos salvo el stock, que se conserva del registro guardado.
func (uc *ProductUseCase) Edit(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	var updated *entity.Product
	err := uc.tx.Run(ctx, func(productRepo repository.ProductRepository, _ repository.MovementRepository) error {
		current, err := productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NewError(domain.ErrNotFound, domain.MsgProductNotFound)
		}
		if in.Stock == nil {
			s := current.Stock
			in.Stock = &s
		}
		if err := uc.validate(in); err != nil {
			return err
		}
		code := strings.TrimSpace(in.Code)
		other, err := productRepo.GetByCode(ctx, code)
		if err != nil {
			return err
		}
		if other != nil && other.ID != id {
			return domain.NewError(domain.ErrDuplicateCode, domain.MsgDuplicateCodeOther)
		}

		next := *current
		next.Code = code
		next.Name = strings.TrimSpace(in.Name)
		next.Description = strings.TrimSpace(in.Description)
		next.Category = strings.TrimSpace(in.Category)
		next.Price = *in.Price
		next.MinStock = *in.MinStock
		next.UpdatedAt = uc.clock()
		if err := productRepo.Update(ctx, &next); err != nil {
			return err
		}
		updated = &next
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			log.Error().Err(err).Str("product_id", id).Msg("editar producto")
		}
		return nil, err
	}
	log.Info().Str("product_id", id).Msg("producto actualizado")
	out := dto.FromProduct(updated)
	return &out, nil
}

// Remove elimina el producto aunque tenga movimientos; el historial queda huérfano.
func (uc *ProductUseCase) Remove(ctx context.Context, id string) error {
	err := uc.tx.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.MovementRepository) error {
		current, err := productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NewError(domain.ErrNotFound, domain.MsgProductNotFound)
		}
		history, err := movRepo.ListByProduct(ctx, id)
		if err != nil {
			return err
		}
		if len(history) > 0 {
			log.Info().Str("product_id", id).Int("movements", len(history)).
				Msg("el producto tiene movimientos, se elimina de todas formas")
		}
		deleted, err := productRepo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NewError(domain.ErrNotFound, domain.MsgProductNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrPersistence) {
			log.Error().Err(err).Str("product_id", id).Msg("eliminar producto")
		}
		return err
	}
	log.Info().Str("product_id", id).Msg("producto eliminado")
	return nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewError(domain.ErrNotFound, domain.MsgProductNotFound)
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// List lista todos los productos en orden de creación.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromProducts(list), nil
}

// Search busca text en código, nombre, descripción y categoría, sin distinguir mayúsculas ni acentos.
func (uc *ProductUseCase) Search(ctx context.Context, text string) ([]dto.ProductResponse, error) {
	return uc.ApplyFilters(ctx, dto.ProductFilters{Search: text})
}

// FilterByCategory productos de la categoría exacta; vacío devuelve todos.
func (uc *ProductUseCase) FilterByCategory(ctx context.Context, category string) ([]dto.ProductResponse, error) {
	return uc.ApplyFilters(ctx, dto.ProductFilters{Category: category})
}

// FilterByStockLevel productos del nivel bajo, normal o alto. "bajo" incluye los sin stock.
func (uc *ProductUseCase) FilterByStockLevel(ctx context.Context, level string) ([]dto.ProductResponse, error) {
	return uc.ApplyFilters(ctx, dto.ProductFilters{StockLevel: level})
}

// ApplyFilters aplica búsqueda, categoría, nivel de stock y orden, en ese orden.
func (uc *ProductUseCase) ApplyFilters(ctx context.Context, f dto.ProductFilters) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if !textnorm.Contains(f.Search, p.Code, p.Name, p.Description, p.Category) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if !stock.MatchesLevel(p.Stock, p.MinStock, f.StockLevel) {
			continue
		}
		out = append(out, p)
	}
	if f.SortField != "" {
		out = SortProducts(out, f.SortField, f.SortDir)
	}
	return dto.FromProducts(out), nil
}

// Summary resumen global: cantidad, stock, valor, bajos, agotados y categorías distintas.
func (uc *ProductUseCase) Summary(ctx context.Context) (*dto.ProductsSummary, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sum := &dto.ProductsSummary{Total: len(list), TotalValue: decimal.Zero}
	categories := make(map[string]struct{})
	for _, p := range list {
		sum.TotalStock += p.Stock
		sum.TotalValue = sum.TotalValue.Add(p.StockValue())
		if p.IsLowStock() {
			sum.LowStock++
		}
		if p.Stock == 0 {
			sum.OutOfStock++
		}
		categories[p.Category] = struct{}{}
	}
	sum.Categories = len(categories)
	return sum, nil
}

// SortProducts devuelve una copia ordenada de forma estable por field ("asc" o "desc").
// Los campos de texto se comparan sin distinguir mayúsculas. Un campo desconocido conserva el orden.
func SortProducts(products []*entity.Product, field, direction string) []*entity.Product {
	sorted := slices.Clone(products)
	cmp := productComparator(field)
	if cmp == nil {
		return sorted
	}
	desc := strings.EqualFold(direction, "desc")
	slices.SortStableFunc(sorted, func(a, b *entity.Product) int {
		if desc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return sorted
}

func productComparator(field string) func(a, b *entity.Product) int {
	text := func(get func(*entity.Product) string) func(a, b *entity.Product) int {
		return func(a, b *entity.Product) int {
			return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
		}
	}
	integer := func(get func(*entity.Product) int) func(a, b *entity.Product) int {
		return func(a, b *entity.Product) int { return get(a) - get(b) }
	}
	switch field {
	case "code":
		return text(func(p *entity.Product) string { return p.Code })
	case "name":
		return text(func(p *entity.Product) string { return p.Name })
	case "description":
		return text(func(p *entity.Product) string { return p.Description })
	case "category":
		return text(func(p *entity.Product) string { return p.Category })
	case "price":
		return func(a, b *entity.Product) int { return a.Price.Cmp(b.Price) }
	case "stock":
		return integer(func(p *entity.Product) int { return p.Stock })
	case "min_stock", "minStock":
		return integer(func(p *entity.Product) int { return p.MinStock })
	case "created_at", "createdAt":
		return func(a, b *entity.Product) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case "updated_at", "updatedAt":
		return func(a, b *entity.Product) int { return a.UpdatedAt.Compare(b.UpdatedAt) }
	default:
		return nil
	}
}
