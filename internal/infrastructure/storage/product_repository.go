package storage

import (
	"context"
	"time"

	"github.com/jhoicas/sistema-inventarios/internal/domain"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre la colección inventory_products.
// Usable con el store base o con el store de una transacción.
type ProductRepo struct {
	s Store
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(s Store) *ProductRepo {
	return &ProductRepo{s: s}
}

func (r *ProductRepo) load(ctx context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	if _, err := Load(ctx, r.s, KeyProducts, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ProductRepo) save(ctx context.Context, list []*entity.Product) error {
	if list == nil {
		list = []*entity.Product{}
	}
	return Save(ctx, r.s, KeyProducts, list)
}

// Create agrega un producto. Devuelve domain.ErrDuplicateCode si el código ya existe.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, p := range list {
		if p.Code == product.Code {
			return domain.ErrDuplicateCode
		}
	}
	cp := *product
	return r.save(ctx, append(list, &cp))
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// GetByCode obtiene un producto por código exacto; (nil, nil) si no existe.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

// Update reemplaza los datos editables de un producto. Stock y CreatedAt se conservan
// siempre del registro guardado (el stock solo cambia vía UpdateStock).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, p := range list {
		if p.ID != product.ID {
			continue
		}
		cp := *product
		cp.Stock = p.Stock
		cp.CreatedAt = p.CreatedAt
		list[i] = &cp
		product.Stock = p.Stock
		return r.save(ctx, list)
	}
	return domain.ErrNotFound
}

// UpdateStock aplica delta al stock del producto (usado por el libro de movimientos).
func (r *ProductRepo) UpdateStock(ctx context.Context, productID string, delta int) (*entity.Product, error) {
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.ID != productID {
			continue
		}
		if p.Stock+delta < 0 {
			return nil, domain.ErrNegativeStock
		}
		p.Stock += delta
		p.UpdatedAt = time.Now()
		if err := r.save(ctx, list); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, domain.ErrNotFound
}

// List devuelve todos los productos en orden de creación.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.load(ctx)
}

// Delete elimina un producto por ID. Devuelve false si no existía.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	list, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	filtered := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(list) {
		return false, nil
	}
	return true, r.save(ctx, filtered)
}
