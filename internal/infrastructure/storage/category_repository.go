package storage

import (
	"context"

	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo categorías sobre inventory_categories.
type CategoryRepo struct {
	s Store
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(s Store) *CategoryRepo {
	return &CategoryRepo{s: s}
}

// Create agrega una categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	cp := *category
	return r.SaveAll(ctx, append(list, &cp))
}

// List devuelve las categorías guardadas (vacío si no hay).
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var list []*entity.Category
	if _, err := Load(ctx, r.s, KeyCategories, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SaveAll reemplaza la colección completa.
func (r *CategoryRepo) SaveAll(ctx context.Context, categories []*entity.Category) error {
	if categories == nil {
		categories = []*entity.Category{}
	}
	return Save(ctx, r.s, KeyCategories, categories)
}
