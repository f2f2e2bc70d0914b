package repository

import (
	"context"

	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	List(ctx context.Context) ([]*entity.Category, error)
	SaveAll(ctx context.Context, categories []*entity.Category) error
}
