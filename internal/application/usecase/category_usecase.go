package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/domain"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
	"github.com/jhoicas/sistema-inventarios/pkg/textnorm"
)

const (
	MsgCategoryCreated   = "Categoría creada exitosamente"
	MsgCategoryRequired  = "El nombre de la categoría es requerido"
	MsgCategoryDuplicate = "Ya existe una categoría con ese nombre"
)

// CategoryUseCase casos de uso de categorías. Los productos las referencian por nombre,
// por eso no hay renombrado ni borrado.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve las categorías en orden de alta.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.FromCategory(c))
	}
	return out, nil
}

// Create agrega una categoría. El nombre es único sin distinguir mayúsculas ni acentos.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &domain.ValidationError{Errors: []string{MsgCategoryRequired}}
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		if textnorm.Equal(c.Name, name) {
			return nil, domain.NewError(domain.ErrDuplicateCode, MsgCategoryDuplicate)
		}
	}
	category, err := entity.NewCategory(uuid.New().String(), name, strings.TrimSpace(in.Description))
	if err != nil {
		return nil, &domain.ValidationError{Errors: []string{MsgCategoryRequired}}
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		log.Error().Err(err).Str("name", name).Msg("crear categoría")
		return nil, err
	}
	out := dto.FromCategory(category)
	return &out, nil
}
