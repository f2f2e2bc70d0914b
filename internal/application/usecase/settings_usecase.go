package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/domain"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
)

const MsgSettingsUpdated = "Configuración guardada exitosamente"

// SettingsUseCase lectura y actualización de la configuración de la empresa.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración guardada o los valores por defecto.
func (uc *SettingsUseCase) Get(ctx context.Context) (dto.SettingsDTO, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return dto.SettingsDTO{}, err
	}
	return dto.FromSettings(s), nil
}

// Update reemplaza la configuración. Los campos vacíos toman el valor por defecto.
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.SettingsDTO) (dto.SettingsDTO, error) {
	if in.LowStockThreshold < 0 {
		return dto.SettingsDTO{}, &domain.ValidationError{Errors: []string{"El umbral de stock bajo debe ser mayor o igual a cero"}}
	}
	def := entity.DefaultSettings()
	s := entity.Settings{
		CompanyName:       orDefault(in.CompanyName, def.CompanyName),
		LowStockThreshold: in.LowStockThreshold,
		Currency:          orDefault(strings.ToUpper(in.Currency), def.Currency),
		DateFormat:        orDefault(in.DateFormat, def.DateFormat),
	}
	if s.LowStockThreshold == 0 {
		s.LowStockThreshold = def.LowStockThreshold
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return dto.SettingsDTO{}, err
	}
	return dto.FromSettings(s), nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}
