package repository

import (
	"context"

	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// List distingue colección ausente (nil, false) de colección vacía.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, bool, error)
	SaveAll(ctx context.Context, users []*entity.User) error
}

// SessionRepository guarda el actor de la sesión actual.
type SessionRepository interface {
	Current(ctx context.Context) (*entity.Actor, error)
	Save(ctx context.Context, actor entity.Actor) error
	Clear(ctx context.Context) error
}

// SettingsRepository guarda la configuración de la empresa.
type SettingsRepository interface {
	Get(ctx context.Context) (entity.Settings, error)
	Save(ctx context.Context, settings entity.Settings) error
}
