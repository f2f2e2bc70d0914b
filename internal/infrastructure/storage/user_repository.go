package storage

import (
	"context"

	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
)

var (
	_ repository.UserRepository     = (*UserRepo)(nil)
	_ repository.SessionRepository  = (*SessionRepo)(nil)
	_ repository.SettingsRepository = (*SettingsRepo)(nil)
)

// UserRepo usuarios sobre inventory_users.
type UserRepo struct {
	s Store
}

// NewUserRepository construye el adaptador.
func NewUserRepository(s Store) *UserRepo {
	return &UserRepo{s: s}
}

// GetByUsername busca un usuario por nombre exacto; (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	list, _, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range list {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// List devuelve los usuarios y si la colección existe.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, bool, error) {
	var list []*entity.User
	found, err := Load(ctx, r.s, KeyUsers, &list)
	if err != nil {
		return nil, false, err
	}
	return list, found, nil
}

// SaveAll reemplaza la colección completa.
func (r *UserRepo) SaveAll(ctx context.Context, users []*entity.User) error {
	if users == nil {
		users = []*entity.User{}
	}
	return Save(ctx, r.s, KeyUsers, users)
}

// SessionRepo actor de la sesión actual sobre inventory_current_user.
type SessionRepo struct {
	s Store
}

// NewSessionRepository construye el adaptador.
func NewSessionRepository(s Store) *SessionRepo {
	return &SessionRepo{s: s}
}

// Current devuelve el actor de la sesión o nil si no hay sesión.
func (r *SessionRepo) Current(ctx context.Context) (*entity.Actor, error) {
	var a entity.Actor
	found, err := Load(ctx, r.s, KeyCurrentUser, &a)
	if err != nil || !found {
		return nil, err
	}
	return &a, nil
}

// Save guarda el actor de la sesión.
func (r *SessionRepo) Save(ctx context.Context, actor entity.Actor) error {
	return Save(ctx, r.s, KeyCurrentUser, actor)
}

// Clear cierra la sesión.
func (r *SessionRepo) Clear(ctx context.Context) error {
	return Remove(ctx, r.s, KeyCurrentUser)
}

// SettingsRepo configuración sobre inventory_settings.
type SettingsRepo struct {
	s Store
}

// NewSettingsRepository construye el adaptador.
func NewSettingsRepository(s Store) *SettingsRepo {
	return &SettingsRepo{s: s}
}

// Get devuelve la configuración guardada o los valores por defecto.
func (r *SettingsRepo) Get(ctx context.Context) (entity.Settings, error) {
	settings := entity.DefaultSettings()
	var stored entity.Settings
	found, err := Load(ctx, r.s, KeySettings, &stored)
	if err != nil {
		return settings, err
	}
	if found {
		return stored, nil
	}
	return settings, nil
}

// Save guarda la configuración.
func (r *SettingsRepo) Save(ctx context.Context, settings entity.Settings) error {
	return Save(ctx, r.s, KeySettings, settings)
}
