package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/domain"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
	"github.com/jhoicas/sistema-inventarios/pkg/jwt"
)

// Mensajes de autenticación.
const (
	MsgUsernameRequired   = "Por favor ingrese su usuario"
	MsgPasswordRequired   = "Por favor ingrese su contraseña"
	MsgInvalidCredentials = "Usuario o contraseña incorrectos"
	MsgLoggedOut          = "Sesión cerrada"
	msgWelcome            = "Bienvenido, %s!"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login contra los usuarios sembrados y sesión actual.
// Solo produce el actor: la autorización por rol la aplica la capa HTTP.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessionRepo: sessionRepo, jwtCfg: jwtCfg}
}

// Login verifica usuario/password, genera JWT, guarda la sesión y retorna token + actor.
// Usuario inexistente, password incorrecta e inactivo responden igual.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, &domain.ValidationError{Errors: []string{MsgUsernameRequired}}
	}
	if in.Password == "" {
		return nil, &domain.ValidationError{Errors: []string{MsgPasswordRequired}}
	}
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		log.Info().Str("username", username).Msg("login: usuario no encontrado")
		return nil, domain.NewError(domain.ErrUnauthorized, MsgInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		log.Info().Str("username", username).Msg("login: contraseña incorrecta")
		return nil, domain.NewError(domain.ErrUnauthorized, MsgInvalidCredentials)
	}
	if !user.Active {
		log.Info().Str("username", username).Msg("login: usuario inactivo")
		return nil, domain.NewError(domain.ErrUnauthorized, MsgInvalidCredentials)
	}

	actor := user.Actor()
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:   actor.ID,
		Username: actor.Username,
		FullName: actor.FullName,
		Role:     actor.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("auth: generar token: %w", err)
	}
	if err := uc.sessionRepo.Save(ctx, actor); err != nil {
		return nil, err
	}
	log.Info().Str("username", actor.Username).Str("role", actor.Role).Msg("sesión iniciada")

	return &dto.LoginResponse{
		Success: true,
		Message: fmt.Sprintf(msgWelcome, actor.DisplayName()),
		Token:   token,
		User:    dto.FromActor(actor),
	}, nil
}

// Logout borra la sesión actual. Sin sesión no hace nada.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	current, err := uc.sessionRepo.Current(ctx)
	if err != nil {
		return err
	}
	if current != nil {
		log.Info().Str("username", current.Username).Msg("cerrando sesión")
	}
	return uc.sessionRepo.Clear(ctx)
}

// CurrentActor actor de la sesión guardada, nil si no hay sesión.
func (uc *AuthUseCase) CurrentActor(ctx context.Context) (*entity.Actor, error) {
	return uc.sessionRepo.Current(ctx)
}
