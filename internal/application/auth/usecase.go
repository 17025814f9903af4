package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
	"github.com/tu-usuario/farm-onboarding/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login. Actúa como el
// proveedor de identidad del onboarding: el user_id del token es el principal
// que el resto del sistema confía sin verificación adicional.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, email, password, fullName string) (*entity.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if fullName == "" {
		fullName = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login valida credenciales y devuelve el usuario con un token JWT firmado.
// Devuelve ErrUnauthorized tanto para email inexistente como para password
// incorrecto (sin distinguir, para no filtrar qué emails existen).
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
