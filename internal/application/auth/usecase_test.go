package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/farm-onboarding/internal/application/auth"
	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/infrastructure/memory"
	pkgjwt "github.com/tu-usuario/farm-onboarding/pkg/jwt"
)

func newAuthUC() *auth.AuthUseCase {
	return auth.NewAuthUseCase(memory.NewUserRepository(), auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "farm-onboarding-test",
	})
}

// Registro feliz: el password queda hasheado, nunca en claro.
func TestRegister_HasheaElPassword(t *testing.T) {
	uc := newAuthUC()
	user, err := uc.Register(context.Background(), "ana@example.com", "clave-segura-1", "Ana")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "clave-segura-1", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "clave-segura-1")
}

// Email repetido devuelve ErrEmailAlreadyExists.
func TestRegister_EmailDuplicado(t *testing.T) {
	uc := newAuthUC()
	ctx := context.Background()
	_, err := uc.Register(ctx, "ana@example.com", "clave-segura-1", "Ana")
	require.NoError(t, err)
	_, err = uc.Register(ctx, "ana@example.com", "otra-clave-22", "Ana B")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Login con credenciales correctas devuelve un token que parsea al userID.
func TestLogin_DevuelveTokenValido(t *testing.T) {
	uc := newAuthUC()
	ctx := context.Background()
	registered, err := uc.Register(ctx, "ana@example.com", "clave-segura-1", "Ana")
	require.NoError(t, err)

	user, token, err := uc.Login(ctx, "ana@example.com", "clave-segura-1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	userID, err := pkgjwt.Parse("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
}

// Email inexistente y password incorrecto devuelven el mismo error, sin
// distinguir cuál falló.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newAuthUC()
	ctx := context.Background()
	_, err := uc.Register(ctx, "ana@example.com", "clave-segura-1", "Ana")
	require.NoError(t, err)

	_, _, err = uc.Login(ctx, "nadie@example.com", "clave-segura-1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, _, err = uc.Login(ctx, "ana@example.com", "clave-equivocada")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
