package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/farm-onboarding/internal/application/usecase"
	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/infrastructure/memory"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

func validInput() usecase.ProfileInput {
	return usecase.ProfileInput{
		FullName: "Riverina Grains Pty Ltd",
		ABN:      "51824753556",
	}
}

// Crear dos veces para el mismo usuario falla con ErrProfileExists: a lo sumo
// un perfil por usuario.
func TestCreate_UnPerfilPorUsuario(t *testing.T) {
	uc := usecase.NewProfileUseCase(memory.NewBusinessProfileRepository())
	ctx := context.Background()

	profile, err := uc.Create(ctx, testUserID, validInput())
	require.NoError(t, err)
	require.NotEmpty(t, profile.ID)

	_, err = uc.Create(ctx, testUserID, validInput())
	assert.ErrorIs(t, err, domain.ErrProfileExists)
}

func TestCreate_IdentidadMinima(t *testing.T) {
	uc := usecase.NewProfileUseCase(memory.NewBusinessProfileRepository())
	_, err := uc.Create(context.Background(), testUserID, usecase.ProfileInput{TradingName: "Sin identidad"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update reemplaza los campos editables y mueve updated_at.
func TestUpdate_ReemplazaCampos(t *testing.T) {
	uc := usecase.NewProfileUseCase(memory.NewBusinessProfileRepository())
	ctx := context.Background()

	created, err := uc.Create(ctx, testUserID, validInput())
	require.NoError(t, err)

	in := validInput()
	in.TradingName = "Riverina Grains"
	in.GSTRegistered = true
	updated, err := uc.Update(ctx, testUserID, in)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "el ID no cambia")
	assert.Equal(t, "Riverina Grains", updated.TradingName)
	assert.True(t, updated.GSTRegistered)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

// MarkOnboardingComplete estampa el timestamp una sola dirección: de nil a un
// valor.
func TestMarkOnboardingComplete(t *testing.T) {
	uc := usecase.NewProfileUseCase(memory.NewBusinessProfileRepository())
	ctx := context.Background()

	created, err := uc.Create(ctx, testUserID, validInput())
	require.NoError(t, err)
	assert.Nil(t, created.OnboardingCompleteAt)

	done, err := uc.MarkOnboardingComplete(ctx, testUserID)
	require.NoError(t, err)
	require.NotNil(t, done.OnboardingCompleteAt)
}

func TestUpdate_SinPerfil(t *testing.T) {
	uc := usecase.NewProfileUseCase(memory.NewBusinessProfileRepository())
	_, err := uc.Update(context.Background(), "usuario-sin-perfil", validInput())
	assert.ErrorIs(t, err, domain.ErrNoBusinessProfile)
}
