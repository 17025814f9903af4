package onboarding_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/farm-onboarding/internal/application/onboarding"
	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del almacén de datos por sección
// ──────────────────────────────────────────────────────────────────────────────

// El primer guardado de basic crea el perfil a partir de los campos de
// identidad del payload.
func TestSave_PrimerBasicCreaPerfil(t *testing.T) {
	env := newTestEnv()
	uc := onboarding.NewSectionUseCase(env.profiles, env.sections)
	ctx := context.Background()

	record, err := uc.Save(ctx, testUserID, entity.SectionBasic, map[string]any{
		"full_name":    "Riverina Grains Pty Ltd",
		"trading_name": "Riverina Grains",
		"abn":          "51824753556",
	})
	require.NoError(t, err)
	require.NotEmpty(t, record.BusinessProfileID)

	profile, err := env.profiles.GetByUserID(ctx, testUserID)
	require.NoError(t, err)
	require.NotNil(t, profile, "el perfil debe haberse creado")
	assert.Equal(t, "Riverina Grains Pty Ltd", profile.FullName)
	assert.Equal(t, "51824753556", profile.ABN)
	assert.Equal(t, record.BusinessProfileID, profile.ID)
}

// basic sin los campos de identidad mínimos no puede crear el perfil.
func TestSave_BasicSinIdentidadFalla(t *testing.T) {
	env := newTestEnv()
	uc := onboarding.NewSectionUseCase(env.profiles, env.sections)

	_, err := uc.Save(context.Background(), testUserID, entity.SectionBasic, map[string]any{
		"trading_name": "Sin identidad",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Guardar cualquier otra sección sin perfil previo es un error.
func TestSave_OtraSeccionSinPerfilFalla(t *testing.T) {
	env := newTestEnv()
	uc := onboarding.NewSectionUseCase(env.profiles, env.sections)

	_, err := uc.Save(context.Background(), testUserID, entity.SectionFarm, map[string]any{
		"property_name": "Glenview",
	})
	assert.ErrorIs(t, err, domain.ErrNoBusinessProfile)
}

// Re-guardar una sección reemplaza el payload completo (last write wins),
// sin merge de claves.
func TestSave_ReemplazaElPayloadCompleto(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewSectionUseCase(env.profiles, env.sections)
	ctx := context.Background()

	_, err := uc.Save(ctx, testUserID, entity.SectionFarm, map[string]any{
		"property_name": "Glenview",
		"hectares":      420,
	})
	require.NoError(t, err)

	_, err = uc.Save(ctx, testUserID, entity.SectionFarm, map[string]any{
		"property_name": "Glenview Norte",
	})
	require.NoError(t, err)

	record, err := uc.Get(ctx, testUserID, entity.SectionFarm)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Glenview Norte", record.Data["property_name"])
	_, hayHectareas := record.Data["hectares"]
	assert.False(t, hayHectareas, "el payload anterior no debe sobrevivir al reemplazo")
}

// Get de una sección nunca guardada devuelve nil, no error.
func TestGet_SeccionNoGuardada(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewSectionUseCase(env.profiles, env.sections)

	record, err := uc.Get(context.Background(), testUserID, entity.SectionStorage)
	require.NoError(t, err)
	assert.Nil(t, record)
}

// GetAll devuelve solo las secciones guardadas, en el orden canónico.
func TestGetAll_SoloLasGuardadas(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewSectionUseCase(env.profiles, env.sections)
	ctx := context.Background()

	// Guardadas en orden arbitrario
	_, err := uc.Save(ctx, testUserID, entity.SectionCompliance, map[string]any{"x": 1})
	require.NoError(t, err)
	_, err = uc.Save(ctx, testUserID, entity.SectionFarm, map[string]any{"y": 2})
	require.NoError(t, err)

	records, err := uc.GetAll(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, entity.SectionFarm, records[0].SectionName)
	assert.Equal(t, entity.SectionCompliance, records[1].SectionName)
}

func TestSave_SeccionDesconocida(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewSectionUseCase(env.profiles, env.sections)

	_, err := uc.Save(context.Background(), testUserID, entity.Section("warehouse"), map[string]any{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
