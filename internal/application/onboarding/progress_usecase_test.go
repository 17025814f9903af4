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
// Tests del tracker de progreso
// ──────────────────────────────────────────────────────────────────────────────

// Completar una sección intermedia avanza el puntero a la siguiente del orden.
func TestMarkStepComplete_AvanzaAlSiguiente(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewProgressUseCase(env.profiles, env.progress)

	p, err := uc.MarkStepComplete(context.Background(), testUserID, entity.SectionBasic)
	require.NoError(t, err)
	assert.Equal(t, entity.SectionFarm, p.CurrentStep, "tras completar basic el puntero debe quedar en farm")
	assert.Equal(t, []entity.Section{entity.SectionBasic}, p.CompletedSteps)
}

// Completar dos veces la misma sección no duplica el paso en el conjunto.
func TestMarkStepComplete_EsIdempotenteEnElConjunto(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewProgressUseCase(env.profiles, env.progress)
	ctx := context.Background()

	_, err := uc.MarkStepComplete(ctx, testUserID, entity.SectionBasic)
	require.NoError(t, err)
	p, err := uc.MarkStepComplete(ctx, testUserID, entity.SectionBasic)
	require.NoError(t, err)

	assert.Equal(t, []entity.Section{entity.SectionBasic}, p.CompletedSteps, "sin duplicados")
	assert.Equal(t, entity.SectionFarm, p.CurrentStep)
}

// Completar la última sección deja el puntero fijado en ella (no corre más
// allá del final).
func TestMarkStepComplete_UltimaSeccionFijaElPuntero(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewProgressUseCase(env.profiles, env.progress)

	p, err := uc.MarkStepComplete(context.Background(), testUserID, entity.SectionCommunications)
	require.NoError(t, err)
	assert.Equal(t, entity.SectionCommunications, p.CurrentStep)
}

// Completar fuera de orden es estado representable: el tracker no valida
// prerequisitos, solo registra y mueve el puntero.
func TestMarkStepComplete_FueraDeOrdenEsPermitido(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewProgressUseCase(env.profiles, env.progress)

	p, err := uc.MarkStepComplete(context.Background(), testUserID, entity.SectionCompliance)
	require.NoError(t, err)
	assert.Equal(t, entity.SectionStorage, p.CurrentStep)
	assert.False(t, p.HasCompleted(entity.SectionBasic), "basic no se completó")
}

// Completar las seis secciones, en cualquier orden, deja el progreso completo.
func TestMarkStepComplete_SeisSeccionesCompletan(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewProgressUseCase(env.profiles, env.progress)
	ctx := context.Background()

	// Orden invertido a propósito
	var p *entity.OnboardingProgress
	var err error
	for i := len(entity.SectionOrder) - 1; i >= 0; i-- {
		p, err = uc.MarkStepComplete(ctx, testUserID, entity.SectionOrder[i])
		require.NoError(t, err)
	}
	assert.True(t, p.IsComplete())
	assert.Equal(t, entity.SectionFarm, p.CurrentStep, "el último paso marcado fue basic, el puntero queda en farm")
}

// Sección desconocida y usuario sin perfil son errores del dominio.
func TestMarkStepComplete_Errores(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewProgressUseCase(env.profiles, env.progress)
	ctx := context.Background()

	_, err := uc.MarkStepComplete(ctx, testUserID, entity.Section("bogus"))
	assert.ErrorIs(t, err, domain.ErrUnknownSection)

	_, err = uc.MarkStepComplete(ctx, "usuario-sin-perfil", entity.SectionBasic)
	assert.ErrorIs(t, err, domain.ErrNoBusinessProfile)
}

// Get devuelve nil antes del primer paso completado (registro lazy).
func TestProgressGet_NilAntesDelPrimerPaso(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewProgressUseCase(env.profiles, env.progress)

	p, err := uc.Get(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Nil(t, p)
}
