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

func newRequirementsUC(env *testEnv, cfg onboarding.RequirementsConfig) *onboarding.RequirementsUseCase {
	return onboarding.NewRequirementsUseCase(env.profiles, env.rules, env.documents, cfg)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del evaluador de requisitos
// ──────────────────────────────────────────────────────────────────────────────

// Sin documentos subidos, las reglas obligatorias de la sección aparecen como
// faltantes y la sección no puede avanzar.
func TestCheckSection_SinDocumentosFaltanObligatorios(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := newRequirementsUC(env, onboarding.RequirementsConfig{})

	req, err := uc.CheckSection(context.Background(), testUserID, entity.SectionBasic)
	require.NoError(t, err)

	require.Len(t, req.Missing, 1, "basic tiene un solo obligatorio: abn_certificate")
	assert.Equal(t, entity.DocABNCertificate, req.Missing[0].DocType)
	assert.False(t, req.CanProceed)
	assert.Empty(t, req.Uploaded)
}

// Subir el documento obligatorio con la sección correcta satisface la regla.
func TestCheckSection_DocumentoEtiquetadoSatisface(t *testing.T) {
	env := newTestEnv()
	profileID := env.seedProfile(t)
	env.seedDocument(t, profileID, sectionPtr(entity.SectionBasic), entity.DocABNCertificate)
	uc := newRequirementsUC(env, onboarding.RequirementsConfig{})

	req, err := uc.CheckSection(context.Background(), testUserID, entity.SectionBasic)
	require.NoError(t, err)
	assert.Empty(t, req.Missing)
	assert.True(t, req.CanProceed)
	require.Len(t, req.Uploaded, 1)
}

// Por defecto un documento sin sección NO satisface reglas de ninguna sección,
// aunque el tipo coincida.
func TestCheckSection_UntaggedNoCuentaPorDefecto(t *testing.T) {
	env := newTestEnv()
	profileID := env.seedProfile(t)
	env.seedDocument(t, profileID, nil, entity.DocABNCertificate)
	uc := newRequirementsUC(env, onboarding.RequirementsConfig{})

	req, err := uc.CheckSection(context.Background(), testUserID, entity.SectionBasic)
	require.NoError(t, err)
	assert.False(t, req.CanProceed, "el documento sin sección no debe contar")
	require.Len(t, req.Missing, 1)
}

// Con CountUntagged activo, el mismo documento sin sección sí satisface.
func TestCheckSection_UntaggedCuentaSiSeConfigura(t *testing.T) {
	env := newTestEnv()
	profileID := env.seedProfile(t)
	env.seedDocument(t, profileID, nil, entity.DocABNCertificate)
	uc := newRequirementsUC(env, onboarding.RequirementsConfig{CountUntagged: true})

	req, err := uc.CheckSection(context.Background(), testUserID, entity.SectionBasic)
	require.NoError(t, err)
	assert.True(t, req.CanProceed)
	assert.Empty(t, req.Missing)
	assert.Empty(t, req.Uploaded, "uploaded solo lista los documentos etiquetados con la sección")
}

// Un documento de otra sección no satisface, aunque el tipo coincida.
func TestCheckSection_SeccionEquivocadaNoCuenta(t *testing.T) {
	env := newTestEnv()
	profileID := env.seedProfile(t)
	env.seedDocument(t, profileID, sectionPtr(entity.SectionFarm), entity.DocABNCertificate)
	uc := newRequirementsUC(env, onboarding.RequirementsConfig{})

	canProceed, err := uc.CanProceedToNextSection(context.Background(), testUserID, entity.SectionBasic)
	require.NoError(t, err)
	assert.False(t, canProceed)
}

// Secciones sin reglas obligatorias siempre pueden avanzar.
func TestCheckSection_SeccionSinReglasSiemprePasa(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := newRequirementsUC(env, onboarding.RequirementsConfig{})
	ctx := context.Background()

	for _, section := range []entity.Section{entity.SectionStorage, entity.SectionCommunications, entity.SectionFarm} {
		canProceed, err := uc.CanProceedToNextSection(ctx, testUserID, section)
		require.NoError(t, err)
		assert.True(t, canProceed, "sección %s no tiene obligatorios", section)
	}
}

// Documentos duplicados del mismo tipo cuentan una sola vez, sin error.
func TestCheckSection_DuplicadosDelMismoTipo(t *testing.T) {
	env := newTestEnv()
	profileID := env.seedProfile(t)
	env.seedDocument(t, profileID, sectionPtr(entity.SectionBasic), entity.DocABNCertificate)
	env.seedDocument(t, profileID, sectionPtr(entity.SectionBasic), entity.DocABNCertificate)
	uc := newRequirementsUC(env, onboarding.RequirementsConfig{})

	req, err := uc.CheckSection(context.Background(), testUserID, entity.SectionBasic)
	require.NoError(t, err)
	assert.True(t, req.CanProceed)
	assert.Len(t, req.Uploaded, 2, "ambos registros se listan aunque satisfagan la misma regla")
}

func TestCheckSection_Errores(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := newRequirementsUC(env, onboarding.RequirementsConfig{})
	ctx := context.Background()

	_, err := uc.CheckSection(ctx, testUserID, entity.Section("bogus"))
	assert.ErrorIs(t, err, domain.ErrUnknownSection)

	_, err = uc.CheckSection(ctx, "usuario-sin-perfil", entity.SectionBasic)
	assert.ErrorIs(t, err, domain.ErrNoBusinessProfile)
}
