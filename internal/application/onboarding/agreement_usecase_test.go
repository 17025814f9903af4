package onboarding_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/farm-onboarding/internal/application/onboarding"
	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del registro de acuerdos
// ──────────────────────────────────────────────────────────────────────────────

// Firmar registra el acuerdo con el usuario y el momento actuales.
func TestSign_RegistraLaFirma(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewAgreementUseCase(env.profiles, env.agreements)

	antes := time.Now()
	a, err := uc.Sign(context.Background(), testUserID, entity.AgreementService, nil)
	require.NoError(t, err)

	assert.Equal(t, entity.AgreementService, a.Agreement)
	assert.Equal(t, testUserID, a.SignedByUser)
	assert.False(t, a.SignedAt.Before(antes))
	assert.Nil(t, a.FileURL)
}

// Re-firmar reemplaza la firma anterior: queda una sola fila por acuerdo y los
// datos autoritativos son los del último firmado.
func TestSign_ReFirmarReemplaza(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewAgreementUseCase(env.profiles, env.agreements)
	ctx := context.Background()

	primero, err := uc.Sign(ctx, testUserID, entity.AgreementPrivacy, nil)
	require.NoError(t, err)

	url := "https://docs.example.com/privacy-v2.pdf"
	segundo, err := uc.Sign(ctx, testUserID, entity.AgreementPrivacy, &url)
	require.NoError(t, err)
	assert.Equal(t, primero.ID, segundo.ID, "re-firmar conserva la identidad de la fila")

	firmas, err := uc.ListByProfile(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, firmas, 1, "una sola fila por (perfil, acuerdo)")
	require.NotNil(t, firmas[0].FileURL)
	assert.Equal(t, url, *firmas[0].FileURL)
	assert.Equal(t, segundo.ID, firmas[0].ID, "el ID devuelto es el persistido")
}

// IsSigned distingue firmado de no firmado.
func TestIsSigned(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewAgreementUseCase(env.profiles, env.agreements)
	ctx := context.Background()

	a, err := uc.IsSigned(ctx, testUserID, entity.AgreementDirectDebit)
	require.NoError(t, err)
	assert.Nil(t, a, "aún no firmado")

	_, err = uc.Sign(ctx, testUserID, entity.AgreementDirectDebit, nil)
	require.NoError(t, err)

	a, err = uc.IsSigned(ctx, testUserID, entity.AgreementDirectDebit)
	require.NoError(t, err)
	require.NotNil(t, a)
}

func TestSign_Errores(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewAgreementUseCase(env.profiles, env.agreements)
	ctx := context.Background()

	_, err := uc.Sign(ctx, testUserID, entity.AgreementType("nda"), nil)
	assert.ErrorIs(t, err, domain.ErrUnknownAgreement)

	_, err = uc.Sign(ctx, "usuario-sin-perfil", entity.AgreementPrivacy, nil)
	assert.ErrorIs(t, err, domain.ErrNoBusinessProfile)
}
