package repository

import (
	"context"

	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// AgreementRepository puerto de persistencia para SignedAgreement.
// Upsert escribe sobre la clave (business_profile_id, agreement): re-firmar
// reemplaza la firma anterior.
type AgreementRepository interface {
	Upsert(ctx context.Context, agreement *entity.SignedAgreement) error
	Get(ctx context.Context, profileID string, agreementType entity.AgreementType) (*entity.SignedAgreement, error)
	ListByProfile(ctx context.Context, profileID string) ([]*entity.SignedAgreement, error)
}
