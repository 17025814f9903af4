package onboarding

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

// AgreementUseCase registro de acuerdos firmados (Agreement Registry).
type AgreementUseCase struct {
	profiles   repository.BusinessProfileRepository
	agreements repository.AgreementRepository
}

// NewAgreementUseCase construye el registro con sus puertos.
func NewAgreementUseCase(profiles repository.BusinessProfileRepository, agreements repository.AgreementRepository) *AgreementUseCase {
	return &AgreementUseCase{profiles: profiles, agreements: agreements}
}

// Sign upserta la firma de (perfil, tipo de acuerdo) con el timestamp actual.
// Re-firmar reemplaza la firma anterior: el último firmante y momento son los
// autoritativos, por política deliberada no se conserva la primera firma.
func (uc *AgreementUseCase) Sign(ctx context.Context, userID string, agreementType entity.AgreementType, fileURL *string) (*entity.SignedAgreement, error) {
	if !agreementType.Valid() {
		return nil, domain.ErrUnknownAgreement
	}
	profile, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	agreement := &entity.SignedAgreement{
		ID:                uuid.New().String(),
		BusinessProfileID: profile.ID,
		Agreement:         agreementType,
		SignedByUser:      userID,
		SignedAt:          time.Now(),
		FileURL:           fileURL,
	}
	if err := uc.agreements.Upsert(ctx, agreement); err != nil {
		return nil, err
	}
	return agreement, nil
}

// ListByProfile devuelve todas las firmas del perfil del usuario.
func (uc *AgreementUseCase) ListByProfile(ctx context.Context, userID string) ([]*entity.SignedAgreement, error) {
	profile, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.agreements.ListByProfile(ctx, profile.ID)
}

// IsSigned informa si el acuerdo está firmado y devuelve la firma si existe.
func (uc *AgreementUseCase) IsSigned(ctx context.Context, userID string, agreementType entity.AgreementType) (*entity.SignedAgreement, error) {
	if !agreementType.Valid() {
		return nil, domain.ErrUnknownAgreement
	}
	profile, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.agreements.Get(ctx, profile.ID, agreementType)
}

func (uc *AgreementUseCase) requireProfile(ctx context.Context, userID string) (*entity.BusinessProfile, error) {
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNoBusinessProfile
	}
	return profile, nil
}
