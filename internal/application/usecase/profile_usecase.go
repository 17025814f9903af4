package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

// ProfileInput campos editables del perfil de empresa.
type ProfileInput struct {
	FullName          string
	TradingName       string
	ABN               string
	ACN               *string
	GSTRegistered     bool
	MainContact       entity.MainContact
	ContactEmails     entity.ContactEmails
	ContactPhones     entity.ContactPhones
	BusinessStructure string
}

// ProfileUseCase casos de uso del perfil de empresa. Invariante: a lo sumo un
// perfil por usuario; el núcleo nunca borra perfiles.
type ProfileUseCase struct {
	profiles repository.BusinessProfileRepository
}

// NewProfileUseCase construye el caso de uso con el puerto de persistencia.
func NewProfileUseCase(profiles repository.BusinessProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles}
}

// Create crea el perfil del usuario. Devuelve ErrProfileExists si ya tiene uno.
func (uc *ProfileUseCase) Create(ctx context.Context, userID string, in ProfileInput) (*entity.BusinessProfile, error) {
	if userID == "" || in.FullName == "" || in.ABN == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrProfileExists
	}
	now := time.Now()
	profile := &entity.BusinessProfile{
		ID:                uuid.New().String(),
		UserID:            userID,
		FullName:          in.FullName,
		TradingName:       in.TradingName,
		ABN:               in.ABN,
		ACN:               in.ACN,
		GSTRegistered:     in.GSTRegistered,
		MainContact:       in.MainContact,
		ContactEmails:     in.ContactEmails,
		ContactPhones:     in.ContactPhones,
		BusinessStructure: in.BusinessStructure,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetByUser devuelve el perfil del usuario, o nil si no existe.
func (uc *ProfileUseCase) GetByUser(ctx context.Context, userID string) (*entity.BusinessProfile, error) {
	return uc.profiles.GetByUserID(ctx, userID)
}

// Update reemplaza los campos editables del perfil y estampa updated_at.
func (uc *ProfileUseCase) Update(ctx context.Context, userID string, in ProfileInput) (*entity.BusinessProfile, error) {
	profile, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.FullName = in.FullName
	profile.TradingName = in.TradingName
	profile.ABN = in.ABN
	profile.ACN = in.ACN
	profile.GSTRegistered = in.GSTRegistered
	profile.MainContact = in.MainContact
	profile.ContactEmails = in.ContactEmails
	profile.ContactPhones = in.ContactPhones
	profile.BusinessStructure = in.BusinessStructure
	profile.UpdatedAt = time.Now()
	if err := uc.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// MarkOnboardingComplete estampa onboarding_complete_at en el perfil.
func (uc *ProfileUseCase) MarkOnboardingComplete(ctx context.Context, userID string) (*entity.BusinessProfile, error) {
	profile, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	profile.OnboardingCompleteAt = &now
	profile.UpdatedAt = now
	if err := uc.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *ProfileUseCase) requireProfile(ctx context.Context, userID string) (*entity.BusinessProfile, error) {
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNoBusinessProfile
	}
	return profile, nil
}
