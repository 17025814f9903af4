package onboarding

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

// SectionUseCase guarda y consulta los datos por sección (Section Data Store).
// Cada guardado reemplaza el payload completo de la sección; no hay merge
// parcial ni validación de esquema en esta capa (responsabilidad del caller).
type SectionUseCase struct {
	profiles repository.BusinessProfileRepository
	sections repository.SectionRepository
}

// NewSectionUseCase construye el caso de uso con sus puertos de persistencia.
func NewSectionUseCase(profiles repository.BusinessProfileRepository, sections repository.SectionRepository) *SectionUseCase {
	return &SectionUseCase{profiles: profiles, sections: sections}
}

// Save upserta el SectionRecord de (perfil del usuario, sección) y estampa
// updated_at. Si el usuario aún no tiene perfil y la sección es basic, el
// perfil se crea desde los campos de identidad del payload (primer envío del
// flujo). Para cualquier otra sección sin perfil devuelve ErrNoBusinessProfile.
func (uc *SectionUseCase) Save(ctx context.Context, userID string, section entity.Section, data map[string]any) (*entity.SectionRecord, error) {
	if userID == "" || !section.Valid() {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		if section != entity.SectionBasic {
			return nil, domain.ErrNoBusinessProfile
		}
		profile, err = uc.createProfileFromBasic(ctx, userID, data)
		if err != nil {
			return nil, err
		}
	}

	record := &entity.SectionRecord{
		BusinessProfileID: profile.ID,
		SectionName:       section,
		Data:              data,
		UpdatedAt:         time.Now(),
	}
	if err := uc.sections.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Get devuelve el registro de la sección, o nil si nunca se guardó.
func (uc *SectionUseCase) Get(ctx context.Context, userID string, section entity.Section) (*entity.SectionRecord, error) {
	if !section.Valid() {
		return nil, domain.ErrUnknownSection
	}
	profile, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.sections.Get(ctx, profile.ID, section)
}

// GetAll devuelve todos los registros de sección del perfil, sin orden.
func (uc *SectionUseCase) GetAll(ctx context.Context, userID string) ([]*entity.SectionRecord, error) {
	profile, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.sections.GetAll(ctx, profile.ID)
}

func (uc *SectionUseCase) requireProfile(ctx context.Context, userID string) (*entity.BusinessProfile, error) {
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNoBusinessProfile
	}
	return profile, nil
}

// basicIdentity campos de identidad que el payload de la sección basic debe
// traer para poder crear el perfil en el primer envío.
type basicIdentity struct {
	FullName          string               `json:"full_name"`
	TradingName       string               `json:"trading_name"`
	ABN               string               `json:"abn"`
	ACN               *string              `json:"acn"`
	GSTRegistered     bool                 `json:"gst_registered"`
	MainContact       entity.MainContact   `json:"main_contact"`
	ContactEmails     entity.ContactEmails `json:"contact_emails"`
	ContactPhones     entity.ContactPhones `json:"contact_phones"`
	BusinessStructure string               `json:"business_structure"`
}

func (uc *SectionUseCase) createProfileFromBasic(ctx context.Context, userID string, data map[string]any) (*entity.BusinessProfile, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var ident basicIdentity
	if err := json.Unmarshal(raw, &ident); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if ident.FullName == "" || ident.ABN == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	profile := &entity.BusinessProfile{
		ID:                uuid.New().String(),
		UserID:            userID,
		FullName:          ident.FullName,
		TradingName:       ident.TradingName,
		ABN:               ident.ABN,
		ACN:               ident.ACN,
		GSTRegistered:     ident.GSTRegistered,
		MainContact:       ident.MainContact,
		ContactEmails:     ident.ContactEmails,
		ContactPhones:     ident.ContactPhones,
		BusinessStructure: ident.BusinessStructure,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
