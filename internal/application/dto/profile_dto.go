package dto

import (
	"time"

	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// BusinessProfileRequest campos editables del perfil de empresa.
// Los nombres de campo replican las columnas de business_profiles.
type BusinessProfileRequest struct {
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

// BusinessProfileResponse perfil completo.
type BusinessProfileResponse struct {
	ID                   string               `json:"id"`
	UserID               string               `json:"user_id"`
	FullName             string               `json:"full_name"`
	TradingName          string               `json:"trading_name"`
	ABN                  string               `json:"abn"`
	ACN                  *string              `json:"acn"`
	GSTRegistered        bool                 `json:"gst_registered"`
	MainContact          entity.MainContact   `json:"main_contact"`
	ContactEmails        entity.ContactEmails `json:"contact_emails"`
	ContactPhones        entity.ContactPhones `json:"contact_phones"`
	BusinessStructure    string               `json:"business_structure"`
	OnboardingCompleteAt *time.Time           `json:"onboarding_complete_at"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}
