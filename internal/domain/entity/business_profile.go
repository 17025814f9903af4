package entity

import "time"

// MainContact contacto principal de la empresa (persistido como JSONB).
type MainContact struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// ContactEmails correos de contacto por rol (persistido como JSONB).
type ContactEmails struct {
	Accounts string `json:"accounts"`
	Admin    string `json:"admin"`
	Personal string `json:"personal,omitempty"`
}

// ContactPhones teléfonos de contacto (persistido como JSONB).
type ContactPhones struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
	Mobile    string `json:"mobile,omitempty"`
}

// BusinessProfile representa la empresa agrícola sujeto del onboarding.
// Invariante: a lo sumo un perfil por usuario propietario (user_id).
type BusinessProfile struct {
	ID                   string
	UserID               string
	FullName             string // razón social
	TradingName          string
	ABN                  string
	ACN                  *string // nil = sin ACN (no es sociedad)
	GSTRegistered        bool
	MainContact          MainContact
	ContactEmails        ContactEmails
	ContactPhones        ContactPhones
	BusinessStructure    string // sole_trader, partnership, company, trust
	OnboardingCompleteAt *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
