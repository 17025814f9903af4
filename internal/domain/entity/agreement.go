package entity

import "time"

// AgreementType acuerdos que requieren firma registrada.
// Valores del enum agreement_type de la base de datos (contrato externo).
type AgreementType string

const (
	AgreementService      AgreementType = "service_agreement"
	AgreementPrivacy      AgreementType = "privacy_consent"
	AgreementDirectDebit  AgreementType = "direct_debit"
	AgreementTerms        AgreementType = "terms_and_conditions"
)

// AgreementTypes lista completa del enum.
var AgreementTypes = []AgreementType{
	AgreementService,
	AgreementPrivacy,
	AgreementDirectDebit,
	AgreementTerms,
}

// Valid informa si a es un tipo de acuerdo conocido.
func (a AgreementType) Valid() bool {
	for _, t := range AgreementTypes {
		if t == a {
			return true
		}
	}
	return false
}

// SignedAgreement registro de firma de un acuerdo.
// Invariante: a lo sumo uno por (business_profile_id, agreement); re-firmar
// reemplaza el registro anterior. La última firma es la autoritativa, no se
// conserva historial.
type SignedAgreement struct {
	ID                string
	BusinessProfileID string
	Agreement         AgreementType
	SignedByUser      string
	SignedAt          time.Time
	FileURL           *string
}
