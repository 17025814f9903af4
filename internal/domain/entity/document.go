package entity

import "time"

// DocumentType clasifica un documento de soporte del onboarding.
// Valores del enum document_type de la base de datos (contrato externo).
type DocumentType string

const (
	DocABNCertificate         DocumentType = "abn_certificate"
	DocACNCertificate         DocumentType = "acn_certificate"
	DocGSTRegistrationNotice  DocumentType = "gst_registration_notice"
	DocChemicalLicence        DocumentType = "chemical_handling_licence"
	DocMachineryLicence       DocumentType = "machinery_operator_licence"
	DocFoodSafetyCert         DocumentType = "food_safety_cert"
	DocWaterLicence           DocumentType = "water_licence"
	DocBankFeedAuthority      DocumentType = "bank_feed_authority"
	DocBASStatement           DocumentType = "bas_statement"
	DocPublicLiabilityPolicy  DocumentType = "public_liability_policy"
	DocWorkersCompPolicy      DocumentType = "workers_comp_policy"
	DocVehicleInsurance       DocumentType = "vehicle_insurance_policy"
	DocCropOrLivestockPolicy  DocumentType = "crop_or_livestock_policy"
	DocVehicleRegistration    DocumentType = "vehicle_registration_certificate"
	DocEquipmentLease         DocumentType = "equipment_lease_agreement"
	DocLandLease              DocumentType = "land_lease_agreement"
	DocServiceAgreement       DocumentType = "service_agreement"
	DocPrivacyConsent         DocumentType = "privacy_consent"
	DocDirectDebitAuthority   DocumentType = "direct_debit_authority"
)

// DocumentTypes lista completa del enum, en el orden del contrato.
var DocumentTypes = []DocumentType{
	DocABNCertificate,
	DocACNCertificate,
	DocGSTRegistrationNotice,
	DocChemicalLicence,
	DocMachineryLicence,
	DocFoodSafetyCert,
	DocWaterLicence,
	DocBankFeedAuthority,
	DocBASStatement,
	DocPublicLiabilityPolicy,
	DocWorkersCompPolicy,
	DocVehicleInsurance,
	DocCropOrLivestockPolicy,
	DocVehicleRegistration,
	DocEquipmentLease,
	DocLandLease,
	DocServiceAgreement,
	DocPrivacyConsent,
	DocDirectDebitAuthority,
}

// Valid informa si d es un tipo de documento conocido.
func (d DocumentType) Valid() bool {
	for _, t := range DocumentTypes {
		if t == d {
			return true
		}
	}
	return false
}

// OnboardingDocument metadatos de un archivo subido para el onboarding.
// SectionName nil = documento de toda la empresa, no atado a una sección.
// El registro se crea al subir y se elimina con delete explícito; nunca se
// actualiza in place. Los bytes viven en el file store y no se borran desde
// este núcleo.
type OnboardingDocument struct {
	ID                string
	BusinessProfileID string
	SectionName       *Section
	DocType           DocumentType
	FileURL           string
	ExpiryDate        *time.Time
	UploadedAt        time.Time
}
