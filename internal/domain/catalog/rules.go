// Package catalog contiene el catálogo estático de documentos requeridos por
// sección del onboarding. Es la fuente para el seed de la tabla
// mandatory_documents y para el repositorio en memoria de los tests.
package catalog

import "github.com/tu-usuario/farm-onboarding/internal/domain/entity"

func note(s string) *string { return &s }

// DefaultRules reglas (sección, tipo de documento) → obligatorio/opcional.
// storage y communications no exigen documentos: secciones sin reglas siempre
// pasan la evaluación de requisitos.
var DefaultRules = []entity.MandatoryDocumentRule{
	// basic: identidad legal de la empresa
	{SectionName: entity.SectionBasic, DocType: entity.DocABNCertificate, Mandatory: true,
		Notes: note("Certificado de registro del ABN")},
	{SectionName: entity.SectionBasic, DocType: entity.DocACNCertificate, Mandatory: false,
		Notes: note("Solo si la empresa es una sociedad registrada (ACN)")},
	{SectionName: entity.SectionBasic, DocType: entity.DocGSTRegistrationNotice, Mandatory: false,
		Notes: note("Solo si está registrada para GST")},

	// farm: licencias operativas
	{SectionName: entity.SectionFarm, DocType: entity.DocChemicalLicence, Mandatory: false,
		Notes: note("Requerida si la explotación usa agroquímicos")},
	{SectionName: entity.SectionFarm, DocType: entity.DocMachineryLicence, Mandatory: false, Notes: nil},
	{SectionName: entity.SectionFarm, DocType: entity.DocFoodSafetyCert, Mandatory: false, Notes: nil},
	{SectionName: entity.SectionFarm, DocType: entity.DocWaterLicence, Mandatory: false,
		Notes: note("Requerida si declara licencia de agua")},

	// financial: acceso contable
	{SectionName: entity.SectionFinancial, DocType: entity.DocBankFeedAuthority, Mandatory: true,
		Notes: note("Autorización de bank feeds para el software contable")},
	{SectionName: entity.SectionFinancial, DocType: entity.DocBASStatement, Mandatory: false,
		Notes: note("Último BAS presentado, si existe")},

	// compliance: pólizas y registros
	{SectionName: entity.SectionCompliance, DocType: entity.DocPublicLiabilityPolicy, Mandatory: true,
		Notes: note("Póliza de responsabilidad civil vigente")},
	{SectionName: entity.SectionCompliance, DocType: entity.DocWorkersCompPolicy, Mandatory: false,
		Notes: note("Obligatoria solo si tiene empleados")},
	{SectionName: entity.SectionCompliance, DocType: entity.DocVehicleInsurance, Mandatory: false, Notes: nil},
	{SectionName: entity.SectionCompliance, DocType: entity.DocCropOrLivestockPolicy, Mandatory: false, Notes: nil},
	{SectionName: entity.SectionCompliance, DocType: entity.DocVehicleRegistration, Mandatory: false, Notes: nil},
	{SectionName: entity.SectionCompliance, DocType: entity.DocEquipmentLease, Mandatory: false, Notes: nil},
	{SectionName: entity.SectionCompliance, DocType: entity.DocLandLease, Mandatory: false, Notes: nil},
}

// RulesForSection filtra DefaultRules por sección.
func RulesForSection(s entity.Section) []entity.MandatoryDocumentRule {
	var out []entity.MandatoryDocumentRule
	for _, r := range DefaultRules {
		if r.SectionName == s {
			out = append(out, r)
		}
	}
	return out
}
