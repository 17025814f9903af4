package entity

// MandatoryDocumentRule entrada del catálogo estático de requisitos:
// (sección, tipo de documento) → obligatorio u opcional. Datos de referencia
// de solo lectura; el núcleo nunca los crea ni los muta en runtime.
type MandatoryDocumentRule struct {
	SectionName Section
	DocType     DocumentType
	Mandatory   bool
	Notes       *string
}
