package dto

import (
	"time"

	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// SaveSectionRequest payload libre de una sección. La forma interna es
// específica de cada sección y no se valida en esta capa.
type SaveSectionRequest struct {
	Data map[string]any `json:"data"`
}

// SectionResponse registro de datos de una sección.
type SectionResponse struct {
	BusinessProfileID string         `json:"business_profile_id"`
	SectionName       entity.Section `json:"section_name"`
	Data              map[string]any `json:"data"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// DocumentResponse metadatos de un documento subido.
type DocumentResponse struct {
	ID                string          `json:"id"`
	BusinessProfileID string          `json:"business_profile_id"`
	SectionName       *entity.Section `json:"section_name"`
	DocType           string          `json:"doc_type"`
	FileURL           string          `json:"file_url"`
	ExpiryDate        *time.Time      `json:"expiry_date"`
	UploadedAt        time.Time       `json:"uploaded_at"`
}

// SignAgreementRequest cuerpo opcional al firmar un acuerdo.
type SignAgreementRequest struct {
	FileURL *string `json:"file_url"`
}

// AgreementResponse firma registrada de un acuerdo.
type AgreementResponse struct {
	ID                string    `json:"id"`
	BusinessProfileID string    `json:"business_profile_id"`
	Agreement         string    `json:"agreement"`
	SignedByUser      string    `json:"signed_by_user"`
	SignedAt          time.Time `json:"signed_at"`
	FileURL           *string   `json:"file_url"`
}

// AgreementStatusResponse conveniencia para consultar si un acuerdo está firmado.
type AgreementStatusResponse struct {
	Agreement string             `json:"agreement"`
	Signed    bool               `json:"signed"`
	Signature *AgreementResponse `json:"signature,omitempty"`
}

// ProgressResponse registro de avance del onboarding.
type ProgressResponse struct {
	BusinessProfileID string           `json:"business_profile_id"`
	CurrentStep       entity.Section   `json:"current_step"`
	CompletedSteps    []entity.Section `json:"completed_steps"`
}

// NavigationResponse secciones vecinas en el orden fijo ("" en los bordes).
type NavigationResponse struct {
	Section  entity.Section `json:"section"`
	Next     entity.Section `json:"next"`
	Previous entity.Section `json:"previous"`
}

// MandatoryDocumentResponse regla del catálogo de requisitos.
type MandatoryDocumentResponse struct {
	SectionName entity.Section `json:"section_name"`
	DocType     string         `json:"doc_type"`
	Mandatory   bool           `json:"mandatory"`
	Notes       *string        `json:"notes"`
}

// SectionRequirementsResponse resultado de evaluar una sección.
// Las claves replican el resultado del evaluador original.
type SectionRequirementsResponse struct {
	Required   []MandatoryDocumentResponse `json:"required"`
	Uploaded   []DocumentResponse          `json:"uploaded"`
	Missing    []MandatoryDocumentResponse `json:"missing"`
	CanProceed bool                        `json:"canProceed"`
}

// CanProceedResponse respuesta del wrapper de gating.
type CanProceedResponse struct {
	Section    entity.Section `json:"section"`
	CanProceed bool           `json:"canProceed"`
}

// SectionProgressResponse tupla por sección de la vista de estado.
type SectionProgressResponse struct {
	Section   entity.Section `json:"section"`
	Completed bool           `json:"completed"`
	IsCurrent bool           `json:"isCurrent"`
}

// OverallStatusResponse vista consolidada del onboarding.
type OverallStatusResponse struct {
	Progress       []SectionProgressResponse `json:"progress"`
	CurrentStep    entity.Section            `json:"currentStep"`
	CompletedSteps []entity.Section          `json:"completedSteps"`
	Documents      []DocumentResponse        `json:"documents"`
	Agreements     []AgreementResponse       `json:"agreements"`
	IsComplete     bool                      `json:"isComplete"`
}
