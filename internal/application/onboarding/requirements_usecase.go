package onboarding

import (
	"context"

	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

// SectionRequirements resultado de evaluar una sección contra el catálogo.
type SectionRequirements struct {
	Required   []*entity.MandatoryDocumentRule
	Uploaded   []*entity.OnboardingDocument
	Missing    []*entity.MandatoryDocumentRule
	CanProceed bool
}

// RequirementsConfig opciones del evaluador.
type RequirementsConfig struct {
	// CountUntagged: cuando está activo, los documentos sin sección (de toda
	// la empresa) también satisfacen reglas por tipo. Apagado por defecto: un
	// documento solo cuenta si su sección coincide con la evaluada.
	CountUntagged bool
}

// RequirementsUseCase combina catálogo + registro de documentos para decidir
// si los documentos obligatorios de una sección están satisfechos
// (Requirement Evaluator).
type RequirementsUseCase struct {
	profiles  repository.BusinessProfileRepository
	rules     repository.MandatoryDocumentRepository
	documents repository.DocumentRepository
	cfg       RequirementsConfig
}

// NewRequirementsUseCase construye el evaluador.
func NewRequirementsUseCase(
	profiles repository.BusinessProfileRepository,
	rules repository.MandatoryDocumentRepository,
	documents repository.DocumentRepository,
	cfg RequirementsConfig,
) *RequirementsUseCase {
	return &RequirementsUseCase{profiles: profiles, rules: rules, documents: documents, cfg: cfg}
}

// CheckSection evalúa las reglas obligatorias de la sección contra los
// documentos subidos. Una sección sin reglas obligatorias siempre puede
// avanzar, haya o no documentos.
func (uc *RequirementsUseCase) CheckSection(ctx context.Context, userID string, section entity.Section) (*SectionRequirements, error) {
	if !section.Valid() {
		return nil, domain.ErrUnknownSection
	}
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNoBusinessProfile
	}

	required, err := uc.rules.ListMandatoryBySection(ctx, section)
	if err != nil {
		return nil, err
	}
	uploaded, err := uc.documents.ListBySection(ctx, profile.ID, section)
	if err != nil {
		return nil, err
	}

	// Tipos que satisfacen reglas: los subidos con la sección evaluada y,
	// si la configuración lo permite, los documentos sin sección.
	satisfying := make(map[entity.DocumentType]bool, len(uploaded))
	for _, doc := range uploaded {
		satisfying[doc.DocType] = true
	}
	if uc.cfg.CountUntagged {
		untagged, err := uc.documents.ListUntagged(ctx, profile.ID)
		if err != nil {
			return nil, err
		}
		for _, doc := range untagged {
			satisfying[doc.DocType] = true
		}
	}

	var missing []*entity.MandatoryDocumentRule
	for _, rule := range required {
		if !satisfying[rule.DocType] {
			missing = append(missing, rule)
		}
	}

	return &SectionRequirements{
		Required:   required,
		Uploaded:   uploaded,
		Missing:    missing,
		CanProceed: len(missing) == 0,
	}, nil
}

// CanProceedToNextSection wrapper de conveniencia sobre CheckSection.
func (uc *RequirementsUseCase) CanProceedToNextSection(ctx context.Context, userID string, section entity.Section) (bool, error) {
	req, err := uc.CheckSection(ctx, userID, section)
	if err != nil {
		return false, err
	}
	return req.CanProceed, nil
}
