package onboarding

import (
	"context"

	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

// SectionProgress estado de una sección dentro de la vista consolidada.
type SectionProgress struct {
	Section   entity.Section
	Completed bool
	IsCurrent bool
}

// OverallStatus vista consolidada del onboarding: progreso por sección,
// puntero actual, documentos y acuerdos cargados, y el flag de completitud
// (igualdad de conjuntos sobre las seis secciones).
type OverallStatus struct {
	Progress       []SectionProgress
	CurrentStep    entity.Section
	CompletedSteps []entity.Section
	Documents      []*entity.OnboardingDocument
	Agreements     []*entity.SignedAgreement
	IsComplete     bool
}

// DocumentsForSection filtra la colección ya cargada por sección, sin ida
// adicional al store (soporta re-renders rápidos del caller).
func (s *OverallStatus) DocumentsForSection(section entity.Section) []*entity.OnboardingDocument {
	var out []*entity.OnboardingDocument
	for _, doc := range s.Documents {
		if doc.SectionName != nil && *doc.SectionName == section {
			out = append(out, doc)
		}
	}
	return out
}

// StatusUseCase compone tracker + registro de documentos + registro de
// acuerdos en la vista de estado del orquestador.
type StatusUseCase struct {
	profiles   repository.BusinessProfileRepository
	progress   repository.ProgressRepository
	documents  repository.DocumentRepository
	agreements repository.AgreementRepository
}

// NewStatusUseCase construye el caso de uso de estado.
func NewStatusUseCase(
	profiles repository.BusinessProfileRepository,
	progress repository.ProgressRepository,
	documents repository.DocumentRepository,
	agreements repository.AgreementRepository,
) *StatusUseCase {
	return &StatusUseCase{profiles: profiles, progress: progress, documents: documents, agreements: agreements}
}

// GetOverallStatus lee progreso, documentos y acuerdos del perfil y los
// pliega en una sola vista. Sin registro de progreso aún, el puntero reporta
// la primera sección y el conjunto de completadas queda vacío.
func (uc *StatusUseCase) GetOverallStatus(ctx context.Context, userID string) (*OverallStatus, error) {
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNoBusinessProfile
	}

	progress, err := uc.progress.Get(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	documents, err := uc.documents.ListByProfile(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	agreements, err := uc.agreements.ListByProfile(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	if progress == nil {
		progress = &entity.OnboardingProgress{
			BusinessProfileID: profile.ID,
			CurrentStep:       entity.SectionOrder[0],
		}
	}

	sections := make([]SectionProgress, 0, len(entity.SectionOrder))
	for _, section := range entity.SectionOrder {
		sections = append(sections, SectionProgress{
			Section:   section,
			Completed: progress.HasCompleted(section),
			IsCurrent: section == progress.CurrentStep,
		})
	}

	return &OverallStatus{
		Progress:       sections,
		CurrentStep:    progress.CurrentStep,
		CompletedSteps: progress.CompletedSteps,
		Documents:      documents,
		Agreements:     agreements,
		IsComplete:     progress.IsComplete(),
	}, nil
}
