package onboarding

import (
	"context"

	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

// ProgressUseCase máquina de estados sobre el orden fijo de secciones
// (Progress Tracker). Avanza el puntero pero no valida requisitos: completar
// fuera de orden es estado representable, el gating es responsabilidad del
// caller vía RequirementsUseCase.
type ProgressUseCase struct {
	profiles repository.BusinessProfileRepository
	progress repository.ProgressRepository
}

// NewProgressUseCase construye el tracker con sus puertos.
func NewProgressUseCase(profiles repository.BusinessProfileRepository, progress repository.ProgressRepository) *ProgressUseCase {
	return &ProgressUseCase{profiles: profiles, progress: progress}
}

// Get devuelve el progreso del perfil del usuario, o nil si nunca se completó
// un paso (el registro se crea lazy en el primer MarkStepComplete).
func (uc *ProgressUseCase) Get(ctx context.Context, userID string) (*entity.OnboardingProgress, error) {
	profile, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.progress.Get(ctx, profile.ID)
}

// MarkStepComplete agrega step al conjunto de completadas (sin duplicados) y
// avanza current_step a la sección siguiente del orden fijo. Si step es la
// última sección el puntero queda fijado en ella. Devuelve el progreso
// actualizado.
func (uc *ProgressUseCase) MarkStepComplete(ctx context.Context, userID string, step entity.Section) (*entity.OnboardingProgress, error) {
	if !step.Valid() {
		return nil, domain.ErrUnknownSection
	}
	profile, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, err := uc.progress.Get(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &entity.OnboardingProgress{
			BusinessProfileID: profile.ID,
			CurrentStep:       entity.SectionOrder[0],
		}
	}
	if !p.HasCompleted(step) {
		p.CompletedSteps = append(p.CompletedSteps, step)
	}

	next := step.Next()
	if next == "" {
		// Última sección: el puntero no corre más allá del final.
		next = step
	}
	p.CurrentStep = next

	if err := uc.progress.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProgressUseCase) requireProfile(ctx context.Context, userID string) (*entity.BusinessProfile, error) {
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNoBusinessProfile
	}
	return profile, nil
}
