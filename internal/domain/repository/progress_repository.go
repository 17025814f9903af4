package repository

import (
	"context"

	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// ProgressRepository puerto de persistencia para OnboardingProgress
// (exactamente una fila por perfil; clave business_profile_id).
type ProgressRepository interface {
	Get(ctx context.Context, profileID string) (*entity.OnboardingProgress, error)
	Upsert(ctx context.Context, progress *entity.OnboardingProgress) error
}
