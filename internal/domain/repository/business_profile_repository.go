package repository

import (
	"context"

	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// BusinessProfileRepository define el puerto de persistencia para
// BusinessProfile (DIP). La implementación vive en infrastructure.
// Los lookups de fila única devuelven (nil, nil) cuando no hay registro.
type BusinessProfileRepository interface {
	Create(ctx context.Context, profile *entity.BusinessProfile) error
	GetByID(ctx context.Context, id string) (*entity.BusinessProfile, error)
	GetByUserID(ctx context.Context, userID string) (*entity.BusinessProfile, error)
	Update(ctx context.Context, profile *entity.BusinessProfile) error
}
