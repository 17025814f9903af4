package repository

import (
	"context"

	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// DocumentRepository puerto de persistencia para OnboardingDocument.
// Delete borra solo el registro de metadatos; los bytes del file store tienen
// ciclo de vida independiente.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.OnboardingDocument) error
	GetByID(ctx context.Context, id string) (*entity.OnboardingDocument, error)
	ListByProfile(ctx context.Context, profileID string) ([]*entity.OnboardingDocument, error)
	ListBySection(ctx context.Context, profileID string, section entity.Section) ([]*entity.OnboardingDocument, error)
	// ListUntagged devuelve los documentos sin sección (de toda la empresa).
	ListUntagged(ctx context.Context, profileID string) ([]*entity.OnboardingDocument, error)
	Delete(ctx context.Context, id string) error
}
