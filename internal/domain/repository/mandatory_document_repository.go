package repository

import (
	"context"

	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// MandatoryDocumentRepository puerto de lectura del catálogo de requisitos.
// Solo lectura: el catálogo es data de referencia sembrada fuera de runtime.
type MandatoryDocumentRepository interface {
	ListAll(ctx context.Context) ([]*entity.MandatoryDocumentRule, error)
	ListBySection(ctx context.Context, section entity.Section) ([]*entity.MandatoryDocumentRule, error)
	ListMandatoryBySection(ctx context.Context, section entity.Section) ([]*entity.MandatoryDocumentRule, error)
}
