package repository

import (
	"context"

	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// SectionRepository puerto de persistencia para SectionRecord.
// Upsert escribe sobre la clave compuesta (business_profile_id, section_name),
// reemplazando el payload completo.
type SectionRepository interface {
	Upsert(ctx context.Context, record *entity.SectionRecord) error
	Get(ctx context.Context, profileID string, section entity.Section) (*entity.SectionRecord, error)
	GetAll(ctx context.Context, profileID string) ([]*entity.SectionRecord, error)
}
