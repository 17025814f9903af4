package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

var _ repository.SectionRepository = (*SectionRepo)(nil)

// SectionRepo implementación de SectionRepository sobre PostgreSQL.
// La PK compuesta (business_profile_id, section_name) sostiene el upsert.
type SectionRepo struct {
	pool *pgxpool.Pool
}

// NewSectionRepository construye el adaptador de persistencia.
func NewSectionRepository(pool *pgxpool.Pool) *SectionRepo {
	return &SectionRepo{pool: pool}
}

// Upsert escribe el registro de la sección, reemplazando data completa si ya
// existía (nunca merge parcial).
func (r *SectionRepo) Upsert(ctx context.Context, rec *entity.SectionRecord) error {
	query := `
		INSERT INTO business_onboarding_sections (business_profile_id, section_name, data, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (business_profile_id, section_name)
		DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query,
		rec.BusinessProfileID, string(rec.SectionName), rec.Data, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert section %s: %w", rec.SectionName, err)
	}
	return nil
}

// Get obtiene el registro de (perfil, sección), o nil si no existe.
func (r *SectionRepo) Get(ctx context.Context, profileID string, section entity.Section) (*entity.SectionRecord, error) {
	query := `
		SELECT business_profile_id, section_name, data, updated_at
		FROM business_onboarding_sections
		WHERE business_profile_id = $1 AND section_name = $2`
	var rec entity.SectionRecord
	var name string
	err := r.pool.QueryRow(ctx, query, profileID, string(section)).Scan(
		&rec.BusinessProfileID, &name, &rec.Data, &rec.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get section %s: %w", section, err)
	}
	rec.SectionName = entity.Section(name)
	return &rec, nil
}

// GetAll devuelve los registros de sección del perfil en el orden canónico
// (el enum onboarding_section ordena por posición de declaración).
func (r *SectionRepo) GetAll(ctx context.Context, profileID string) ([]*entity.SectionRecord, error) {
	query := `
		SELECT business_profile_id, section_name, data, updated_at
		FROM business_onboarding_sections
		WHERE business_profile_id = $1
		ORDER BY section_name`
	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var list []*entity.SectionRecord
	for rows.Next() {
		var rec entity.SectionRecord
		var name string
		if err := rows.Scan(&rec.BusinessProfileID, &name, &rec.Data, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		rec.SectionName = entity.Section(name)
		list = append(list, &rec)
	}
	return list, rows.Err()
}
