package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

var _ repository.ProgressRepository = (*ProgressRepo)(nil)

// ProgressRepo implementación de ProgressRepository sobre PostgreSQL.
// Una fila por perfil (PK business_profile_id); completed_steps es un array
// del enum onboarding_section.
type ProgressRepo struct {
	pool *pgxpool.Pool
}

// NewProgressRepository construye el adaptador de persistencia.
func NewProgressRepository(pool *pgxpool.Pool) *ProgressRepo {
	return &ProgressRepo{pool: pool}
}

// Get obtiene el progreso del perfil, o nil si todavía no existe.
func (r *ProgressRepo) Get(ctx context.Context, profileID string) (*entity.OnboardingProgress, error) {
	query := `
		SELECT business_profile_id, current_step::text, completed_steps::text[]
		FROM onboarding_progress
		WHERE business_profile_id = $1`
	var p entity.OnboardingProgress
	var current string
	var completed []string
	err := r.pool.QueryRow(ctx, query, profileID).Scan(&p.BusinessProfileID, &current, &completed)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	p.CurrentStep = entity.Section(current)
	p.CompletedSteps = toSections(completed)
	return &p, nil
}

// Upsert escribe el registro de progreso del perfil.
func (r *ProgressRepo) Upsert(ctx context.Context, p *entity.OnboardingProgress) error {
	query := `
		INSERT INTO onboarding_progress (business_profile_id, current_step, completed_steps)
		VALUES ($1, $2::onboarding_section, $3::onboarding_section[])
		ON CONFLICT (business_profile_id)
		DO UPDATE SET current_step = EXCLUDED.current_step,
		              completed_steps = EXCLUDED.completed_steps`
	_, err := r.pool.Exec(ctx, query,
		p.BusinessProfileID, string(p.CurrentStep), toStrings(p.CompletedSteps),
	)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

func toSections(values []string) []entity.Section {
	out := make([]entity.Section, 0, len(values))
	for _, v := range values {
		out = append(out, entity.Section(v))
	}
	return out
}

func toStrings(sections []entity.Section) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, string(s))
	}
	return out
}
