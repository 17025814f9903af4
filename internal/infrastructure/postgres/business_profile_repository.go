package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

// Asegura que BusinessProfileRepo implementa el puerto.
var _ repository.BusinessProfileRepository = (*BusinessProfileRepo)(nil)

// BusinessProfileRepo implementación del puerto BusinessProfileRepository
// sobre PostgreSQL. Los bloques de contacto van como JSONB.
type BusinessProfileRepo struct {
	pool *pgxpool.Pool
}

// NewBusinessProfileRepository construye el adaptador de persistencia.
func NewBusinessProfileRepository(pool *pgxpool.Pool) *BusinessProfileRepo {
	return &BusinessProfileRepo{pool: pool}
}

const profileColumns = `id, user_id, full_name, trading_name, abn, acn, gst_registered,
	main_contact, contact_emails, contact_phones, business_structure,
	onboarding_complete_at, created_at, updated_at`

// Create persiste un nuevo perfil. El índice único sobre user_id hace cumplir
// "un perfil por usuario": una violación se mapea a domain.ErrDuplicate.
func (r *BusinessProfileRepo) Create(ctx context.Context, p *entity.BusinessProfile) error {
	query := `
		INSERT INTO business_profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.UserID, p.FullName, p.TradingName, p.ABN, p.ACN, p.GSTRegistered,
		p.MainContact, p.ContactEmails, p.ContactPhones, p.BusinessStructure,
		p.OnboardingCompleteAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *BusinessProfileRepo) GetByID(ctx context.Context, id string) (*entity.BusinessProfile, error) {
	return r.getOne(ctx, `SELECT `+profileColumns+` FROM business_profiles WHERE id = $1`, id)
}

// GetByUserID obtiene el perfil del usuario propietario.
func (r *BusinessProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.BusinessProfile, error) {
	return r.getOne(ctx, `SELECT `+profileColumns+` FROM business_profiles WHERE user_id = $1`, userID)
}

func (r *BusinessProfileRepo) getOne(ctx context.Context, query, arg string) (*entity.BusinessProfile, error) {
	var p entity.BusinessProfile
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.TradingName, &p.ABN, &p.ACN, &p.GSTRegistered,
		&p.MainContact, &p.ContactEmails, &p.ContactPhones, &p.BusinessStructure,
		&p.OnboardingCompleteAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business profile: %w", err)
	}
	return &p, nil
}

// Update reemplaza los campos mutables del perfil.
func (r *BusinessProfileRepo) Update(ctx context.Context, p *entity.BusinessProfile) error {
	query := `
		UPDATE business_profiles
		SET full_name = $2, trading_name = $3, abn = $4, acn = $5, gst_registered = $6,
		    main_contact = $7, contact_emails = $8, contact_phones = $9,
		    business_structure = $10, onboarding_complete_at = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.FullName, p.TradingName, p.ABN, p.ACN, p.GSTRegistered,
		p.MainContact, p.ContactEmails, p.ContactPhones,
		p.BusinessStructure, p.OnboardingCompleteAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update business profile: %w", err)
	}
	return nil
}
