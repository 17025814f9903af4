package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

var _ repository.AgreementRepository = (*AgreementRepo)(nil)

// AgreementRepo implementación de AgreementRepository sobre PostgreSQL.
// El índice único (business_profile_id, agreement) sostiene el upsert de
// re-firma: la última firma reemplaza a la anterior.
type AgreementRepo struct {
	pool *pgxpool.Pool
}

// NewAgreementRepository construye el adaptador de persistencia.
func NewAgreementRepository(pool *pgxpool.Pool) *AgreementRepo {
	return &AgreementRepo{pool: pool}
}

// Upsert escribe la firma de (perfil, acuerdo); si ya existía, el firmante,
// momento y archivo nuevos reemplazan a los anteriores. La fila conserva su
// ID original: RETURNING lo devuelve y se escribe de vuelta en la entidad
// para que el caller nunca vea un ID distinto del persistido.
func (r *AgreementRepo) Upsert(ctx context.Context, a *entity.SignedAgreement) error {
	query := `
		INSERT INTO signed_agreements (id, business_profile_id, agreement, signed_by_user, signed_at, file_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (business_profile_id, agreement)
		DO UPDATE SET signed_by_user = EXCLUDED.signed_by_user,
		              signed_at = EXCLUDED.signed_at,
		              file_url = EXCLUDED.file_url
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		a.ID, a.BusinessProfileID, string(a.Agreement), a.SignedByUser, a.SignedAt, a.FileURL,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("upsert agreement %s: %w", a.Agreement, err)
	}
	return nil
}

// Get obtiene la firma de (perfil, acuerdo), o nil si no está firmado.
func (r *AgreementRepo) Get(ctx context.Context, profileID string, agreementType entity.AgreementType) (*entity.SignedAgreement, error) {
	query := `
		SELECT id, business_profile_id, agreement, signed_by_user, signed_at, file_url
		FROM signed_agreements
		WHERE business_profile_id = $1 AND agreement = $2`
	var a entity.SignedAgreement
	var agreement string
	err := r.pool.QueryRow(ctx, query, profileID, string(agreementType)).Scan(
		&a.ID, &a.BusinessProfileID, &agreement, &a.SignedByUser, &a.SignedAt, &a.FileURL,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agreement: %w", err)
	}
	a.Agreement = entity.AgreementType(agreement)
	return &a, nil
}

// ListByProfile devuelve todas las firmas del perfil.
func (r *AgreementRepo) ListByProfile(ctx context.Context, profileID string) ([]*entity.SignedAgreement, error) {
	query := `
		SELECT id, business_profile_id, agreement, signed_by_user, signed_at, file_url
		FROM signed_agreements
		WHERE business_profile_id = $1`
	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("list agreements: %w", err)
	}
	defer rows.Close()

	var list []*entity.SignedAgreement
	for rows.Next() {
		var a entity.SignedAgreement
		var agreement string
		if err := rows.Scan(&a.ID, &a.BusinessProfileID, &agreement, &a.SignedByUser, &a.SignedAt, &a.FileURL); err != nil {
			return nil, fmt.Errorf("scan agreement: %w", err)
		}
		a.Agreement = entity.AgreementType(agreement)
		list = append(list, &a)
	}
	return list, rows.Err()
}
