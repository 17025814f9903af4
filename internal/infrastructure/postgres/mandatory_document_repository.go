package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

var _ repository.MandatoryDocumentRepository = (*MandatoryDocumentRepo)(nil)

// MandatoryDocumentRepo lectura del catálogo de requisitos desde la tabla
// mandatory_documents (sembrada con cmd/seed-catalog; solo lectura en runtime).
type MandatoryDocumentRepo struct {
	pool *pgxpool.Pool
}

// NewMandatoryDocumentRepository construye el adaptador de lectura.
func NewMandatoryDocumentRepository(pool *pgxpool.Pool) *MandatoryDocumentRepo {
	return &MandatoryDocumentRepo{pool: pool}
}

// ListAll devuelve el catálogo completo.
func (r *MandatoryDocumentRepo) ListAll(ctx context.Context) ([]*entity.MandatoryDocumentRule, error) {
	query := `SELECT section_name, doc_type, mandatory, notes FROM mandatory_documents`
	return r.list(ctx, query)
}

// ListBySection devuelve todas las reglas de la sección.
func (r *MandatoryDocumentRepo) ListBySection(ctx context.Context, section entity.Section) ([]*entity.MandatoryDocumentRule, error) {
	query := `SELECT section_name, doc_type, mandatory, notes FROM mandatory_documents WHERE section_name = $1`
	return r.list(ctx, query, string(section))
}

// ListMandatoryBySection devuelve solo las reglas obligatorias de la sección.
func (r *MandatoryDocumentRepo) ListMandatoryBySection(ctx context.Context, section entity.Section) ([]*entity.MandatoryDocumentRule, error) {
	query := `
		SELECT section_name, doc_type, mandatory, notes
		FROM mandatory_documents
		WHERE section_name = $1 AND mandatory = true`
	return r.list(ctx, query, string(section))
}

func (r *MandatoryDocumentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.MandatoryDocumentRule, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mandatory documents: %w", err)
	}
	defer rows.Close()

	var list []*entity.MandatoryDocumentRule
	for rows.Next() {
		var rule entity.MandatoryDocumentRule
		var section, docType string
		if err := rows.Scan(&section, &docType, &rule.Mandatory, &rule.Notes); err != nil {
			return nil, fmt.Errorf("scan mandatory document: %w", err)
		}
		rule.SectionName = entity.Section(section)
		rule.DocType = entity.DocumentType(docType)
		list = append(list, &rule)
	}
	return list, rows.Err()
}
